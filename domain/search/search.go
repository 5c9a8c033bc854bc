package search

import (
	"strconv"
	"strings"
)

// Query represents the structured parameters for a message history search.
// It decouples the raw user input from the index engine requirements.
type Query struct {
	RawInput string // The original input from the user
	Terms    string // The actual text to match against message content
	RoomID   string // Target room for the search
	Limit    int    // Number of results
}

const defaultLimit = 10

// NewQuery parses a raw string to extract command-line style arguments.
// Example: find "standup notes" --room proj-42 --limit 5
func NewQuery(input string) *Query {
	query := &Query{
		RawInput: input,
		Limit:    defaultLimit,
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			switch key {
			case "room":
				query.RoomID = val
			case "limit":
				if n, err := strconv.Atoi(val); err == nil && n > 0 {
					query.Limit = n
				}
			}
			i++ // Skip the value part in next iteration
			continue
		}

		textTerms = append(textTerms, strings.Trim(part, `"`))
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}
