package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewQuery(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		input    string
		expected Query
	}{
		{
			name:  "Plain terms with default limit",
			input: "deadline friday",
			expected: Query{
				Terms: "deadline friday",
				Limit: 10,
			},
		},
		{
			name:  "Room and limit flags",
			input: `find "standup notes" --room proj-42 --limit 5`,
			expected: Query{
				Terms:  "find standup notes",
				RoomID: "proj-42",
				Limit:  5,
			},
		},
		{
			name:  "Flags before terms",
			input: "--limit 3 release",
			expected: Query{
				Terms: "release",
				Limit: 3,
			},
		},
		{
			name:  "Invalid limit keeps the default",
			input: "release --limit zero",
			expected: Query{
				Terms: "release",
				Limit: 10,
			},
		},
		{
			name:  "Negative limit keeps the default",
			input: "release --limit -2",
			expected: Query{
				Terms: "release",
				Limit: 10,
			},
		},
		{
			name:  "Trailing flag without value is kept as a term",
			input: "release --room",
			expected: Query{
				Terms: "release --room",
				Limit: 10,
			},
		},
		{
			name:  "Empty input",
			input: "",
			expected: Query{
				Terms: "",
				Limit: 10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := NewQuery(tt.input)
			req.Equal(tt.expected.Terms, query.Terms, "test=%s", tt.name)
			req.Equal(tt.expected.RoomID, query.RoomID, "test=%s", tt.name)
			req.Equal(tt.expected.Limit, query.Limit, "test=%s", tt.name)
			req.Equal(tt.input, query.RawInput)
		})
	}
}
