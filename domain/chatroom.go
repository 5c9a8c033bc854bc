package domain

import (
	"sort"

	"github.com/samber/lo"
)

// ChatRoom is the durable record tying a room to its project. The relation is
// by project name, not by identifier: a rename on the project side orphans
// the lookup. Members holds usernames with set semantics (no duplicates).
type ChatRoom struct {
	ID          RoomID   `json:"id"`
	ProjectName string   `json:"project_name" validate:"required"`
	Members     []string `json:"members"`
	Version     uint64   `json:"version"`
}

// MergeMembers unions the given usernames into the room membership.
// Duplicates collapse and the result is sorted so two merges of the same
// sets are byte-identical on disk.
func (c *ChatRoom) MergeMembers(names []string) {
	merged := lo.Uniq(append(c.Members, names...))
	sort.Strings(merged)
	c.Members = merged
}

func (c ChatRoom) HasMember(username string) bool {
	return lo.Contains(c.Members, username)
}
