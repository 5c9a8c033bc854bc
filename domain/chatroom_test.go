package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChatRoom_MergeMembers(t *testing.T) {
	req := require.New(t)

	room := ChatRoom{ID: "proj-1", ProjectName: "apollo", Members: []string{"bob", "alice"}}

	room.MergeMembers([]string{"carol", "alice"})
	req.Equal([]string{"alice", "bob", "carol"}, room.Members)

	// Merging the same set again is a no-op.
	room.MergeMembers([]string{"bob", "carol"})
	req.Equal([]string{"alice", "bob", "carol"}, room.Members)

	// A nil merge normalizes the existing list.
	dirty := ChatRoom{Members: []string{"zoe", "alice", "zoe"}}
	dirty.MergeMembers(nil)
	req.Equal([]string{"alice", "zoe"}, dirty.Members)
}

func TestChatRoom_HasMember(t *testing.T) {
	req := require.New(t)

	room := ChatRoom{Members: []string{"alice", "bob"}}
	req.True(room.HasMember("alice"))
	req.False(room.HasMember("carol"))
}
