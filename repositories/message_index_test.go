package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"teamboard/domain"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestIndex(t *testing.T) MessageIndex {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewMessageIndex(writer, slog.Default())
}

func indexMessage(t *testing.T, index MessageIndex, room domain.RoomID, author, content string) domain.Message {
	t.Helper()
	message := domain.Message{
		ID:        uuid.New(),
		Room:      room,
		SenderID:  author,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, index.Index(message))
	return message
}

func TestMessageIndex_SearchScopedByRoom(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	hit := indexMessage(t, index, "proj-1", "alice", "deadline moved to friday")
	indexMessage(t, index, "proj-1", "bob", "lunch at noon")
	indexMessage(t, index, "proj-2", "carol", "another deadline slipped")

	results, err := index.Search(context.Background(), "proj-1", "deadline", 10)
	req.NoError(err)
	req.Len(results, 1)
	req.Equal(hit.ID, results[0].ID)
	req.Equal(domain.RoomID("proj-1"), results[0].Room)
	req.Equal("alice", results[0].Author)
	req.Equal("deadline moved to friday", results[0].Content)
	req.WithinDuration(hit.CreatedAt, results[0].At, time.Second)
}

func TestMessageIndex_SearchLimit(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	indexMessage(t, index, "proj-1", "alice", "standup notes one")
	indexMessage(t, index, "proj-1", "bob", "standup notes two")
	indexMessage(t, index, "proj-1", "carol", "standup notes three")

	results, err := index.Search(context.Background(), "proj-1", "standup", 2)
	req.NoError(err)
	req.Len(results, 2)
}

func TestMessageIndex_SearchNoMatch(t *testing.T) {
	req := require.New(t)
	index := openTestIndex(t)

	indexMessage(t, index, "proj-1", "alice", "release planning")

	results, err := index.Search(context.Background(), "proj-1", "unrelated", 10)
	req.NoError(err)
	req.Empty(results)
}
