package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRoom_AppendOrder(t *testing.T) {
	req := require.New(t)
	room := NewRoom("proj-1")

	for i := 0; i < 5; i++ {
		room.Append(Message{
			ID:        uuid.New(),
			Room:      room.ID,
			SenderID:  "alice",
			Content:   fmt.Sprintf("message %d", i),
			CreatedAt: time.Now().UTC(),
		})
	}

	messages := room.Messages()
	req.Len(messages, 5)
	for i, m := range messages {
		req.Equal(fmt.Sprintf("message %d", i), m.Content)
	}
	req.Equal(5, room.Len())
}

func TestRoom_MessagesReturnsCopy(t *testing.T) {
	req := require.New(t)
	room := NewRoom("proj-1")
	room.Append(Message{Content: "original"})

	snapshot := room.Messages()
	snapshot[0].Content = "tampered"

	req.Equal("original", room.Messages()[0].Content)
}
