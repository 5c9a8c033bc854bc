package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"teamboard/domain"
	"teamboard/domain/event"
	"teamboard/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoomWorker_StampsAndAppends(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	room := domain.NewRoom("proj-1")
	mockRooms := mocks.NewMockIRoomStore(ctrl)
	mockRooms.EXPECT().Room(domain.RoomID("proj-1")).Return(room).Times(2)

	sanitized := make(chan event.DomainEvent, 2)
	broadcast := make(chan event.DomainEvent, 2)
	worker := NewRoomWorker(mockRooms, sanitized, broadcast, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	received := time.Now().UTC()
	sanitized <- event.SanitizedMessage{Room: "proj-1", Author: "alice", Content: "first", ReceivedAt: received}
	sanitized <- event.SanitizedMessage{Room: "proj-1", Author: "bob", Content: "second", ReceivedAt: received}

	first := waitForBroadcast(t, broadcast)
	second := waitForBroadcast(t, broadcast)

	// Identity is assigned at the dispatch point.
	req.NotEqual(first.ID, second.ID)
	req.False(first.At.IsZero())
	req.Equal(received, first.ReceivedAt)

	// Delivery order equals submission order with non-decreasing stamps.
	req.Equal("first", first.Content)
	req.Equal("second", second.Content)
	req.False(second.At.Before(first.At))

	// The room log holds both messages in the same order.
	messages := room.Messages()
	req.Len(messages, 2)
	req.Equal("first", messages[0].Content)
	req.Equal("alice", messages[0].SenderID)
	req.Equal(first.ID, messages[0].ID)
}

func TestRoomWorker_IgnoresForeignEvents(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRooms := mocks.NewMockIRoomStore(ctrl)

	sanitized := make(chan event.DomainEvent, 1)
	broadcast := make(chan event.DomainEvent, 1)
	worker := NewRoomWorker(mockRooms, sanitized, broadcast, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	// A broadcast event arriving on the sanitized channel is dropped.
	sanitized <- event.MessageBroadcast{Room: "proj-1"}

	select {
	case <-broadcast:
		req.Fail("no broadcast expected for a non sanitized event")
	case <-time.After(100 * time.Millisecond):
	}
}

func waitForBroadcast(t *testing.T, ch chan event.DomainEvent) event.MessageBroadcast {
	t.Helper()
	select {
	case e := <-ch:
		broadcast, ok := e.(event.MessageBroadcast)
		require.True(t, ok)
		return broadcast
	case <-time.After(1 * time.Second):
		t.Fatal("no broadcast received in time")
		return event.MessageBroadcast{}
	}
}
