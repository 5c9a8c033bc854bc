package workers

import (
	"context"
	"log/slog"
	"time"

	"teamboard/contract"
	"teamboard/domain"
	"teamboard/domain/event"

	"github.com/google/uuid"
)

var _ contract.Worker = (*RoomWorker)(nil)

// RoomWorker is the single dispatch point of the chat pipeline. Exactly one
// instance runs per process: it assigns each sanitized message its identifier
// and timestamp, appends it to the room log (created lazily), and hands the
// definitive broadcast downstream. Running it single-file is what makes
// per-room delivery order equal submission order with non-decreasing
// timestamps.
type RoomWorker struct {
	rooms     contract.IRoomStore
	sanitized chan event.DomainEvent
	broadcast chan event.DomainEvent
	log       *slog.Logger
}

func NewRoomWorker(rooms contract.IRoomStore,
	sanitized, broadcast chan event.DomainEvent, log *slog.Logger) *RoomWorker {
	return &RoomWorker{
		rooms:     rooms,
		sanitized: sanitized,
		broadcast: broadcast,
		log:       log,
	}
}

func (w *RoomWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case e, ok := <-w.sanitized:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			sanitized, ok := e.(event.SanitizedMessage)
			if !ok {
				continue
			}

			message := w.stamp(sanitized)
			w.rooms.Room(message.Room).Append(message)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case w.broadcast <- toBroadcast(message, sanitized.ReceivedAt):
			}
		}
	}
}

// stamp assigns the server identity: uuid plus receipt timestamp.
func (w *RoomWorker) stamp(e event.SanitizedMessage) domain.Message {
	return domain.Message{
		ID:         uuid.New(),
		Room:       e.Room,
		SenderID:   e.Author,
		Content:    e.Content,
		Attachment: e.Attachment,
		Lang:       e.Lang,
		CreatedAt:  time.Now().UTC(),
	}
}

func toBroadcast(m domain.Message, receivedAt time.Time) event.MessageBroadcast {
	return event.MessageBroadcast{
		ID:         m.ID,
		Room:       m.Room,
		Author:     m.SenderID,
		Content:    m.Content,
		Attachment: m.Attachment,
		Lang:       m.Lang,
		At:         m.CreatedAt,
		ReceivedAt: receivedAt,
	}
}
