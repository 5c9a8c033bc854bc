package sink

import (
	"context"
	"log/slog"

	"teamboard/domain/event"
	"teamboard/errors"
)

// WsSink bridges the fan-out pipeline to one websocket connection. Consume
// never blocks the broadcaster: a slow reader whose buffer is full loses the
// event instead of stalling the room.
type WsSink struct {
	Events chan event.DomainEvent
	log    *slog.Logger
}

func NewWsSink(log *slog.Logger, bufferSize int) *WsSink {
	return &WsSink{
		Events: make(chan event.DomainEvent, bufferSize),
		log:    log,
	}
}

func (s *WsSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		s.log.Warn("Subscriber buffer full, dropping event", "room", e.RoomID())
		return errors.ErrSlowConsumer
	}
}
