package sink

import (
	"context"
	"fmt"
	"log/slog"

	"teamboard/domain"
	"teamboard/domain/event"
	"teamboard/repositories"
)

// IndexSink is a permanent sink feeding every broadcast message into the
// full-text index, so history search works across rooms without replaying logs.
type IndexSink struct {
	index repositories.IMessageIndex
	log   *slog.Logger
}

func NewIndexSink(index repositories.IMessageIndex, log *slog.Logger) IndexSink {
	return IndexSink{index: index, log: log}
}

func (s IndexSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageBroadcast:
		return s.index.Index(toMessage(evt))
	default:
		s.log.Debug(fmt.Sprintf("Not implemented event : %v", evt))
		return nil
	}
}

func toMessage(evt event.MessageBroadcast) domain.Message {
	return domain.Message{
		ID:         evt.ID,
		Room:       evt.Room,
		SenderID:   evt.Author,
		Content:    evt.Content,
		Attachment: evt.Attachment,
		Lang:       evt.Lang,
		CreatedAt:  evt.At,
	}
}
