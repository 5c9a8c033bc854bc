package workers

import (
	"context"
	"log/slog"

	"teamboard/contract"
	"teamboard/domain"
	"teamboard/domain/event"
	"teamboard/moderation"

	"github.com/abadojack/whatlanggo"
)

var _ contract.Worker = (*ModerationWorker)(nil)

// ModerationWorker is the first pipeline stage: it censors submitted content
// and tags its language before the message gets an identity.
type ModerationWorker struct {
	moderator moderation.Moderator
	commands  chan domain.Command
	sanitized chan event.DomainEvent
	log       *slog.Logger
}

func NewModerationWorker(moderator moderation.Moderator,
	commands chan domain.Command,
	sanitized chan event.DomainEvent, log *slog.Logger) *ModerationWorker {
	return &ModerationWorker{
		moderator: moderator,
		commands:  commands,
		sanitized: sanitized,
		log:       log,
	}
}

func (w *ModerationWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case cmd, ok := <-w.commands:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			postCmd, ok := cmd.(domain.PostMessageCommand)
			if !ok {
				continue
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case w.sanitized <- w.toSanitized(postCmd):
			}
		}
	}
}

func (w *ModerationWorker) toSanitized(cmd domain.PostMessageCommand) event.SanitizedMessage {
	info := whatlanggo.Detect(cmd.Content)

	censored, masked := w.moderator.Censor(cmd.Content)
	if masked > 0 {
		w.log.Debug("censored message content",
			"room", cmd.Room, "sender", cmd.SenderID, "masked_spans", masked)
	}

	return event.SanitizedMessage{
		Room:       cmd.Room,
		Author:     cmd.SenderID,
		Content:    censored,
		Attachment: cmd.Attachment,
		Lang:       info.Lang.Iso6391(),
		ReceivedAt: cmd.ReceivedAt,
	}
}
