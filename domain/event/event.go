package event

import (
	"time"

	"teamboard/domain"

	"github.com/google/uuid"
)

type DomainEvent interface {
	RoomID() domain.RoomID
}

// SanitizedMessage is a submission that went through moderation: content is
// censored, language is tagged, but no identity or timestamp is assigned yet.
type SanitizedMessage struct {
	Room       domain.RoomID
	Author     string
	Content    string
	Attachment string
	Lang       string
	ReceivedAt time.Time
}

func (m SanitizedMessage) RoomID() domain.RoomID {
	return m.Room
}

// MessageBroadcast is the definitive message as appended to the room log,
// carrying the server-assigned identifier and timestamp. This is what
// subscribers receive.
type MessageBroadcast struct {
	ID         uuid.UUID
	Room       domain.RoomID
	Author     string
	Content    string
	Attachment string
	Lang       string
	At         time.Time
	ReceivedAt time.Time
}

func (m MessageBroadcast) RoomID() domain.RoomID {
	return m.Room
}
