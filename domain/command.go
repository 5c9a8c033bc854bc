package domain

import (
	"time"
)

type Command interface {
	RoomID() RoomID
}

// PostMessageCommand is a sender's intent to publish to a room. ReceivedAt is
// stamped when the transport hands the command to the engine; the definitive
// message timestamp is assigned later, at the dispatch point.
type PostMessageCommand struct {
	Room       RoomID
	SenderID   string
	Content    string
	Attachment string
	ReceivedAt time.Time
}

func (p PostMessageCommand) RoomID() RoomID {
	return p.Room
}
