package domain

import "sync"

// RoomID identifies a chat room ("proj-42" style). Rooms are keyed by string
// so the transport can join by the same identifier the record store uses.
type RoomID string

// Room owns the in-memory, append-only message log of one chat room.
// Messages are never mutated or deleted once appended; process restart clears
// the history on purpose. The lock exists because appends come from the room
// worker while history reads come from request handlers.
type Room struct {
	ID RoomID

	mu       sync.RWMutex
	messages []Message
}

func NewRoom(id RoomID) *Room {
	return &Room{ID: id}
}

// Append adds a message at the end of the log. O(1) amortized.
func (r *Room) Append(message Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

// Messages returns a copy of the full log in append order.
func (r *Room) Messages() []Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

func (r *Room) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages)
}
