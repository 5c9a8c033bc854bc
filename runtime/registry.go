package runtime

import (
	"sync"

	"teamboard/contract"
	"teamboard/domain"
)

type Set map[string]struct{}

// Registry maps rooms to their live subscribers. Entries are connection
// scoped: a process restart clears everything by design.
type Registry struct {
	mu          sync.RWMutex
	Sessions    map[string]contract.EventSink // participant -> active sink
	RoomMembers map[domain.RoomID]Set         // room -> participants
}

func NewRegistry() *Registry {
	return &Registry{
		Sessions:    make(map[string]contract.EventSink),
		RoomMembers: make(map[domain.RoomID]Set),
	}
}

// GetSinksForRoom retrieves all active communication channels for a specific room.
// It performs a two-step lookup:
// 1. Identifies participant IDs associated with the room via RoomMembers.
// 2. Resolves those IDs into actual EventSinks using the Sessions map.
//
// This decoupled approach ensures that even if a user is in multiple rooms,
// their connection (sink) is managed in a single place.
// Returns nil if the room doesn't exist or has no members.
func (r *Registry) GetSinksForRoom(roomID domain.RoomID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.RoomMembers[roomID]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for participantID := range members {
		if sink, exists := r.Sessions[participantID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Subscribe registers a participant's active connection and assigns them to a
// specific room. A connection may belong to several rooms by subscribing more
// than once; nothing enforces a single-room constraint.
func (r *Registry) Subscribe(participantID string, roomID domain.RoomID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sessions[participantID] = sink

	if _, ok := r.RoomMembers[roomID]; !ok {
		r.RoomMembers[roomID] = make(Set)
	}
	r.RoomMembers[roomID][participantID] = struct{}{}
}

// Unsubscribe removes a participant from one room, dropping the session when
// they are no longer in any room. No empty sets are left behind.
func (r *Registry) Unsubscribe(participantID string, roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if members, ok := r.RoomMembers[roomID]; ok {
		delete(members, participantID)
		if len(members) == 0 {
			delete(r.RoomMembers, roomID)
		}
	}

	if !r.memberOfAnyLocked(participantID) {
		delete(r.Sessions, participantID)
	}
}

// UnsubscribeAll is the disconnect path: the participant leaves every room
// they belong to and their session is dropped.
func (r *Registry) UnsubscribeAll(participantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.Sessions, participantID)

	for roomID, members := range r.RoomMembers {
		delete(members, participantID)
		if len(members) == 0 {
			delete(r.RoomMembers, roomID)
		}
	}
}

func (r *Registry) memberOfAnyLocked(participantID string) bool {
	for _, members := range r.RoomMembers {
		if _, ok := members[participantID]; ok {
			return true
		}
	}
	return false
}
