// Package domain contains core concepts of the project tracking system.
// This file defines Message events and related rules.
// Messages are immutable and validated by the domain.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat event. ID and CreatedAt are assigned
// by the server at the single dispatch point, never by the sender.
type Message struct {
	ID         uuid.UUID `json:"id"`
	Room       RoomID    `json:"room"`
	SenderID   string    `json:"sender_id"`
	Content    string    `json:"content"`
	Attachment string    `json:"attachment,omitempty"`
	Lang       string    `json:"lang,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
