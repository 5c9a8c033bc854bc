// Package domain contains core concepts of the project tracking system.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/samber/lo"
)

type ProjectID string

// Member is one line of a project's member table: who works on what, until when.
type Member struct {
	Name     string    `json:"name" validate:"required"`
	Task     string    `json:"task"`
	Deadline time.Time `json:"deadline"`
}

// Project is the durable record behind a board. Version is the optimistic
// concurrency counter: it is bumped by the repository on every successful
// save, and a writer holding a stale Version gets a conflict instead of
// silently overwriting someone else's update.
type Project struct {
	ID          ProjectID `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Members     []Member  `json:"members" validate:"dive"`
	Owner       string    `json:"owner" validate:"required"`
	Version     uint64    `json:"version"`
}

// MemberNames returns the member usernames in declaration order.
func (p Project) MemberNames() []string {
	return lo.Map(p.Members, func(m Member, _ int) string {
		return m.Name
	})
}

func (p Project) HasMember(username string) bool {
	return lo.ContainsBy(p.Members, func(m Member) bool {
		return m.Name == username
	})
}
