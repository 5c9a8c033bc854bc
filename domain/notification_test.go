package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDaysUntil(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	// Later the same day still counts as one day left.
	req.Equal(1, DaysUntil(now.Add(6*time.Hour), now))
	req.Equal(3, DaysUntil(now.AddDate(0, 0, 3), now))
	// A missed deadline goes negative.
	req.Equal(-2, DaysUntil(now.AddDate(0, 0, -2), now))
	req.Equal(0, DaysUntil(now, now))
}

func TestNotificationsFor(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	deadline := now.AddDate(0, 0, 3)

	projects := []Project{
		{
			Name: "apollo",
			Members: []Member{
				{Name: "alice", Task: "write docs", Deadline: deadline},
				{Name: "bob", Task: "review", Deadline: deadline},
				// No deadline set, no notification expected.
				{Name: "alice", Task: "triage"},
			},
		},
		{
			Name: "gemini",
			Members: []Member{
				{Name: "alice", Task: "deploy", Deadline: now.AddDate(0, 0, -1)},
			},
		},
	}

	notifications := NotificationsFor("alice", projects, now)
	req.Len(notifications, 2)

	req.Equal("apollo", notifications[0].ProjectName)
	req.Equal("write docs", notifications[0].Task)
	req.Equal(3, notifications[0].DaysLeft)

	req.Equal("gemini", notifications[1].ProjectName)
	req.Equal(-1, notifications[1].DaysLeft)

	req.Empty(NotificationsFor("carol", projects, now))
}
