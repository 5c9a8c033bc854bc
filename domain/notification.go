package domain

import (
	"math"
	"time"
)

// Notification tells a member how many days remain before one of their task
// deadlines. Derived data, never stored.
type Notification struct {
	ProjectName string    `json:"project_name"`
	Task        string    `json:"task"`
	Deadline    time.Time `json:"deadline"`
	DaysLeft    int       `json:"days_left"`
}

// DaysUntil returns ceil((deadline - now) / 1 day). A deadline later today
// counts as 1, a missed one goes negative.
func DaysUntil(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// NotificationsFor collects deadline notifications for a username across the
// given projects, one per membership of that user.
func NotificationsFor(username string, projects []Project, now time.Time) []Notification {
	var out []Notification
	for _, p := range projects {
		for _, m := range p.Members {
			if m.Name != username || m.Deadline.IsZero() {
				continue
			}
			out = append(out, Notification{
				ProjectName: p.Name,
				Task:        m.Task,
				Deadline:    m.Deadline,
				DaysLeft:    DaysUntil(m.Deadline, now),
			})
		}
	}
	return out
}
