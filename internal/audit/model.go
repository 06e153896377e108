package audit

import "time"

// Entry is one journaled request.
type Entry struct {
	ID        string
	RequestID string
	Method    string
	Path      string
	Status    int
	Duration  time.Duration
	Error     string
	CreatedAt time.Time
}
