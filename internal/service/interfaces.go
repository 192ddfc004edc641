package service

import (
	"context"
	"time"

	"github.com/alexanderramin/jobclock/internal/domain"
)

// SessionSummary is the result of ending a session: the full timeline plus
// the begin/end pair the totals are computed from.
type SessionSummary struct {
	Events []domain.Event
	Begin  time.Time
	End    time.Time
	Tasks  []string
}

// SessionStatus is a read-only snapshot of the open session.
type SessionStatus struct {
	Active    bool
	StartedAt time.Time
	Events    []domain.Event
	Now       time.Time
}

// SessionService exposes the session lifecycle: one active session at a
// time, task and commit events appended during it, a summary on end.
type SessionService interface {
	// Start opens a new session. Fails if one is already active.
	Start(ctx context.Context) error
	// AddTask appends a named task event to the open session.
	AddTask(ctx context.Context, name string) error
	// CollectCommits appends one commit event per commit made in the
	// repository at dir between session start and now. Returns the number
	// of commits appended; zero commits is a successful no-op.
	CollectCommits(ctx context.Context, dir string) (int, error)
	// End closes the session, clears persisted state, and returns the
	// timeline summary.
	End(ctx context.Context) (*SessionSummary, error)
	// Status reports the open session without mutating anything.
	Status(ctx context.Context) (*SessionStatus, error)
}
