package testutil

import (
	"time"

	"github.com/alexanderramin/jobclock/internal/domain"
)

// SessionOption customizes a test session built by NewActiveSession.
type SessionOption func(*sessionSpec)

type sessionSpec struct {
	begin time.Time
	tasks []string
}

// WithBegin sets the session's begin time.
func WithBegin(t time.Time) SessionOption {
	return func(s *sessionSpec) { s.begin = t }
}

// WithTasks appends named task events one minute apart after begin.
func WithTasks(names ...string) SessionOption {
	return func(s *sessionSpec) { s.tasks = append(s.tasks, names...) }
}

// NewActiveSession builds an open session with a Begin event and optional tasks.
func NewActiveSession(opts ...SessionOption) *domain.Session {
	spec := &sessionSpec{begin: time.Now().Add(-time.Hour)}
	for _, opt := range opts {
		opt(spec)
	}

	s := domain.NewSession()
	if err := s.Begin(spec.begin); err != nil {
		panic(err)
	}
	for i, name := range spec.tasks {
		at := spec.begin.Add(time.Duration(i+1) * time.Minute)
		if err := s.AddTask(name, at); err != nil {
			panic(err)
		}
	}
	return s
}
