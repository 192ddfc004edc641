package domain

import (
	"errors"
	"strings"
	"time"
)

// Timeline event labels. Task and commit events carry a prefix plus
// the user- or git-supplied text.
const (
	LabelBegin = "Begin session"
	LabelEnd   = "End session"

	taskPrefix   = "Job: "
	commitPrefix = "Commit: "
)

var (
	ErrSessionActive = errors.New("session already active")
	ErrNoSession     = errors.New("no active session")
	ErrEmptyTaskName = errors.New("task name is required")
)

// TaskLabel builds the timeline label for a named task.
func TaskLabel(name string) string { return taskPrefix + name }

// CommitLabel builds the timeline label for a commit subject line.
func CommitLabel(subject string) string { return commitPrefix + subject }

// Event is one entry in the session timeline.
type Event struct {
	At    time.Time
	Label string
}

// Session is the persisted state of the tracker: whether a session is open
// and its ordered event log. The log always starts with a Begin event while
// the session is active, and is discarded once the session ends.
type Session struct {
	Active bool
	Events []Event
}

// NewSession returns an empty, inactive session.
func NewSession() *Session {
	return &Session{}
}

// Begin opens the session. Fails with ErrSessionActive if one is already open.
func (s *Session) Begin(now time.Time) error {
	if s.Active {
		return ErrSessionActive
	}
	s.Active = true
	s.Events = []Event{{At: now.Truncate(time.Second), Label: LabelBegin}}
	return nil
}

// AddTask appends a named task event to the open session.
func (s *Session) AddTask(name string, now time.Time) error {
	if !s.Active {
		return ErrNoSession
	}
	if name == "" {
		return ErrEmptyTaskName
	}
	s.Events = append(s.Events, Event{At: now.Truncate(time.Second), Label: TaskLabel(name)})
	return nil
}

// AddCommit appends a commit event stamped with the commit's own time.
func (s *Session) AddCommit(subject string, at time.Time) error {
	if !s.Active {
		return ErrNoSession
	}
	s.Events = append(s.Events, Event{At: at.Truncate(time.Second), Label: CommitLabel(subject)})
	return nil
}

// End closes the session by appending the End event. The caller reads the
// timeline before resetting persisted state.
func (s *Session) End(now time.Time) error {
	if !s.Active {
		return ErrNoSession
	}
	s.Events = append(s.Events, Event{At: now.Truncate(time.Second), Label: LabelEnd})
	s.Active = false
	return nil
}

// Reset clears the session back to the empty, inactive form.
func (s *Session) Reset() {
	s.Active = false
	s.Events = nil
}

// StartedAt returns the timestamp of the opening Begin event.
// ok is false when the log is empty.
func (s *Session) StartedAt() (time.Time, bool) {
	if len(s.Events) == 0 {
		return time.Time{}, false
	}
	return s.Events[0].At, true
}

// TaskNames returns the names of all task events in insertion order.
func (s *Session) TaskNames() []string {
	var names []string
	for _, e := range s.Events {
		if strings.HasPrefix(e.Label, taskPrefix) {
			names = append(names, strings.TrimPrefix(e.Label, taskPrefix))
		}
	}
	return names
}
