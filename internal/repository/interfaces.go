package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/jobclock/internal/domain"
)

// ErrCorruptState marks persisted session state that exists but cannot be
// decoded (bad timestamp, bad flag, missing state row). Distinct from "no
// active session" so corruption never masquerades as a fresh inactive state.
var ErrCorruptState = errors.New("corrupt session state")

// SessionRepo loads and stores the single persisted session.
type SessionRepo interface {
	// Load reads the full session: active flag plus the ordered event log.
	Load(ctx context.Context) (*domain.Session, error)
	// Save replaces the persisted session wholesale with the given value.
	Save(ctx context.Context, s *domain.Session) error
}
