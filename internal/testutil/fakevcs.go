package testutil

import (
	"context"
	"time"

	"github.com/alexanderramin/jobclock/internal/vcs"
)

// FakeCommitLister is a canned vcs.CommitLister for service and CLI tests.
type FakeCommitLister struct {
	Commits []vcs.Commit
	Err     error

	LastDir   string
	LastSince time.Time
	LastUntil time.Time
}

func (f *FakeCommitLister) ListCommits(_ context.Context, dir string, since, until time.Time) ([]vcs.Commit, error) {
	f.LastDir = dir
	f.LastSince = since
	f.LastUntil = until
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Commits, nil
}
