// Package vcs provides the version-control collaborator used to pull commit
// subjects into the session timeline. The core never parses git state itself;
// it asks this capability for (time, subject) pairs inside a window.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrUnavailable indicates that the version-control tool could not be
// queried: binary missing, not a repository, or the query itself failed.
var ErrUnavailable = errors.New("version control unavailable")

// Commit is one commit inside the requested window.
type Commit struct {
	At      time.Time
	Subject string
}

// CommitLister lists commits in the repository at dir authored in
// [since, until], ordered ascending by commit time.
type CommitLister interface {
	ListCommits(ctx context.Context, dir string, since, until time.Time) ([]Commit, error)
}

// GitLister implements CommitLister by shelling out to git.
type GitLister struct {
	executor CommandExecutor
}

// NewGitLister creates a GitLister using the default executor.
func NewGitLister() *GitLister {
	return &GitLister{executor: NewExecExecutor()}
}

// NewGitListerWithExecutor creates a GitLister with a custom executor.
func NewGitListerWithExecutor(executor CommandExecutor) *GitLister {
	return &GitLister{executor: executor}
}

func (g *GitLister) ListCommits(ctx context.Context, dir string, since, until time.Time) ([]Commit, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "log",
		"--since="+since.Format(time.RFC3339),
		"--until="+until.Format(time.RFC3339),
		"--reverse",
		"--date=iso-strict",
		"--pretty=format:%ad%x09%s",
	)

	out, err := g.executor.ExecuteWithOutput(cmd)
	if err != nil {
		// A repository with no commits yet is an empty window, not a failure.
		if strings.Contains(err.Error(), "does not have any commits yet") {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return parseLog(out)
}

// parseLog decodes "--pretty=format:%ad%x09%s" output: one line per commit,
// iso-strict author date, a tab, then the subject.
func parseLog(out string) ([]Commit, error) {
	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		dateStr, subject, found := strings.Cut(line, "\t")
		if !found {
			return nil, fmt.Errorf("%w: malformed log line %q", ErrUnavailable, line)
		}
		at, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing commit date %q: %v", ErrUnavailable, dateStr, err)
		}
		commits = append(commits, Commit{At: at.Local(), Subject: subject})
	}
	return commits, nil
}
