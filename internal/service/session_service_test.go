package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/jobclock/internal/domain"
	"github.com/alexanderramin/jobclock/internal/repository"
	"github.com/alexanderramin/jobclock/internal/testutil"
	"github.com/alexanderramin/jobclock/internal/vcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serviceSetup wires a SessionService over an in-memory DB with a fake
// commit lister and a controllable clock.
func serviceSetup(t *testing.T) (*sessionService, *testutil.FakeCommitLister, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	lister := &testutil.FakeCommitLister{}

	svc := NewSessionService(testutil.NewTestUoW(database), lister).(*sessionService)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 13, 20, 0, 0, 0, time.Local)
	}
	return svc, lister, database
}

func loadPersisted(t *testing.T, database *sql.DB) *domain.Session {
	t.Helper()
	s, err := repository.NewSQLiteSessionRepo(database).Load(context.Background())
	require.NoError(t, err)
	return s
}

func TestStart_OpensSession(t *testing.T) {
	svc, _, database := serviceSetup(t)

	require.NoError(t, svc.Start(context.Background()))

	s := loadPersisted(t, database)
	assert.True(t, s.Active)
	require.Len(t, s.Events, 1)
	assert.Equal(t, domain.LabelBegin, s.Events[0].Label)
}

func TestStart_FailsWhenAlreadyActive(t *testing.T) {
	svc, _, database := serviceSetup(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx))
	before := loadPersisted(t, database)

	err := svc.Start(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionActive)

	// Idempotent on failure: persisted state unchanged by the second call.
	after := loadPersisted(t, database)
	assert.Equal(t, before, after)
}

func TestAddTask_AppendsInCallOrder(t *testing.T) {
	svc, _, database := serviceSetup(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx))
	require.NoError(t, svc.AddTask(ctx, "Write report"))
	require.NoError(t, svc.AddTask(ctx, "Review PR"))

	s := loadPersisted(t, database)
	require.Len(t, s.Events, 3)
	assert.Equal(t, "Job: Write report", s.Events[1].Label)
	assert.Equal(t, "Job: Review PR", s.Events[2].Label)
}

func TestAddTask_NoSession(t *testing.T) {
	svc, _, database := serviceSetup(t)

	err := svc.AddTask(context.Background(), "Orphan")
	assert.ErrorIs(t, err, domain.ErrNoSession)

	s := loadPersisted(t, database)
	assert.False(t, s.Active)
	assert.Empty(t, s.Events)
}

func TestCollectCommits_AppendsAscending(t *testing.T) {
	svc, lister, database := serviceSetup(t)
	ctx := context.Background()

	begin := time.Date(2024, 3, 13, 20, 0, 0, 0, time.Local)
	lister.Commits = []vcs.Commit{
		{At: begin.Add(5 * time.Minute), Subject: "Fix login redirect"},
		{At: begin.Add(20 * time.Minute), Subject: "Add retry to uploader"},
	}

	require.NoError(t, svc.Start(ctx))
	n, err := svc.CollectCommits(ctx, "/work/repo")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// The query window runs from the Begin event to now.
	assert.Equal(t, "/work/repo", lister.LastDir)
	assert.True(t, lister.LastSince.Equal(begin))
	assert.True(t, lister.LastUntil.Equal(begin))

	s := loadPersisted(t, database)
	require.Len(t, s.Events, 3)
	assert.Equal(t, "Commit: Fix login redirect", s.Events[1].Label)
	assert.Equal(t, "Commit: Add retry to uploader", s.Events[2].Label)
	assert.True(t, s.Events[1].At.Before(s.Events[2].At))
}

func TestCollectCommits_ZeroCommitsIsNoOp(t *testing.T) {
	svc, _, database := serviceSetup(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx))
	n, err := svc.CollectCommits(ctx, ".")
	require.NoError(t, err)
	assert.Zero(t, n)

	s := loadPersisted(t, database)
	assert.Len(t, s.Events, 1)
}

func TestCollectCommits_NoSession(t *testing.T) {
	svc, _, _ := serviceSetup(t)

	_, err := svc.CollectCommits(context.Background(), ".")
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestCollectCommits_VCSUnavailableLeavesStateUntouched(t *testing.T) {
	svc, lister, database := serviceSetup(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx))
	require.NoError(t, svc.AddTask(ctx, "Before failure"))
	before := loadPersisted(t, database)

	lister.Err = vcs.ErrUnavailable
	_, err := svc.CollectCommits(ctx, ".")
	assert.ErrorIs(t, err, vcs.ErrUnavailable)

	after := loadPersisted(t, database)
	assert.Equal(t, before, after)
}

func TestEnd_SummaryAndClear(t *testing.T) {
	svc, _, database := serviceSetup(t)
	ctx := context.Background()

	begin := time.Date(2024, 3, 13, 20, 0, 0, 0, time.Local)
	end := time.Date(2024, 3, 13, 21, 5, 0, 0, time.Local)

	svc.now = func() time.Time { return begin }
	require.NoError(t, svc.Start(ctx))
	require.NoError(t, svc.AddTask(ctx, "Write report"))

	svc.now = func() time.Time { return end }
	summary, err := svc.End(ctx)
	require.NoError(t, err)

	require.Len(t, summary.Events, 3)
	assert.Equal(t, domain.LabelBegin, summary.Events[0].Label)
	assert.Equal(t, "Job: Write report", summary.Events[1].Label)
	assert.Equal(t, domain.LabelEnd, summary.Events[2].Label)
	assert.True(t, summary.Begin.Equal(begin))
	assert.True(t, summary.End.Equal(end))
	assert.Equal(t, []string{"Write report"}, summary.Tasks)
	assert.Equal(t, "1h 5m 0s", domain.FormatElapsed(summary.Begin, summary.End))

	// Persisted state cleared; a subsequent task call fails.
	s := loadPersisted(t, database)
	assert.False(t, s.Active)
	assert.Empty(t, s.Events)
	assert.ErrorIs(t, svc.AddTask(ctx, "Too late"), domain.ErrNoSession)
}

func TestEnd_NoSession(t *testing.T) {
	svc, _, _ := serviceSetup(t)

	_, err := svc.End(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStatus_ReportsWithoutMutating(t *testing.T) {
	svc, _, database := serviceSetup(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx))
	require.NoError(t, svc.AddTask(ctx, "Reading"))

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Active)
	assert.Len(t, status.Events, 2)
	assert.True(t, status.StartedAt.Equal(svc.now()))

	s := loadPersisted(t, database)
	assert.Len(t, s.Events, 2)
}

func TestStatus_Inactive(t *testing.T) {
	svc, _, _ := serviceSetup(t)

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.Empty(t, status.Events)
}
