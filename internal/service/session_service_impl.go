package service

import (
	"context"
	"time"

	"github.com/alexanderramin/jobclock/internal/db"
	"github.com/alexanderramin/jobclock/internal/domain"
	"github.com/alexanderramin/jobclock/internal/repository"
	"github.com/alexanderramin/jobclock/internal/vcs"
)

type sessionService struct {
	uow     db.UnitOfWork
	commits vcs.CommitLister
	now     func() time.Time
}

// NewSessionService creates the session lifecycle service. Commit collection
// goes through the injected CommitLister so tests can fake the git call.
func NewSessionService(uow db.UnitOfWork, commits vcs.CommitLister) SessionService {
	return &sessionService{uow: uow, commits: commits, now: time.Now}
}

func (s *sessionService) Start(ctx context.Context) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSessionRepo(tx)
		session, err := repo.Load(ctx)
		if err != nil {
			return err
		}
		if err := session.Begin(s.now()); err != nil {
			return err
		}
		return repo.Save(ctx, session)
	})
}

func (s *sessionService) AddTask(ctx context.Context, name string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSessionRepo(tx)
		session, err := repo.Load(ctx)
		if err != nil {
			return err
		}
		if err := session.AddTask(name, s.now()); err != nil {
			return err
		}
		return repo.Save(ctx, session)
	})
}

func (s *sessionService) CollectCommits(ctx context.Context, dir string) (int, error) {
	var appended int
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSessionRepo(tx)
		session, err := repo.Load(ctx)
		if err != nil {
			return err
		}
		if !session.Active {
			return domain.ErrNoSession
		}

		begin, _ := session.StartedAt()
		commits, err := s.commits.ListCommits(ctx, dir, begin, s.now())
		if err != nil {
			return err
		}
		for _, c := range commits {
			if err := session.AddCommit(c.Subject, c.At); err != nil {
				return err
			}
		}
		appended = len(commits)
		return repo.Save(ctx, session)
	})
	return appended, err
}

func (s *sessionService) End(ctx context.Context) (*SessionSummary, error) {
	var summary *SessionSummary
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSessionRepo(tx)
		session, err := repo.Load(ctx)
		if err != nil {
			return err
		}
		if err := session.End(s.now()); err != nil {
			return err
		}

		begin, _ := session.StartedAt()
		end := session.Events[len(session.Events)-1].At
		summary = &SessionSummary{
			Events: session.Events,
			Begin:  begin,
			End:    end,
			Tasks:  session.TaskNames(),
		}

		// The log is ephemeral per session: clear, don't archive.
		session.Reset()
		return repo.Save(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *sessionService) Status(ctx context.Context) (*SessionStatus, error) {
	var status *SessionStatus
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSessionRepo(tx)
		session, err := repo.Load(ctx)
		if err != nil {
			return err
		}
		started, _ := session.StartedAt()
		status = &SessionStatus{
			Active:    session.Active,
			StartedAt: started,
			Events:    session.Events,
			Now:       s.now().Truncate(time.Second),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return status, nil
}
