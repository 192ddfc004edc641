package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/jobclock/internal/cli"
	"github.com/alexanderramin/jobclock/internal/cli/formatter"
	"github.com/alexanderramin/jobclock/internal/db"
	"github.com/alexanderramin/jobclock/internal/service"
	"github.com/alexanderramin/jobclock/internal/vcs"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.jobclock/jobclock.db
	dbPath := os.Getenv("JOBCLOCK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".jobclock", "jobclock.db")
	}

	// Open the state database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening state database: %w", err)
	}
	defer database.Close()

	// Plain output when stdout is piped or redirected.
	formatter.Init(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	app := &cli.App{
		Sessions: service.NewSessionService(
			db.NewSQLiteUnitOfWork(database),
			vcs.NewGitLister(),
		),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
