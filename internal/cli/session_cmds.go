package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/jobclock/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a new work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Start(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session started")
			return nil
		},
	}
}

func newTaskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "task NAME",
		Short: "Tag a named task in the current session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if err := app.Sessions.AddTask(context.Background(), name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added job: %s\n", name)
			return nil
		},
	}
}

func newGitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "git",
		Short: "Append commits made since the session started",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.WorkDir
			if dir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("resolving working directory: %w", err)
				}
				dir = cwd
			}

			n, err := app.Sessions.CollectCommits(context.Background(), dir)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No commits in the session window")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Collected %d commit(s)\n", n)
			return nil
		},
	}
}

func newEndCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the current session and print the timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Sessions.End(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session ended")
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.FormatSummary(summary.Events, summary.Begin, summary.End, summary.Tasks))
			return nil
		},
	}
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.Sessions.Status(context.Background())
			if err != nil {
				return err
			}
			if !status.Active {
				fmt.Fprintln(cmd.OutOrStdout(), "No active session")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.FormatStatus(status.StartedAt, status.Events, status.Now))
			return nil
		},
	}
}
