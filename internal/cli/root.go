package cli

import (
	"github.com/alexanderramin/jobclock/internal/service"
	"github.com/spf13/cobra"
)

// Version is the release version reported by "jobclock version".
const Version = "1.0.0"

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Sessions service.SessionService

	// WorkDir is the directory whose repository the git command queries.
	// Defaults to the process working directory when empty.
	WorkDir string
}

// NewRootCmd creates the top-level "jobclock" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "jobclock",
		Short:         "Track a single work session: tasks, commits, and total time",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStartCmd(app),
		newTaskCmd(app),
		newGitCmd(app),
		newEndCmd(app),
		newStatusCmd(app),
	)

	return root
}
