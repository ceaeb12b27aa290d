// Package cli provides the command-line interface for goals.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/goals/internal/app"
)

// Command group IDs.
const (
	groupGoal  = "goal"
	groupData  = "data"
	groupSetup = "setup"
)

// Opener builds the container for the selected config file and data directory.
type Opener func(app.Options) (*app.Container, error)

// session owns the container of a single command invocation.
type session struct {
	open Opener
	opts app.Options
}

// with opens the container, runs fn and closes the container.
func (s *session) with(fn func(c *app.Container) error) (err error) {
	c, err := s.open(s.opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(c)
}

// NewRootCommand creates the root command for goals.
// The container is opened per command once the global flags are parsed.
func NewRootCommand(open Opener, version string) *cobra.Command {
	s := &session{open: open}

	root := &cobra.Command{
		Use:   "goals",
		Short: "Personal goal tracker",
		Long: `goals tracks personal goals with milestones and progress.

Running goals without a subcommand opens the interactive dashboard.
Every command reads and writes the same store, so the dashboard and
the command line can be used side by side.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// The dashboard owns the terminal; everything else reports to stderr too.
			s.opts.LogToStderr = cmd != cmd.Root() && cmd.Name() != "tui"
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return s.with(launchTUIFunc)
		},
	}

	root.PersistentFlags().StringVar(&s.opts.ConfigPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/goals/config.toml)")
	root.PersistentFlags().StringVar(&s.opts.DataDir, "data-dir", "", "Data directory (default: [store].dir or $XDG_DATA_HOME/goals)")

	root.AddGroup(
		&cobra.Group{ID: groupGoal, Title: "Goal Commands:"},
		&cobra.Group{ID: groupData, Title: "Data Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	for _, cmd := range []*cobra.Command{
		newAddCommand(s),
		newListCommand(s),
		newShowCommand(s),
		newToggleCommand(s),
		newProgressCommand(s),
		newRmCommand(s),
		newTUICommand(s),
	} {
		cmd.GroupID = groupGoal
		root.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{
		newStatsCommand(s),
		newExportCommand(s),
		newImportCommand(s),
	} {
		cmd.GroupID = groupData
		root.AddCommand(cmd)
	}
	configCmd := newConfigCommand(s)
	configCmd.GroupID = groupSetup
	root.AddCommand(configCmd)

	return root
}
