package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/goals/internal/app"
	"github.com/runoshun/goals/internal/infra/watcher"
	"github.com/runoshun/goals/internal/tui"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// newTUICommand creates the tui command for launching the interactive TUI.
// Running goals without arguments does the same.
func newTUICommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive dashboard",
		Long:  `Launch the interactive terminal dashboard for managing goals.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return s.with(launchTUIFunc)
		},
	}
	return cmd
}

// launchTUI runs the dashboard until the user quits.
func launchTUI(c *app.Container) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.New(c)
	if c.AppConfig.TUI.Watch {
		if w, err := startWatcher(ctx, c); err != nil {
			c.Logger.Warn("", "watch", "store watcher disabled: "+err.Error())
		} else {
			defer w.Stop()
			model = model.WithChanges(w.Changes())
		}
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func startWatcher(ctx context.Context, c *app.Container) (*watcher.Watcher, error) {
	w, err := c.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return nil, err
	}
	return w, nil
}
