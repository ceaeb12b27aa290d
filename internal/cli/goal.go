package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/goals/internal/app"
	"github.com/runoshun/goals/internal/domain"
	"github.com/runoshun/goals/internal/usecase"
)

// newAddCommand creates the add command for creating goals.
func newAddCommand(s *session) *cobra.Command {
	var in usecase.CreateGoalInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new goal",
		Long: `Create a new goal.

The category must be one of the configured categories (case-insensitive).
When omitted, default_category from the config is used.`,
		Example: `  # Minimal goal
  goals add --title "Read 12 books"

  # Goal with milestones and a target date
  goals add --title "Run 5k" --category Health --due 2026-06-01 \
    --milestone "Week 1" --milestone "Week 2"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.with(func(c *app.Container) error {
				out, err := c.CreateGoalUseCase().Execute(cmd.Context(), in)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created goal %s: %s\n", out.Goal.ID, out.Goal.Title)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Goal title (required)")
	cmd.Flags().StringVar(&in.Description, "desc", "", "Goal description")
	cmd.Flags().StringVar(&in.Category, "category", "", "Category name")
	cmd.Flags().StringVar(&in.TargetDate, "due", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&in.MilestoneTitles, "milestone", nil, "Milestone title (can specify multiple)")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(s *session) *cobra.Command {
	var filter string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals",
		Long: `List goals in creation order.

--filter accepts all, active, completed or a category name.
An unknown filter lists every goal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.with(func(c *app.Container) error {
				out, err := c.ListGoalsUseCase().Execute(cmd.Context(), usecase.ListGoalsInput{
					Filter: domain.Filter(strings.TrimSpace(filter)),
				})
				if err != nil {
					return err
				}
				if asJSON {
					if out.Goals == nil {
						out.Goals = []domain.Goal{}
					}
					return writeJSON(cmd.OutOrStdout(), out.Goals)
				}
				if len(out.All) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No goals yet. Start by adding your first goal!")
					return nil
				}
				printGoalList(cmd.OutOrStdout(), out.Goals)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Filter by status or category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

// printGoalList prints goals as an aligned table.
func printGoalList(w io.Writer, goals []domain.Goal) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPROGRESS\tCATEGORY\tDUE\tMILESTONES\tTITLE")
	for i := range goals {
		g := &goals[i]
		due := g.TargetDate
		if due == "" {
			due = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d%%\t%s\t%s\t%d/%d\t%s\n",
			g.ID, goalStatus(g), g.Progress, g.Category, due,
			g.CompletedMilestones(), len(g.Milestones), g.Title)
	}
	_ = tw.Flush()
}

func goalStatus(g *domain.Goal) string {
	switch {
	case g.Completed:
		return "completed"
	case g.IsInProgress():
		return "in progress"
	default:
		return "not started"
	}
}

// newShowCommand creates the show command.
func newShowCommand(s *session) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <goal>",
		Short: "Show goal details",
		Long:  `Show a goal. The goal can be given by its ID or a unique ID prefix.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.with(func(c *app.Container) error {
				out, err := c.ShowGoalUseCase().Execute(cmd.Context(), usecase.ShowGoalInput{GoalID: args[0]})
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), out.Goal)
				}
				printGoal(cmd.OutOrStdout(), &out.Goal)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

// printGoal prints a goal in human-readable form.
func printGoal(w io.Writer, g *domain.Goal) {
	_, _ = fmt.Fprintf(w, "%s  %s\n", g.ID, g.Title)
	_, _ = fmt.Fprintf(w, "Category:  %s\n", g.Category)
	_, _ = fmt.Fprintf(w, "Status:    %s\n", goalStatus(g))
	_, _ = fmt.Fprintf(w, "Progress:  %s %d%%\n", textBar(g.Progress, 20), g.Progress)
	if g.HasTargetDate() {
		_, _ = fmt.Fprintf(w, "Target:    %s\n", g.TargetDate)
	}
	_, _ = fmt.Fprintf(w, "Created:   %s\n", g.CreatedAt.Local().Format("2006-01-02 15:04"))
	if g.CompletedAt != nil {
		_, _ = fmt.Fprintf(w, "Completed: %s\n", g.CompletedAt.Local().Format("2006-01-02 15:04"))
	}
	if g.Description != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", g.Description)
	}
	if len(g.Milestones) > 0 {
		_, _ = fmt.Fprintf(w, "\nMilestones (%d/%d):\n", g.CompletedMilestones(), len(g.Milestones))
		for i, m := range g.Milestones {
			mark := " "
			if m.Completed {
				mark = "x"
			}
			_, _ = fmt.Fprintf(w, "  [%s] %d. %s\n", mark, i+1, m.Title)
		}
	}
}

// textBar renders a progress bar of width cells.
func textBar(progress, width int) string {
	filled := domain.ClampProgress(progress) * width / domain.MaxProgress
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// newToggleCommand creates the toggle command.
func newToggleCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <goal> <milestone>",
		Short: "Toggle a milestone",
		Long: `Flip a milestone between done and not done.

The milestone can be given by its ID or its 1-based position.
The goal's progress is recomputed from its milestones.`,
		Example: `  # Mark the second milestone of a goal
  goals toggle 01J9Z 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.with(func(c *app.Container) error {
				out, err := c.ToggleMilestoneUseCase().Execute(cmd.Context(), usecase.ToggleMilestoneInput{
					GoalID:      args[0],
					MilestoneID: args[1],
				})
				if err != nil {
					return err
				}
				if !out.Toggled {
					if out.Goal.ID == "" {
						return fmt.Errorf("%w: %s", domain.ErrGoalNotFound, args[0])
					}
					return fmt.Errorf("%w: %s", domain.ErrMilestoneNotFound, args[1])
				}
				m := out.Goal.Milestones[out.Goal.MilestoneIndex(resolvedMilestone(&out.Goal, args[1]))]
				state := "not done"
				if m.Completed {
					state = "done"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Milestone %q marked %s (progress %d%%)\n",
					m.Title, state, out.Goal.Progress)
				return nil
			})
		},
	}
	return cmd
}

// resolvedMilestone maps a 1-based position to a milestone ID.
func resolvedMilestone(g *domain.Goal, ref string) string {
	ref = strings.TrimSpace(ref)
	if g.MilestoneIndex(ref) >= 0 {
		return ref
	}
	if pos, err := strconv.Atoi(ref); err == nil && pos >= 1 && pos <= len(g.Milestones) {
		return g.Milestones[pos-1].ID
	}
	return ref
}

// newProgressCommand creates the progress command.
func newProgressCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress <goal> <0-100>",
		Short: "Set a goal's progress",
		Long: `Set a goal's progress directly.

Progress 100 marks the goal completed. Milestones are left unchanged.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			progress, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: %q", domain.ErrInvalidProgress, args[1])
			}
			return s.with(func(c *app.Container) error {
				out, err := c.SetProgressUseCase().Execute(cmd.Context(), usecase.SetProgressInput{
					GoalID:   args[0],
					Progress: progress,
				})
				if err != nil {
					return err
				}
				if !out.Updated {
					return fmt.Errorf("%w: %s", domain.ErrGoalNotFound, args[0])
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Progress of %s set to %d%%\n", out.Goal.ID, out.Goal.Progress)
				if out.Goal.Completed {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Goal completed!")
				}
				return nil
			})
		},
	}
	return cmd
}

// newRmCommand creates the rm command.
func newRmCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <goal>",
		Aliases: []string{"delete"},
		Short:   "Delete a goal",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.with(func(c *app.Container) error {
				out, err := c.DeleteGoalUseCase().Execute(cmd.Context(), usecase.DeleteGoalInput{GoalID: args[0]})
				if err != nil {
					return err
				}
				if !out.Removed {
					return fmt.Errorf("%w: %s", domain.ErrGoalNotFound, args[0])
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %s\n", out.GoalID)
				return nil
			})
		},
	}
	return cmd
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
