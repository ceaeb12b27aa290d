package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/goals/internal/app"
	"github.com/runoshun/goals/internal/usecase"
)

// newStatsCommand creates the stats command.
func newStatsCommand(s *session) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show goal statistics",
		Long: `Show the number of goals, completed goals and goals in progress,
and the current completion streak in days.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.with(func(c *app.Container) error {
				out, err := c.GoalStatsUseCase().Execute(cmd.Context(), usecase.GoalStatsInput{})
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), out.Stats)
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "Total Goals:  %d\n", out.Stats.Total)
				_, _ = fmt.Fprintf(w, "Completed:    %d\n", out.Stats.Completed)
				_, _ = fmt.Fprintf(w, "In Progress:  %d\n", out.Stats.InProgress)
				_, _ = fmt.Fprintf(w, "Day Streak:   %d\n", out.Stats.Streak)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

// newExportCommand creates the export command.
func newExportCommand(s *session) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all goals",
		Long: `Write every goal to stdout or a file as YAML or JSON.

The output can be read back with goals import.`,
		Example: `  goals export > goals.yaml
  goals export --format json -o backup.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.with(func(c *app.Container) error {
				out, err := c.ExportGoalsUseCase().Execute(cmd.Context(), usecase.ExportGoalsInput{Format: format})
				if err != nil {
					return err
				}
				if output == "" || output == "-" {
					_, err = cmd.OutOrStdout().Write(out.Data)
					return err
				}
				if err := os.WriteFile(output, out.Data, 0o600); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d goal(s) to %s\n", out.Count, output)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", usecase.FormatYAML, "Output format (yaml or json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(s *session) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import goals from an export",
		Long: `Append goals from a YAML or JSON export.

Goals whose ID already exists are skipped. Use - to read from stdin.
The format is detected from the file extension or content unless --format is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if format == "" {
				format = formatFromExt(args[0])
			}
			return s.with(func(c *app.Container) error {
				out, err := c.ImportGoalsUseCase().Execute(cmd.Context(), usecase.ImportGoalsInput{
					Data:   data,
					Format: format,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d goal(s), skipped %d\n", out.Imported, out.Skipped)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Input format (yaml or json)")

	return cmd
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	return data, nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return usecase.FormatJSON
	case ".yaml", ".yml":
		return usecase.FormatYAML
	}
	return ""
}
