package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/runoshun/goals/internal/app"
	"github.com/runoshun/goals/internal/domain"
	"github.com/runoshun/goals/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage the goals configuration file.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(s))
	cmd.AddCommand(newConfigTemplateCommand())
	cmd.AddCommand(newConfigInitCommand(s))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the config file in use, the data directory and the
effective configuration after defaults are applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.with(func(c *app.Container) error {
				out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
				if err != nil {
					return err
				}

				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintln(w, "[Loaded from]")
				if out.File.Exists {
					_, _ = fmt.Fprintf(w, "- %s\n", out.File.Path)
				} else {
					_, _ = fmt.Fprintf(w, "- %s (not found)\n", out.File.Path)
				}
				_, _ = fmt.Fprintf(w, "\n[Data directory]\n- %s\n", out.DataDir)

				if len(out.Effective.Warnings) > 0 {
					_, _ = fmt.Fprintln(w, "\n[Warnings]")
					for _, warning := range out.Effective.Warnings {
						_, _ = fmt.Fprintf(w, "- %s\n", warning)
					}
				}

				_, _ = fmt.Fprintln(w, "\n[Effective Config]")
				return formatEffectiveConfig(w, out.Effective)
			})
		},
	}
	return cmd
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	categories := make([]map[string]string, 0, len(cfg.Categories))
	for _, cat := range cfg.Categories {
		categories = append(categories, map[string]string{
			"name":  cat.Name,
			"color": cat.Color,
			"light": cat.Light,
		})
	}

	store := map[string]any{"backend": string(cfg.Store.Backend)}
	if cfg.Store.Dir != "" {
		store["dir"] = cfg.Store.Dir
	}

	output := map[string]any{
		"default_category": cfg.DefaultCategory,
		"store":            store,
		"log":              map[string]any{"level": cfg.Log.Level},
		"tui":              map[string]any{"watch": cfg.TUI.Watch},
		"categories":       categories,
	}
	if err := toml.NewEncoder(w).Encode(output); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output a commented configuration template built from the defaults.

It does not read any config file, so it works even when the current one is broken.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			content, err := domain.RenderConfigTemplate(domain.NewDefaultConfig())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}
	return cmd
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(s *session) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file",
		Long: `Write a commented configuration file to the config path.

The file lists the categories currently in effect.

Error conditions:
- Target file already exists: error (use --force to overwrite)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.with(func(c *app.Container) error {
				out, err := c.InitConfigUseCase().Execute(cmd.Context(), usecase.InitConfigInput{
					Config: c.AppConfig,
					Force:  force,
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
