// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/goals/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Fallback colors for a configured category that names none.
const (
	fallbackColor = "#94A3B8"
	fallbackLight = "#F1F5F9"
)

// Loader loads configuration from a TOML file.
type Loader struct {
	path string // Path to config.toml
}

// NewLoader creates a Loader for path. An empty path means the default
// global config file.
func NewLoader(path string) *Loader {
	if path == "" {
		path = DefaultPath()
	}
	return &Loader{path: path}
}

// NewLoaderWithGlobalDir creates a Loader reading config.toml from a custom
// config directory. This is useful for testing.
func NewLoaderWithGlobalDir(globalConfDir string) *Loader {
	return &Loader{path: filepath.Join(globalConfDir, domain.ConfigFileName)}
}

// DefaultPath returns the default global config file path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigPath(configHome)
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DataDir(dataHome)
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return l.path
}

// Load returns the configuration. A missing file yields the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	if l.path == "" {
		return domain.NewDefaultConfig(), nil
	}
	data, err := os.ReadFile(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.NewDefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse parses TOML config data over the defaults.
// Unknown keys and invalid values are reported in Config.Warnings.
func Parse(data []byte) (*domain.Config, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := domain.NewDefaultConfig()
	var warnings []string
	warnType := func(key, want string) {
		warnings = append(warnings, fmt.Sprintf("invalid value for %s: expected %s", key, want))
	}

	for section, value := range raw {
		switch section {
		case "default_category":
			if s, ok := value.(string); ok {
				res.DefaultCategory = s
			} else {
				warnType("default_category", "string")
			}
		case "store":
			m, ok := value.(map[string]any)
			if !ok {
				warnType("[store]", "table")
				continue
			}
			for k, v := range m {
				switch k {
				case "backend":
					if s, ok := v.(string); ok {
						res.Store.Backend = domain.StoreKind(strings.ToLower(s))
					} else {
						warnType("[store].backend", "string")
					}
				case "dir":
					if s, ok := v.(string); ok {
						res.Store.Dir = s
					} else {
						warnType("[store].dir", "string")
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "log":
			m, ok := value.(map[string]any)
			if !ok {
				warnType("[log]", "table")
				continue
			}
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					} else {
						warnType("[log].level", "string")
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "tui":
			m, ok := value.(map[string]any)
			if !ok {
				warnType("[tui]", "table")
				continue
			}
			for k, v := range m {
				switch k {
				case "watch":
					if b, ok := v.(bool); ok {
						res.TUI.Watch = b
					} else {
						warnType("[tui].watch", "boolean")
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [tui]: %s", k))
				}
			}
		case "categories":
			items, ok := value.([]any)
			if !ok {
				warnType("[[categories]]", "array of tables")
				continue
			}
			table, ws := parseCategories(items)
			warnings = append(warnings, ws...)
			if len(table) > 0 {
				res.Categories = table
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parseCategories parses the [[categories]] array.
// Entries without a name and repeated names are skipped with a warning.
// Missing colors are taken from the built-in category of the same name.
func parseCategories(items []any) (domain.CategoryTable, []string) {
	builtin := domain.CategoryTable(domain.DefaultCategories())
	var (
		table    domain.CategoryTable
		warnings []string
	)
	seen := make(map[string]bool)

	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("invalid [[categories]] entry %d: expected table", i+1))
			continue
		}
		var c domain.Category
		for k, v := range m {
			s, isString := v.(string)
			switch k {
			case "name", "color", "light":
				if !isString {
					warnings = append(warnings, fmt.Sprintf("invalid value for [[categories]] entry %d %s: expected string", i+1, k))
					continue
				}
			default:
				warnings = append(warnings, fmt.Sprintf("unknown key in [[categories]] entry %d: %s", i+1, k))
				continue
			}
			switch k {
			case "name":
				c.Name = strings.TrimSpace(s)
			case "color":
				c.Color = s
			case "light":
				c.Light = s
			}
		}

		if c.Name == "" {
			warnings = append(warnings, fmt.Sprintf("[[categories]] entry %d has no name", i+1))
			continue
		}
		key := strings.ToLower(c.Name)
		if seen[key] {
			warnings = append(warnings, fmt.Sprintf("duplicate category: %s", c.Name))
			continue
		}
		seen[key] = true

		if def, err := builtin.Resolve(c.Name); err == nil {
			if c.Color == "" {
				c.Color = def.Color
			}
			if c.Light == "" {
				c.Light = def.Light
			}
		}
		if c.Color == "" {
			c.Color = fallbackColor
		}
		if c.Light == "" {
			c.Light = fallbackLight
		}
		table = append(table, c)
	}
	return table, warnings
}
