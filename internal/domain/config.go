package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Categories      CategoryTable `toml:"categories"`       // [[categories]] table
	Warnings        []string      `toml:"-"`                // Unknown keys found while loading
	DefaultCategory string        `toml:"default_category"` // Category preselected for new goals
	Store           StoreConfig   `toml:"store"`
	Log             LogConfig     `toml:"log"`
	TUI             TUIConfig     `toml:"tui"`
}

// StoreConfig holds settings from the [store] section.
type StoreConfig struct {
	Backend StoreKind `toml:"backend,omitempty"` // "file" (default) or "sqlite"
	Dir     string    `toml:"dir,omitempty"`     // Data directory; empty = default data dir
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// TUIConfig holds settings from the [tui] section.
type TUIConfig struct {
	Watch bool `toml:"watch"` // Reload when the store changes on disk
}

// StoreKind names a key-value store backend.
type StoreKind string

// Store backends.
const (
	StoreFile   StoreKind = "file"
	StoreSQLite StoreKind = "sqlite"
)

// Validate returns ErrUnknownStoreKind for anything but a known backend.
func (k StoreKind) Validate() error {
	switch k {
	case StoreFile, StoreSQLite:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownStoreKind, string(k))
}

// Default configuration values.
const (
	DefaultLogLevel = "info"
	AppDirName      = "goals"       // Directory name under config/data homes
	ConfigFileName  = "config.toml" // Config file name
	LogDirName      = "logs"        // Log directory inside the data dir
	LogFileName     = "goals.log"   // Log file name
)

// StoreKey is the key-value store key holding the goal list.
const StoreKey = "goals"

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Categories:      CategoryTable(DefaultCategories()),
		DefaultCategory: FallbackCategoryName,
		Store:           StoreConfig{Backend: StoreFile},
		Log:             LogConfig{Level: DefaultLogLevel},
		TUI:             TUIConfig{Watch: true},
	}
}

// NewGoalCategory returns the category preselected for new goals:
// the configured default when it is in the table, otherwise the first entry.
func (c *Config) NewGoalCategory() string {
	if cat, ok := c.Categories.Lookup(c.DefaultCategory); ok {
		return cat.Name
	}
	if len(c.Categories) > 0 {
		return c.Categories[0].Name
	}
	return FallbackCategoryName
}

// GlobalConfigDir returns the goals config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// DataDir returns the goals data directory.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// LogPath returns the log file path inside a data directory.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, LogDirName, LogFileName)
}

// RenderConfigTemplate renders the commented config file written by
// `goals config init`, filled with the values of cfg.
func RenderConfigTemplate(cfg *Config) (string, error) {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		return "", fmt.Errorf("parse config template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return "", fmt.Errorf("render config template: %w", err)
	}
	return buf.String(), nil
}
