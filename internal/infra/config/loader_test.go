package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goals/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_AllSections(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
default_category = "Career"

[store]
backend = "SQLite"
dir = "/tmp/goals-data"

[log]
level = "debug"

[tui]
watch = false

[[categories]]
name = "Health"

[[categories]]
name = "Hobbies"
color = "#FF8800"
light = "#FFEEDD"

[[categories]]
name = "Career"
color = "#000000"
`)

	cfg, err := NewLoaderWithGlobalDir(dir).Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, "Career", cfg.DefaultCategory)
	assert.Equal(t, domain.StoreSQLite, cfg.Store.Backend)
	assert.Equal(t, "/tmp/goals-data", cfg.Store.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.TUI.Watch)
	assert.Equal(t, domain.CategoryTable{
		{Name: "Health", Color: "#22C55E", Light: "#DCFCE7"},
		{Name: "Hobbies", Color: "#FF8800", Light: "#FFEEDD"},
		{Name: "Career", Color: "#000000", Light: "#DBEAFE"},
	}, cfg.Categories)
}

func TestLoader_Load_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[log]
level = "warn"
`)

	cfg, err := NewLoaderWithGlobalDir(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, domain.StoreFile, cfg.Store.Backend)
	assert.True(t, cfg.TUI.Watch)
	assert.Len(t, cfg.Categories, 6)
}

func TestLoader_Load_Warnings(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
theme = "dark"

[store]
backend = 3
compress = true

[tui]
watch = "yes"

[[categories]]
color = "#123456"

[[categories]]
name = "Health"
icon = "heart"

[[categories]]
name = "health"
`)

	cfg, err := NewLoaderWithGlobalDir(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"[[categories]] entry 1 has no name",
		"duplicate category: health",
		"invalid value for [store].backend: expected string",
		"invalid value for [tui].watch: expected boolean",
		"unknown key in [[categories]] entry 2: icon",
		"unknown key in [store]: compress",
		"unknown section: theme",
	}, cfg.Warnings)
	assert.Equal(t, domain.StoreFile, cfg.Store.Backend)
	assert.True(t, cfg.TUI.Watch)
	assert.Equal(t, []string{"Health"}, cfg.Categories.Names())
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[store\nbackend =")

	_, err := NewLoaderWithGlobalDir(dir).Load()
	assert.Error(t, err)
}

func TestLoader_Load_EmptyCategoriesKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `categories = []`)

	cfg, err := NewLoaderWithGlobalDir(dir).Load()
	require.NoError(t, err)
	assert.Len(t, cfg.Categories, 6)
}

func TestDefaultPath_UsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	assert.Equal(t, "/xdg/config/goals/config.toml", DefaultPath())
	assert.Equal(t, "/xdg/data/goals", DefaultDataDir())
	assert.Equal(t, "/xdg/config/goals/config.toml", NewLoader("").Path())
	assert.Equal(t, "/custom.toml", NewLoader("/custom.toml").Path())
}
