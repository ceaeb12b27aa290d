package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/goals/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages the config file.
type Manager struct {
	path string // Path to config.toml
}

// NewManager creates a Manager for path. An empty path means the default
// global config file.
func NewManager(path string) *Manager {
	if path == "" {
		path = DefaultPath()
	}
	return &Manager{path: path}
}

// Info returns information about the config file.
func (m *Manager) Info() domain.ConfigInfo {
	content, err := os.ReadFile(m.path)
	if err != nil {
		return domain.ConfigInfo{Path: m.path}
	}
	return domain.ConfigInfo{
		Path:    m.path,
		Content: string(content),
		Exists:  true,
	}
}

// Init creates the config file from the template rendered with cfg.
func (m *Manager) Init(cfg *domain.Config, force bool) (string, error) {
	if m.path == "" {
		return "", fmt.Errorf("config directory not available")
	}
	if _, err := os.Stat(m.path); err == nil && !force {
		return m.path, domain.ErrConfigExists
	}

	content, err := domain.RenderConfigTemplate(cfg)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(m.path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return m.path, nil
}
