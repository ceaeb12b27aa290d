package domain

import "time"

// KVStore is a string key-value store.
type KVStore interface {
	// Get returns the value stored under key.
	// The second result is false when the key is absent.
	Get(key string) (string, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error

	// Close releases the store's resources.
	Close() error
}

// GoalRepository loads and saves the whole goal list.
type GoalRepository interface {
	// Load returns the stored goals. An absent or unreadable value
	// yields an empty list; only I/O failures are errors.
	Load() ([]Goal, error)

	// Save overwrites the stored goals.
	Save(goals []Goal) error
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration merged over the defaults.
	Load() (*Config, error)

	// Path returns the config file path the loader reads.
	Path() string
}

// Logger writes application log entries.
// goalID may be empty for entries not tied to a goal.
type Logger interface {
	Info(goalID, category, msg string)
	Debug(goalID, category, msg string)
	Warn(goalID, category, msg string)
	Error(goalID, category, msg string)
}

// NopLogger discards every entry.
type NopLogger struct{}

func (NopLogger) Info(_, _, _ string)  {}
func (NopLogger) Debug(_, _, _ string) {}
func (NopLogger) Warn(_, _, _ string)  {}
func (NopLogger) Error(_, _, _ string) {}

// IDGenerator generates goal IDs.
type IDGenerator interface {
	// NewID returns a new unique ID.
	NewID(now time.Time) string
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ConfigManager reads and initializes the config file.
type ConfigManager interface {
	// Info returns the config file's path and content.
	Info() ConfigInfo

	// Init writes a commented config file rendered from cfg.
	// Returns ErrConfigExists if the file exists and force is false.
	Init(cfg *Config, force bool) (path string, err error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}
