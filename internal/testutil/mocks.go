// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/goals/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockIDGenerator returns sequential IDs: <Prefix>0001, <Prefix>0002, ...
type MockIDGenerator struct {
	Prefix string
	n      int
}

// NewID returns the next ID.
func (m *MockIDGenerator) NewID(_ time.Time) string {
	m.n++
	prefix := m.Prefix
	if prefix == "" {
		prefix = "GOAL"
	}
	return fmt.Sprintf("%s%04d", prefix, m.n)
}

// MockGoalRepository is a test double for domain.GoalRepository.
// Fields are ordered to minimize memory padding.
type MockGoalRepository struct {
	LoadErr   error
	SaveErr   error
	Goals     []domain.Goal
	SaveCalls int
}

// NewMockGoalRepository creates a repository holding goals.
func NewMockGoalRepository(goals ...domain.Goal) *MockGoalRepository {
	return &MockGoalRepository{Goals: domain.CloneGoals(goals)}
}

// Load returns a copy of the stored goals.
func (m *MockGoalRepository) Load() ([]domain.Goal, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return domain.CloneGoals(m.Goals), nil
}

// Save replaces the stored goals.
func (m *MockGoalRepository) Save(goals []domain.Goal) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Goals = domain.CloneGoals(goals)
	return nil
}

// MockKVStore is an in-memory domain.KVStore.
type MockKVStore struct {
	Data   map[string]string
	GetErr error
	SetErr error
	mu     sync.Mutex
}

// NewMockKVStore creates an empty MockKVStore.
func NewMockKVStore() *MockKVStore {
	return &MockKVStore{Data: make(map[string]string)}
}

// Get returns the value under key.
func (m *MockKVStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Data[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MockKVStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Data[key] = value
	return nil
}

// Close does nothing.
func (m *MockKVStore) Close() error {
	return nil
}

// LogEntry is one entry recorded by MockLogger.
type LogEntry struct {
	Level    string
	GoalID   string
	Category string
	Msg      string
}

// MockLogger records log entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, goalID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, GoalID: goalID, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(goalID, category, msg string) { m.add("INFO", goalID, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(goalID, category, msg string) { m.add("DEBUG", goalID, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(goalID, category, msg string) { m.add("WARN", goalID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(goalID, category, msg string) { m.add("ERROR", goalID, category, msg) }

// Count returns the number of entries at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

var (
	_ domain.Clock          = (*MockClock)(nil)
	_ domain.IDGenerator    = (*MockIDGenerator)(nil)
	_ domain.GoalRepository = (*MockGoalRepository)(nil)
	_ domain.KVStore        = (*MockKVStore)(nil)
	_ domain.Logger         = (*MockLogger)(nil)
)
