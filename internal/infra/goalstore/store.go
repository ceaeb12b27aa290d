// Package goalstore persists the goal list as one JSON value in a key-value store.
package goalstore

import (
	"encoding/json"
	"fmt"

	"github.com/runoshun/goals/internal/domain"
)

// Ensure Repository implements domain.GoalRepository.
var _ domain.GoalRepository = (*Repository)(nil)

// Repository loads and saves the goal list under domain.StoreKey.
// It serializes only; it never validates or repairs goals.
type Repository struct {
	kv     domain.KVStore
	logger domain.Logger
}

// New creates a Repository on kv.
func New(kv domain.KVStore, logger domain.Logger) *Repository {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Repository{kv: kv, logger: logger}
}

// Load returns the stored goals.
// An absent key or a value that is not a goal list yields an empty list.
func (r *Repository) Load() ([]domain.Goal, error) {
	raw, ok, err := r.kv.Get(domain.StoreKey)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	if !ok {
		return []domain.Goal{}, nil
	}

	var goals []domain.Goal
	if err := json.Unmarshal([]byte(raw), &goals); err != nil {
		r.logger.Warn("", "store", fmt.Sprintf("ignoring malformed stored goals: %v", err))
		return []domain.Goal{}, nil
	}
	if goals == nil {
		goals = []domain.Goal{}
	}
	for i := range goals {
		if goals[i].Milestones == nil {
			goals[i].Milestones = []domain.Milestone{}
		}
	}
	return goals, nil
}

// Save overwrites the stored goals with the full list.
func (r *Repository) Save(goals []domain.Goal) error {
	if goals == nil {
		goals = []domain.Goal{}
	}
	data, err := json.Marshal(goals)
	if err != nil {
		return fmt.Errorf("marshal goals: %w", err)
	}
	if err := r.kv.Set(domain.StoreKey, string(data)); err != nil {
		return fmt.Errorf("save goals: %w", err)
	}
	r.logger.Debug("", "store", fmt.Sprintf("saved %d goals", len(goals)))
	return nil
}
