package usecase

import (
	"context"

	"github.com/runoshun/goals/internal/domain"
)

// ListGoalsInput contains the parameters for listing goals.
type ListGoalsInput struct {
	Filter domain.Filter // Status or category filter (empty = all)
}

// ListGoalsOutput contains the result of listing goals.
// Fields are ordered to minimize memory padding.
type ListGoalsOutput struct {
	Goals  []domain.Goal // Goals matching the filter, in stored order
	All    []domain.Goal // Every stored goal
	Filter domain.Filter // The filter actually applied
	Stats  domain.Stats  // Statistics over all goals
}

// ListGoals is the use case for listing goals.
type ListGoals struct {
	goals      domain.GoalRepository
	clock      domain.Clock
	categories domain.CategoryTable
}

// NewListGoals creates a new ListGoals use case.
func NewListGoals(goals domain.GoalRepository, clock domain.Clock, categories domain.CategoryTable) *ListGoals {
	return &ListGoals{
		goals:      goals,
		clock:      clock,
		categories: categories,
	}
}

// Execute loads the goals and applies the filter.
// An unknown filter falls back to all goals.
func (uc *ListGoals) Execute(_ context.Context, in ListGoalsInput) (*ListGoalsOutput, error) {
	all, err := loadGoals(uc.goals)
	if err != nil {
		return nil, err
	}

	filter := in.Filter
	if !filter.Known(uc.categories) {
		filter = domain.FilterAll
	}

	return &ListGoalsOutput{
		Goals:  filter.Apply(all, uc.categories),
		All:    all,
		Filter: filter,
		Stats:  domain.ComputeStats(all, uc.clock.Now()),
	}, nil
}
