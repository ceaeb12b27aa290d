package usecase

import (
	"context"

	"github.com/runoshun/goals/internal/domain"
)

// GoalStatsInput contains the input for the GoalStats use case.
type GoalStatsInput struct{}

// GoalStatsOutput contains the statistics.
type GoalStatsOutput struct {
	Stats domain.Stats
}

// GoalStats is the use case for computing summary statistics.
type GoalStats struct {
	goals domain.GoalRepository
	clock domain.Clock
}

// NewGoalStats creates a new GoalStats use case.
func NewGoalStats(goals domain.GoalRepository, clock domain.Clock) *GoalStats {
	return &GoalStats{goals: goals, clock: clock}
}

// Execute computes statistics over all stored goals.
func (uc *GoalStats) Execute(_ context.Context, _ GoalStatsInput) (*GoalStatsOutput, error) {
	goals, err := loadGoals(uc.goals)
	if err != nil {
		return nil, err
	}
	return &GoalStatsOutput{Stats: domain.ComputeStats(goals, uc.clock.Now())}, nil
}
