package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goals/internal/domain"
)

// SetProgressInput contains the parameters for setting progress.
type SetProgressInput struct {
	GoalID   string // Goal ID or unique prefix
	ExactID  bool   // Match GoalID exactly, without prefix resolution
	Progress int    // New progress, 0-100
}

// SetProgressOutput contains the result of setting progress.
type SetProgressOutput struct {
	Goals   []domain.Goal // The full list after the update
	Goal    domain.Goal   // The goal after the update (zero when not found)
	Updated bool          // False when no goal matched
}

// SetProgress is the use case for setting a goal's progress directly.
// Milestones are left untouched.
type SetProgress struct {
	goals  domain.GoalRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewSetProgress creates a new SetProgress use case.
func NewSetProgress(goals domain.GoalRepository, clock domain.Clock, logger domain.Logger) *SetProgress {
	return &SetProgress{
		goals:  goals,
		clock:  clock,
		logger: logger,
	}
}

// Execute sets progress and saves the list.
// Returns ErrInvalidProgress for values outside 0-100.
func (uc *SetProgress) Execute(_ context.Context, in SetProgressInput) (*SetProgressOutput, error) {
	if in.Progress < domain.MinProgress || in.Progress > domain.MaxProgress {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidProgress, in.Progress)
	}

	goals, err := loadGoals(uc.goals)
	if err != nil {
		return nil, err
	}
	goalID, err := resolveGoalRef(goals, in.GoalID, in.ExactID)
	if err != nil {
		return nil, err
	}

	next := domain.SetProgress(goals, goalID, in.Progress, uc.clock.Now())
	if err := saveGoals(uc.goals, next); err != nil {
		return nil, err
	}

	out := &SetProgressOutput{Goals: next}
	if g, ok := domain.FindGoal(next, goalID); ok {
		out.Goal = g
		out.Updated = true
		uc.logger.Info(goalID, "progress", fmt.Sprintf("set to %d (completed=%t)", g.Progress, g.Completed))
	}
	return out, nil
}
