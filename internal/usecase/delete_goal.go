package usecase

import (
	"context"

	"github.com/runoshun/goals/internal/domain"
)

// DeleteGoalInput contains the parameters for deleting a goal.
type DeleteGoalInput struct {
	GoalID  string // Goal ID or unique prefix
	ExactID bool   // Match GoalID exactly, without prefix resolution
}

// DeleteGoalOutput contains the result of deleting a goal.
type DeleteGoalOutput struct {
	Goals   []domain.Goal // The full list after deletion
	GoalID  string        // The resolved goal ID
	Removed bool          // False when no goal matched
}

// DeleteGoal is the use case for deleting a goal.
type DeleteGoal struct {
	goals  domain.GoalRepository
	logger domain.Logger
}

// NewDeleteGoal creates a new DeleteGoal use case.
func NewDeleteGoal(goals domain.GoalRepository, logger domain.Logger) *DeleteGoal {
	return &DeleteGoal{
		goals:  goals,
		logger: logger,
	}
}

// Execute removes the goal and saves the list.
// An unknown ID removes nothing but still saves.
func (uc *DeleteGoal) Execute(_ context.Context, in DeleteGoalInput) (*DeleteGoalOutput, error) {
	goals, err := loadGoals(uc.goals)
	if err != nil {
		return nil, err
	}
	id, err := resolveGoalRef(goals, in.GoalID, in.ExactID)
	if err != nil {
		return nil, err
	}

	next := domain.RemoveGoal(goals, id)
	if err := saveGoals(uc.goals, next); err != nil {
		return nil, err
	}

	removed := len(next) < len(goals)
	if removed {
		uc.logger.Info(id, "goal", "deleted")
	}
	return &DeleteGoalOutput{Goals: next, GoalID: id, Removed: removed}, nil
}
