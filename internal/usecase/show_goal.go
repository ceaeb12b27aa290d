package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goals/internal/domain"
)

// ShowGoalInput contains the parameters for showing a goal.
type ShowGoalInput struct {
	GoalID string // Goal ID or unique prefix
}

// ShowGoalOutput contains the goal.
type ShowGoalOutput struct {
	Goal domain.Goal
}

// ShowGoal is the use case for looking up a single goal.
type ShowGoal struct {
	goals domain.GoalRepository
}

// NewShowGoal creates a new ShowGoal use case.
func NewShowGoal(goals domain.GoalRepository) *ShowGoal {
	return &ShowGoal{goals: goals}
}

// Execute returns the goal.
// Returns ErrGoalNotFound or ErrAmbiguousGoalID when the reference does not
// identify exactly one goal.
func (uc *ShowGoal) Execute(_ context.Context, in ShowGoalInput) (*ShowGoalOutput, error) {
	goals, err := loadGoals(uc.goals)
	if err != nil {
		return nil, err
	}
	id, err := domain.ResolveGoalID(goals, in.GoalID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, in.GoalID)
	}
	g, _ := domain.FindGoal(goals, id)
	return &ShowGoalOutput{Goal: g}, nil
}
