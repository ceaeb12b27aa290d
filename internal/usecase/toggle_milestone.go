package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/goals/internal/domain"
)

// ToggleMilestoneInput contains the parameters for toggling a milestone.
type ToggleMilestoneInput struct {
	GoalID      string // Goal ID or unique prefix
	ExactID     bool   // Match GoalID exactly, without prefix resolution
	MilestoneID string // Milestone ID or 1-based position
}

// ToggleMilestoneOutput contains the result of toggling a milestone.
type ToggleMilestoneOutput struct {
	Goals   []domain.Goal // The full list after the toggle
	Goal    domain.Goal   // The goal after the toggle (zero when not found)
	Toggled bool          // False when the goal or milestone did not match
}

// ToggleMilestone is the use case for flipping a milestone's completion.
type ToggleMilestone struct {
	goals  domain.GoalRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewToggleMilestone creates a new ToggleMilestone use case.
func NewToggleMilestone(goals domain.GoalRepository, clock domain.Clock, logger domain.Logger) *ToggleMilestone {
	return &ToggleMilestone{
		goals:  goals,
		clock:  clock,
		logger: logger,
	}
}

// Execute toggles the milestone, recomputes progress and saves the list.
// Unknown IDs change nothing but still save.
func (uc *ToggleMilestone) Execute(_ context.Context, in ToggleMilestoneInput) (*ToggleMilestoneOutput, error) {
	goals, err := loadGoals(uc.goals)
	if err != nil {
		return nil, err
	}
	goalID, err := resolveGoalRef(goals, in.GoalID, in.ExactID)
	if err != nil {
		return nil, err
	}

	milestoneID := in.MilestoneID
	toggled := false
	if g, ok := domain.FindGoal(goals, goalID); ok {
		milestoneID, err = resolveMilestoneRef(g, in.MilestoneID)
		if err != nil {
			return nil, err
		}
		toggled = g.MilestoneIndex(milestoneID) >= 0
	}

	next := domain.ToggleMilestone(goals, goalID, milestoneID, uc.clock.Now())
	if err := saveGoals(uc.goals, next); err != nil {
		return nil, err
	}

	out := &ToggleMilestoneOutput{Goals: next, Toggled: toggled}
	if g, ok := domain.FindGoal(next, goalID); ok {
		out.Goal = g
	}
	if toggled {
		idx := out.Goal.MilestoneIndex(milestoneID)
		uc.logger.Info(goalID, "milestone", fmt.Sprintf("%s completed=%t, progress=%d",
			milestoneID, out.Goal.Milestones[idx].Completed, out.Goal.Progress))
	}
	return out, nil
}
