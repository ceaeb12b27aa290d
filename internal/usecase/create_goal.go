package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/goals/internal/domain"
)

// CreateGoalInput contains the parameters for creating a goal.
// Fields are ordered to minimize memory padding.
type CreateGoalInput struct {
	Title           string   // Goal title (required)
	Description     string   // Description (optional)
	Category        string   // Category name (optional, empty = default category)
	TargetDate      string   // YYYY-MM-DD (optional)
	MilestoneTitles []string // Milestone titles in order; blank entries are dropped
}

// CreateGoalOutput contains the result of creating a goal.
type CreateGoalOutput struct {
	Goals []domain.Goal // The full list after the goal was appended
	Goal  domain.Goal   // The created goal
}

// CreateGoal is the use case for creating a goal.
type CreateGoal struct {
	goals           domain.GoalRepository
	ids             domain.IDGenerator
	clock           domain.Clock
	logger          domain.Logger
	defaultCategory string
	categories      domain.CategoryTable
}

// NewCreateGoal creates a new CreateGoal use case.
func NewCreateGoal(goals domain.GoalRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger, categories domain.CategoryTable, defaultCategory string) *CreateGoal {
	return &CreateGoal{
		goals:           goals,
		ids:             ids,
		clock:           clock,
		logger:          logger,
		categories:      categories,
		defaultCategory: defaultCategory,
	}
}

// Execute creates a goal and saves the list.
// A blank title is rejected before anything is loaded or saved.
func (uc *CreateGoal) Execute(_ context.Context, in CreateGoalInput) (*CreateGoalOutput, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	category := in.Category
	if strings.TrimSpace(category) == "" {
		category = uc.defaultCategory
	}
	cat, err := uc.categories.Resolve(category)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (known: %s)", err, category, strings.Join(uc.categories.Names(), ", "))
	}
	if _, err := domain.ParseTargetDate(in.TargetDate); err != nil {
		return nil, err
	}

	goals, err := loadGoals(uc.goals)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	goal, err := domain.NewGoal(uc.ids.NewID(now), domain.GoalDraft{
		Title:           in.Title,
		Description:     in.Description,
		Category:        cat.Name,
		TargetDate:      in.TargetDate,
		MilestoneTitles: in.MilestoneTitles,
	}, now)
	if err != nil {
		return nil, err
	}

	goals = domain.AppendGoal(goals, goal)
	if err := saveGoals(uc.goals, goals); err != nil {
		return nil, err
	}

	uc.logger.Info(goal.ID, "goal", fmt.Sprintf("created: %q [%s] with %d milestones", goal.Title, goal.Category, len(goal.Milestones)))

	return &CreateGoalOutput{Goal: goal, Goals: goals}, nil
}
