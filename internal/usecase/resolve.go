// Package usecase contains application use cases.
package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/goals/internal/domain"
)

// loadGoals loads the goal list, wrapping storage errors.
func loadGoals(repo domain.GoalRepository) ([]domain.Goal, error) {
	goals, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	return goals, nil
}

// saveGoals writes the full goal list, wrapping storage errors.
func saveGoals(repo domain.GoalRepository, goals []domain.Goal) error {
	if err := repo.Save(goals); err != nil {
		return fmt.Errorf("save goals: %w", err)
	}
	return nil
}

// resolveGoalRef resolves a full goal ID or a unique prefix.
// A reference that matches nothing is returned trimmed, so the store
// operation treats it as a no-op. An ambiguous prefix is an error.
// With exact set, ref is used as the ID without prefix matching.
func resolveGoalRef(goals []domain.Goal, ref string, exact bool) (string, error) {
	if exact {
		return ref, nil
	}
	id, err := domain.ResolveGoalID(goals, ref)
	if errors.Is(err, domain.ErrGoalNotFound) {
		return strings.TrimSpace(ref), nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s", err, ref)
	}
	return id, nil
}

// resolveMilestoneRef resolves a milestone ID or a 1-based position within g.
// A reference that is neither is returned unchanged.
func resolveMilestoneRef(g domain.Goal, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if g.MilestoneIndex(ref) >= 0 {
		return ref, nil
	}
	pos, err := strconv.Atoi(ref)
	if err != nil {
		return ref, nil
	}
	if pos < 1 || pos > len(g.Milestones) {
		return "", fmt.Errorf("%w: position %d of %d", domain.ErrInvalidMilestoneID, pos, len(g.Milestones))
	}
	return g.Milestones[pos-1].ID, nil
}
