package domain

import (
	"strings"
	"time"
)

// The functions in this file are the goal store operations.
// They never modify their input and always return a fresh slice,
// so callers decide separately when the result is persisted.

// AppendGoal returns goals with g appended.
func AppendGoal(goals []Goal, g Goal) []Goal {
	out := CloneGoals(goals)
	return append(out, g.clone())
}

// RemoveGoal returns goals without the goal with the given ID.
// An unknown ID returns an unchanged copy.
func RemoveGoal(goals []Goal, goalID string) []Goal {
	out := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if g.ID == goalID {
			continue
		}
		out = append(out, g.clone())
	}
	return out
}

// ToggleMilestone flips the completion of one milestone and recomputes
// progress from the milestones. Unknown IDs return an unchanged copy.
func ToggleMilestone(goals []Goal, goalID, milestoneID string, now time.Time) []Goal {
	out := CloneGoals(goals)
	for i := range out {
		if out[i].ID != goalID {
			continue
		}
		idx := out[i].MilestoneIndex(milestoneID)
		if idx < 0 {
			return out
		}
		out[i].Milestones[idx].Completed = !out[i].Milestones[idx].Completed
		progress, ok := MilestoneProgress(out[i].Milestones)
		if !ok {
			progress = out[i].Progress
		}
		out[i] = out[i].withProgress(progress, now)
		return out
	}
	return out
}

// SetProgress sets the progress of a goal directly, leaving its milestones
// untouched. The value is clamped to [0, 100]. Unknown IDs return an
// unchanged copy.
func SetProgress(goals []Goal, goalID string, progress int, now time.Time) []Goal {
	out := CloneGoals(goals)
	for i := range out {
		if out[i].ID == goalID {
			out[i] = out[i].withProgress(progress, now)
			break
		}
	}
	return out
}

// CloneGoals returns a deep copy of goals.
func CloneGoals(goals []Goal) []Goal {
	out := make([]Goal, len(goals))
	for i, g := range goals {
		out[i] = g.clone()
	}
	return out
}

// FindGoal returns the goal with the given ID.
func FindGoal(goals []Goal, goalID string) (Goal, bool) {
	for _, g := range goals {
		if g.ID == goalID {
			return g.clone(), true
		}
	}
	return Goal{}, false
}

// ResolveGoalID resolves a full ID or a unique ID prefix.
// An exact, case-sensitive match always wins. Otherwise prefixes are
// matched case-insensitively because ULIDs are.
func ResolveGoalID(goals []Goal, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrGoalNotFound
	}
	for _, g := range goals {
		if g.ID == ref {
			return g.ID, nil
		}
	}

	upper := strings.ToUpper(ref)
	var match string
	for _, g := range goals {
		if !strings.HasPrefix(strings.ToUpper(g.ID), upper) {
			continue
		}
		if match != "" {
			return "", ErrAmbiguousGoalID
		}
		match = g.ID
	}
	if match == "" {
		return "", ErrGoalNotFound
	}
	return match, nil
}
