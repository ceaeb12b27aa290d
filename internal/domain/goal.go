// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Progress bounds.
const (
	MinProgress = 0
	MaxProgress = 100
)

// Goal represents a user-defined objective tracked by goals.
// Fields are ordered to minimize memory padding.
type Goal struct {
	CreatedAt   time.Time   `json:"createdAt" yaml:"createdAt"`                         // Creation time
	CompletedAt *time.Time  `json:"completedAt,omitempty" yaml:"completedAt,omitempty"` // When completed last became true (nil = not completed)
	ID          string      `json:"id" yaml:"id"`                                       // Goal ID (ULID)
	Title       string      `json:"title" yaml:"title"`                                 // Title (required)
	Description string      `json:"description" yaml:"description"`                     // Description (optional)
	Category    string      `json:"category" yaml:"category"`                           // Category name
	TargetDate  string      `json:"targetDate" yaml:"targetDate"`                       // YYYY-MM-DD, empty = unset
	Milestones  []Milestone `json:"milestones" yaml:"milestones"`                       // Ordered milestones
	Progress    int         `json:"progress" yaml:"progress"`                           // 0-100
	Completed   bool        `json:"completed" yaml:"completed"`                         // Always Progress == 100
}

// Milestone is a discrete, independently completable step of a goal.
type Milestone struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// GoalDraft holds the user input for a goal that has not been created yet.
// Fields are ordered to minimize memory padding.
type GoalDraft struct {
	Title           string
	Description     string
	Category        string
	TargetDate      string
	MilestoneTitles []string
}

// MilestoneID returns the ID of the index-th milestone of a goal.
// Format: <goalID>-<index>
func MilestoneID(goalID string, index int) string {
	return fmt.Sprintf("%s-%d", goalID, index)
}

// NewGoal builds a goal from a draft.
// Returns ErrEmptyTitle if the title is blank after trimming.
// Blank milestone titles are skipped; the remaining ones keep their order.
func NewGoal(id string, draft GoalDraft, now time.Time) (Goal, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return Goal{}, ErrEmptyTitle
	}

	milestones := make([]Milestone, 0, len(draft.MilestoneTitles))
	for _, mt := range draft.MilestoneTitles {
		mt = strings.TrimSpace(mt)
		if mt == "" {
			continue
		}
		milestones = append(milestones, Milestone{
			ID:    MilestoneID(id, len(milestones)),
			Title: mt,
		})
	}

	return Goal{
		ID:          id,
		Title:       title,
		Description: strings.TrimSpace(draft.Description),
		Category:    draft.Category,
		TargetDate:  strings.TrimSpace(draft.TargetDate),
		Milestones:  milestones,
		CreatedAt:   now,
	}, nil
}

// CompletedMilestones returns the number of completed milestones.
func (g *Goal) CompletedMilestones() int {
	n := 0
	for _, m := range g.Milestones {
		if m.Completed {
			n++
		}
	}
	return n
}

// MilestoneIndex returns the position of the milestone with the given ID, or -1.
func (g *Goal) MilestoneIndex(milestoneID string) int {
	for i, m := range g.Milestones {
		if m.ID == milestoneID {
			return i
		}
	}
	return -1
}

// HasTargetDate reports whether a target date is set.
func (g *Goal) HasTargetDate() bool {
	return g.TargetDate != ""
}

// IsInProgress reports whether the goal has started but is not completed.
func (g *Goal) IsInProgress() bool {
	return !g.Completed && g.Progress > 0
}

// clone returns a copy that shares no slices with g.
func (g Goal) clone() Goal {
	if g.Milestones != nil {
		ms := make([]Milestone, len(g.Milestones))
		copy(ms, g.Milestones)
		g.Milestones = ms
	}
	if g.CompletedAt != nil {
		t := *g.CompletedAt
		g.CompletedAt = &t
	}
	return g
}

// withProgress sets progress and the derived completion fields.
// CompletedAt is stamped when completion turns on and cleared when it turns off.
func (g Goal) withProgress(progress int, now time.Time) Goal {
	g.Progress = ClampProgress(progress)
	was := g.Completed
	g.Completed = g.Progress == MaxProgress
	switch {
	case g.Completed && !was:
		t := now
		g.CompletedAt = &t
	case !g.Completed:
		g.CompletedAt = nil
	}
	return g
}

// Normalize returns g with the title trimmed, progress clamped and
// completion recomputed from progress. A completed goal without
// CompletedAt is stamped with now. Blank or repeated milestone IDs are
// replaced by positional ones.
func (g Goal) Normalize(now time.Time) Goal {
	g = g.clone()
	g.Title = strings.TrimSpace(g.Title)
	g.Progress = ClampProgress(g.Progress)
	g.Completed = g.Progress == MaxProgress
	switch {
	case !g.Completed:
		g.CompletedAt = nil
	case g.CompletedAt == nil:
		t := now
		g.CompletedAt = &t
	}

	if g.Milestones == nil {
		g.Milestones = []Milestone{}
	}
	seen := make(map[string]bool, len(g.Milestones))
	for i := range g.Milestones {
		id := strings.TrimSpace(g.Milestones[i].ID)
		if id == "" || seen[id] {
			id = MilestoneID(g.ID, i)
		}
		g.Milestones[i].ID = id
		seen[id] = true
	}
	return g
}

// ClampProgress limits p to [MinProgress, MaxProgress].
func ClampProgress(p int) int {
	if p < MinProgress {
		return MinProgress
	}
	if p > MaxProgress {
		return MaxProgress
	}
	return p
}

// MilestoneProgress returns round(100 * completed / total).
// The second result is false when there are no milestones.
func MilestoneProgress(milestones []Milestone) (int, bool) {
	if len(milestones) == 0 {
		return 0, false
	}
	done := 0
	for _, m := range milestones {
		if m.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) * 100 / float64(len(milestones)))), true
}

// ParseTargetDate validates a YYYY-MM-DD target date. Empty input is allowed.
func ParseTargetDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", ErrInvalidTargetDate, s)
	}
	return t, nil
}

// DateLayout is the layout of target dates.
const DateLayout = "2006-01-02"
