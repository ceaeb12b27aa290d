package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/goals/internal/domain"
)

// ImportGoalsInput contains the parameters for importing goals.
type ImportGoalsInput struct {
	Data   []byte // Exported document
	Format string // "yaml", "json" or empty to detect
}

// ImportGoalsOutput contains the result of importing goals.
type ImportGoalsOutput struct {
	Goals    []domain.Goal // The full list after import
	Imported int           // Goals appended
	Skipped  int           // Goals whose ID already existed
}

// ImportGoals is the use case for appending goals from an exported document.
type ImportGoals struct {
	goals           domain.GoalRepository
	ids             domain.IDGenerator
	clock           domain.Clock
	logger          domain.Logger
	defaultCategory string
}

// NewImportGoals creates a new ImportGoals use case.
func NewImportGoals(goals domain.GoalRepository, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger, defaultCategory string) *ImportGoals {
	return &ImportGoals{
		goals:           goals,
		ids:             ids,
		clock:           clock,
		logger:          logger,
		defaultCategory: defaultCategory,
	}
}

// Execute decodes the document, validates every goal and appends the new ones.
// The whole import is rejected if any goal has a blank title.
// Goals without an ID get a fresh one; goals whose ID is already stored are skipped.
func (uc *ImportGoals) Execute(_ context.Context, in ImportGoalsInput) (*ImportGoalsOutput, error) {
	incoming, err := decodeGoals(in.Data, in.Format)
	if err != nil {
		return nil, err
	}
	if len(incoming) == 0 {
		return nil, domain.ErrNothingToImport
	}
	for i, g := range incoming {
		if strings.TrimSpace(g.Title) == "" {
			return nil, fmt.Errorf("goal %d: %w", i+1, domain.ErrEmptyTitle)
		}
	}

	goals, err := loadGoals(uc.goals)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	existing := make(map[string]bool, len(goals))
	for _, g := range goals {
		existing[g.ID] = true
	}

	out := &ImportGoalsOutput{}
	for _, g := range incoming {
		g.ID = strings.TrimSpace(g.ID)
		if g.ID == "" {
			g.ID = uc.ids.NewID(now)
		}
		if existing[g.ID] {
			out.Skipped++
			continue
		}
		existing[g.ID] = true

		if strings.TrimSpace(g.Category) == "" {
			g.Category = uc.defaultCategory
		}
		if g.CreatedAt.IsZero() {
			g.CreatedAt = now
		}
		goals = domain.AppendGoal(goals, g.Normalize(now))
		out.Imported++
	}

	if err := saveGoals(uc.goals, goals); err != nil {
		return nil, err
	}
	out.Goals = goals

	uc.logger.Info("", "import", fmt.Sprintf("imported %d goals, skipped %d", out.Imported, out.Skipped))
	return out, nil
}

// decodeGoals parses a goal list in the given format.
// With no format, a document starting with '[' or '{' is read as JSON.
func decodeGoals(data []byte, format string) ([]domain.Goal, error) {
	format = strings.ToLower(format)
	if format == "" {
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
			format = FormatJSON
		} else {
			format = FormatYAML
		}
	}

	var goals []domain.Goal
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &goals); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
		}
	case FormatYAML, "yml":
		if err := yaml.Unmarshal(data, &goals); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q (want yaml or json)", domain.ErrInvalidFormat, format)
	}
	return goals, nil
}
