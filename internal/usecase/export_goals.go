package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/goals/internal/domain"
)

// Export formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ExportGoalsInput contains the parameters for exporting goals.
type ExportGoalsInput struct {
	Format string // "yaml" (default) or "json"
}

// ExportGoalsOutput contains the exported document.
type ExportGoalsOutput struct {
	Data  []byte
	Count int
}

// ExportGoals is the use case for exporting all goals.
type ExportGoals struct {
	goals domain.GoalRepository
}

// NewExportGoals creates a new ExportGoals use case.
func NewExportGoals(goals domain.GoalRepository) *ExportGoals {
	return &ExportGoals{goals: goals}
}

// Execute renders every goal in the requested format.
func (uc *ExportGoals) Execute(_ context.Context, in ExportGoalsInput) (*ExportGoalsOutput, error) {
	goals, err := loadGoals(uc.goals)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch strings.ToLower(in.Format) {
	case "", FormatYAML, "yml":
		data, err = yaml.Marshal(goals)
	case FormatJSON:
		data, err = json.MarshalIndent(goals, "", "  ")
		data = append(data, '\n')
	default:
		return nil, fmt.Errorf("%w: %q (want yaml or json)", domain.ErrInvalidFormat, in.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode goals: %w", err)
	}
	return &ExportGoalsOutput{Data: data, Count: len(goals)}, nil
}
