package domain

import "errors"

// Domain errors.
var (
	ErrGoalNotFound       = errors.New("goal not found")
	ErrMilestoneNotFound  = errors.New("milestone not found")
	ErrAmbiguousGoalID    = errors.New("goal ID prefix matches more than one goal")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrInvalidTargetDate  = errors.New("invalid target date")
	ErrInvalidProgress    = errors.New("progress must be between 0 and 100")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrConfigExists       = errors.New("config file already exists")
	ErrUnknownStoreKind   = errors.New("unknown store backend")
	ErrDuplicateGoalID    = errors.New("duplicate goal ID")
	ErrNothingToImport    = errors.New("no goals found in input")
	ErrInvalidMilestoneID = errors.New("invalid milestone reference")
)
