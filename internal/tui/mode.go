// Package tui provides the terminal dashboard for goals.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Dashboard navigation
	ModeCreate              // Create-goal modal
	ModeDetail              // Goal-detail modal
	ModeConfirm             // Confirmation dialog
	ModeHelp                // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCreate:
		return "create"
	case ModeDetail:
		return "detail"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeCreate:
		return true
	case ModeNormal, ModeDetail, ModeConfirm, ModeHelp:
		return false
	}
	return false
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Delete goal
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		return "delete"
	}
	return ""
}

// CreateField identifies the focused part of the create-goal form.
// Milestone inputs sit between FieldDate and FieldSubmit.
type CreateField int

const (
	FieldTitle CreateField = iota
	FieldDesc
	FieldCategory
	FieldDate
	FieldMilestone
	FieldSubmit
)
