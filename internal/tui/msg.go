package tui

import "github.com/runoshun/goals/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgGoalsLoaded is sent when goals are loaded from the store.
type MsgGoalsLoaded struct {
	Goals []domain.Goal
}

func (MsgGoalsLoaded) sealed() {}

// MsgStoreChanged is sent when another process wrote the store.
type MsgStoreChanged struct{}

func (MsgStoreChanged) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
