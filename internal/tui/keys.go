package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Goal management
	New    key.Binding // Open create-goal modal
	Open   key.Binding // Open goal detail
	Delete key.Binding // Delete goal (confirmed)
	Toggle key.Binding // Toggle milestone under cursor

	// Progress slider (detail modal)
	ProgressDown     key.Binding
	ProgressUp       key.Binding
	ProgressDownMore key.Binding
	ProgressUpMore   key.Binding

	// Filter
	NextFilter key.Binding
	PrevFilter key.Binding

	// Create form
	NextField       key.Binding
	PrevField       key.Binding
	AddMilestone    key.Binding
	RemoveMilestone key.Binding
	Submit          key.Binding

	// General
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new goal"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle milestone"),
		),
		ProgressDown: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "progress -1"),
		),
		ProgressUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "progress +1"),
		),
		ProgressDownMore: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "progress -10"),
		),
		ProgressUpMore: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "progress +10"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "f"),
			key.WithHelp("tab/f", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "F"),
			key.WithHelp("shift+tab", "prev filter"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		AddMilestone: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "add milestone"),
		),
		RemoveMilestone: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove milestone"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "create"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// ShortHelp returns keybindings to show in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.New, k.NextFilter, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.NextFilter, k.PrevFilter},
		{k.New, k.Open, k.Delete, k.Refresh},
		{k.Toggle, k.ProgressDown, k.ProgressUp, k.ProgressDownMore, k.ProgressUpMore},
		{k.NextField, k.PrevField, k.AddMilestone, k.RemoveMilestone, k.Submit},
		{k.Escape, k.Help, k.Quit},
	}
}

// detailHelp is the help line of the goal-detail modal.
type detailHelp struct{ k KeyMap }

func (h detailHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Toggle, h.k.ProgressDown, h.k.ProgressUp,
		h.k.ProgressDownMore, h.k.ProgressUpMore, h.k.Delete, h.k.Escape}
}

func (h detailHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

// createHelp is the help line of the create-goal modal.
type createHelp struct{ k KeyMap }

func (h createHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.NextField, h.k.AddMilestone, h.k.RemoveMilestone, h.k.Submit, h.k.Escape}
}

func (h createHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
