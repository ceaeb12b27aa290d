package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/goals/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Track     lipgloss.Color

	// Text colors
	Text      lipgloss.Color
	TextFaint lipgloss.Color
	OnPrimary lipgloss.Color

	// Stat card accents
	StatTotal      lipgloss.Color
	StatCompleted  lipgloss.Color
	StatInProgress lipgloss.Color
	StatStreak     lipgloss.Color
}{
	Primary:   lipgloss.Color("#6366F1"), // Indigo
	Secondary: lipgloss.Color("#A855F7"), // Purple
	Muted:     lipgloss.Color("#6B7280"), // Gray
	Error:     lipgloss.Color("#EF4444"), // Red
	Success:   lipgloss.Color("#22C55E"), // Green
	Warning:   lipgloss.Color("#F59E0B"), // Amber
	Track:     lipgloss.Color("#374151"), // Dark gray

	Text:      lipgloss.Color("#E5E7EB"),
	TextFaint: lipgloss.Color("#9CA3AF"),
	OnPrimary: lipgloss.Color("#FFFFFF"),

	StatTotal:      lipgloss.Color("#6366F1"),
	StatCompleted:  lipgloss.Color("#22C55E"),
	StatInProgress: lipgloss.Color("#3B82F6"),
	StatStreak:     lipgloss.Color("#F97316"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Stat cards
	StatCard  lipgloss.Style
	StatValue lipgloss.Style
	StatLabel lipgloss.Style

	// Filter chips
	Chip         lipgloss.Style
	ChipSelected lipgloss.Style

	// Goal cards
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	CardCompleted lipgloss.Style
	CardTitle     lipgloss.Style
	CardDesc      lipgloss.Style
	CardMeta      lipgloss.Style
	CheckMark     lipgloss.Style

	// Progress bar
	BarFilled    lipgloss.Style
	BarCompleted lipgloss.Style
	BarEmpty     lipgloss.Style

	// Empty state
	EmptyTitle lipgloss.Style
	EmptyText  lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Form
	Label          lipgloss.Style
	LabelFocused   lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	// Milestones
	MilestoneDone   lipgloss.Style
	MilestoneOpen   lipgloss.Style
	MilestoneCursor lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Colors.Track).
		Padding(0, 1).
		Width(cardWidth)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		StatCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Track).
			Padding(0, 2).
			Width(statCardWidth),

		StatValue: lipgloss.NewStyle().
			Bold(true),

		StatLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Chip: lipgloss.NewStyle().
			Foreground(Colors.TextFaint).
			Padding(0, 1),

		ChipSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.OnPrimary).
			Background(Colors.Primary).
			Padding(0, 1),

		Card: card,

		CardSelected: card.
			BorderForeground(Colors.Primary),

		CardCompleted: card.
			BorderForeground(Colors.Success),

		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Text),

		CardDesc: lipgloss.NewStyle().
			Foreground(Colors.TextFaint),

		CardMeta: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CheckMark: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Success),

		BarFilled: lipgloss.NewStyle().
			Foreground(Colors.Primary),

		BarCompleted: lipgloss.NewStyle().
			Foreground(Colors.Success),

		BarEmpty: lipgloss.NewStyle().
			Foreground(Colors.Track),

		EmptyTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TextFaint),

		EmptyText: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(1, 2).
			Width(dialogWidth),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Text),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.TextFaint),

		Label: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		LabelFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Button: lipgloss.NewStyle().
			Foreground(Colors.TextFaint).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.OnPrimary).
			Background(Colors.Primary).
			Padding(0, 2),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(Colors.Track).
			Strikethrough(true).
			Padding(0, 2),

		MilestoneDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		MilestoneOpen: lipgloss.NewStyle().
			Foreground(Colors.Text),

		MilestoneCursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// CategoryBadge renders a category name in its two-tone colors.
func (s Styles) CategoryBadge(cat domain.Category) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(cat.Color)).
		Background(lipgloss.Color(cat.Light)).
		Padding(0, 1).
		Render(cat.Name)
}

// CategoryChip renders a selectable category chip.
func (s Styles) CategoryChip(cat domain.Category, selected bool) string {
	if selected {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cat.Light)).
			Background(lipgloss.Color(cat.Color)).
			Padding(0, 1).
			Render(cat.Name)
	}
	return s.Chip.Render(cat.Name)
}

// ProgressBar renders a bar of width cells for progress in 0-100.
func (s Styles) ProgressBar(progress, width int, completed bool) string {
	if width < 1 {
		return ""
	}
	filled := domain.ClampProgress(progress) * width / domain.MaxProgress
	fill := s.BarFilled
	if completed {
		fill = s.BarCompleted
	}
	return fill.Render(strings.Repeat("█", filled)) + s.BarEmpty.Render(strings.Repeat("░", width-filled))
}
