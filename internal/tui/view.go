package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/goals/internal/domain"
)

// Layout sizes. Widths include padding but not borders.
const (
	cardWidth     = 34
	cardHeight    = 9 // Seven content lines plus borders
	cardGap       = 1
	statCardWidth = 18
	dialogWidth   = 60
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeCreate:
		content = m.overlay(m.viewCreate())
	case ModeDetail:
		content = m.overlay(m.viewDetail())
	case ModeConfirm:
		content = m.overlay(m.viewConfirmDialog())
	case ModeHelp:
		content = m.overlay(m.viewHelp())
	case ModeNormal:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// overlay centers a dialog in the window.
func (m *Model) overlay(dialog string) string {
	w, h := m.innerSize()
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dialog)
}

// innerSize returns the window size minus the app padding.
func (m *Model) innerSize() (int, int) {
	w := m.width - m.styles.App.GetHorizontalFrameSize()
	h := m.height - m.styles.App.GetVerticalFrameSize()
	return max(w, 0), max(h, 0)
}

// viewMain renders the dashboard.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewStats())
	b.WriteString("\n\n")
	b.WriteString(m.viewFilterBar())
	b.WriteString("\n\n")

	if len(m.visibleGoals()) == 0 {
		b.WriteString(m.viewEmpty())
	} else {
		b.WriteString(m.viewGrid())
	}
	b.WriteString("\n")

	b.WriteString(m.viewFooter())
	return b.String()
}

func (m *Model) viewHeader() string {
	title := m.styles.Title.Render("Goal Tracker")
	subtitle := m.styles.Subtitle.Render("Achieve your dreams, one step at a time")
	return m.styles.Header.Render(lipgloss.JoinVertical(lipgloss.Left, title, subtitle))
}

// viewStats renders the four stat cards.
func (m *Model) viewStats() string {
	s := m.stats()
	cards := []struct {
		label string
		value int
		color lipgloss.Color
	}{
		{"Total Goals", s.Total, Colors.StatTotal},
		{"Completed", s.Completed, Colors.StatCompleted},
		{"In Progress", s.InProgress, Colors.StatInProgress},
		{"Day Streak", s.Streak, Colors.StatStreak},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.styles.StatValue.Foreground(c.color).Render(fmt.Sprintf("%d", c.value)),
			m.styles.StatLabel.Render(c.label),
		)
		rendered = append(rendered, m.styles.StatCard.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// viewFilterBar renders one chip per filter.
func (m *Model) viewFilterBar() string {
	chips := make([]string, 0, len(m.filters))
	for _, f := range m.filters {
		selected := f == m.filter
		if cat, ok := m.categories.Lookup(string(f)); ok {
			chips = append(chips, m.styles.CategoryChip(cat, selected))
			continue
		}
		if selected {
			chips = append(chips, m.styles.ChipSelected.Render(f.Label()))
		} else {
			chips = append(chips, m.styles.Chip.Render(f.Label()))
		}
	}
	return strings.Join(chips, " ")
}

func (m *Model) viewEmpty() string {
	w, _ := m.innerSize()
	body := lipgloss.JoinVertical(lipgloss.Center,
		"",
		m.styles.EmptyTitle.Render("No goals yet"),
		m.styles.EmptyText.Render("Start by adding your first goal!"),
		"",
		m.styles.Footer.Render("Press n to create a goal"),
		"",
	)
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, body)
}

// columns returns how many cards fit side by side.
func (m *Model) columns() int {
	w, _ := m.innerSize()
	if w == 0 {
		return 1
	}
	outer := cardWidth + 2 + cardGap
	return max(1, (w+cardGap)/outer)
}

// visibleRows returns how many card rows fit under the dashboard chrome.
func (m *Model) visibleRows() int {
	_, h := m.innerSize()
	// Header, stat cards, filter bar, footer and their spacing.
	const chrome = 3 + 4 + 2 + 2
	return max(1, (h-chrome)/cardHeight)
}

// viewGrid renders the visible goal cards, scrolled to keep the cursor in view.
func (m *Model) viewGrid() string {
	goals := m.visibleGoals()
	cols := m.columns()
	rows := m.visibleRows()

	startRow := 0
	if cursorRow := m.cursor / cols; cursorRow >= rows {
		startRow = cursorRow - rows + 1
	}

	lines := make([]string, 0, rows)
	for r := startRow; r < startRow+rows; r++ {
		from := r * cols
		if from >= len(goals) {
			break
		}
		to := min(from+cols, len(goals))
		cards := make([]string, 0, cols*2)
		for i := from; i < to; i++ {
			if i > from {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, m.viewCard(goals[i], i == m.cursor))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if total := (len(goals) + cols - 1) / cols; total > rows {
		grid += "\n" + m.styles.Footer.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(goals)))
	}
	return grid
}

// viewCard renders one goal card.
func (m *Model) viewCard(g domain.Goal, selected bool) string {
	width := cardWidth - m.styles.Card.GetHorizontalPadding()

	badge := m.styles.CategoryBadge(m.categories.Style(g.Category))
	top := badge
	if g.Completed {
		check := m.styles.CheckMark.Render("✓")
		top = spread(badge, check, width)
	}

	desc := clampLines(g.Description, width, 2)
	for len(desc) < 2 {
		desc = append(desc, "")
	}

	pct := fmt.Sprintf("%d%%", g.Progress)
	progress := spread(m.styles.CardMeta.Render("Progress"), m.styles.CardTitle.Render(pct), width)

	var meta string
	if n := len(g.Milestones); n > 0 {
		meta = fmt.Sprintf("◆ %d/%d", g.CompletedMilestones(), n)
	}
	if g.HasTargetDate() {
		meta = spread(meta, "Due "+formatDate(g.TargetDate), width)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		top,
		m.styles.CardTitle.Render(truncate(g.Title, width)),
		m.styles.CardDesc.Render(strings.Join(desc, "\n")),
		progress,
		m.styles.ProgressBar(g.Progress, width, g.Completed),
		m.styles.CardMeta.Render(meta),
	)

	style := m.styles.Card
	switch {
	case selected:
		style = m.styles.CardSelected
	case g.Completed:
		style = m.styles.CardCompleted
	}
	return style.Render(body)
}

// viewFooter renders the error line and the key help.
func (m *Model) viewFooter() string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// viewCreate renders the create-goal modal.
func (m *Model) viewCreate() string {
	width := dialogWidth - m.styles.Dialog.GetHorizontalPadding()
	label := func(text string, focused bool) string {
		if focused {
			return m.styles.LabelFocused.Render(text)
		}
		return m.styles.Label.Render(text)
	}

	chips := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		chips = append(chips, m.styles.CategoryChip(c, i == m.categoryCursor))
	}
	categoryRow := lipgloss.NewStyle().Width(width).Render(strings.Join(chips, " "))

	parts := []string{
		m.styles.DialogTitle.Render("Create New Goal"),
		"",
		label("Title", m.createField == FieldTitle),
		m.titleInput.View(),
		"",
		label("Description", m.createField == FieldDesc),
		m.descInput.View(),
		"",
		label("Category", m.createField == FieldCategory),
		categoryRow,
		"",
		label("Target Date", m.createField == FieldDate),
		m.dateInput.View(),
		"",
		label("Milestones", m.createField == FieldMilestone),
	}
	for i := range m.milestoneInputs {
		parts = append(parts, m.milestoneInputs[i].View())
	}
	parts = append(parts,
		m.styles.Footer.Render("+ Add Milestone"),
		"",
		m.viewCreateButtons(),
		"",
		m.help.View(createHelp{m.keys}),
	)

	if m.err != nil {
		parts = append(parts, m.styles.ErrorMsg.Render("Error: "+m.err.Error()))
	}

	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) viewCreateButtons() string {
	cancel := m.styles.Button.Render("Cancel")
	var create string
	switch {
	case !m.canCreate():
		create = m.styles.ButtonDisabled.Render("Create Goal")
	case m.createField == FieldSubmit:
		create = m.styles.ButtonFocused.Render("Create Goal")
	default:
		create = m.styles.Button.Render("Create Goal")
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, cancel, "  ", create)
}

// viewDetail renders the goal-detail modal.
func (m *Model) viewDetail() string {
	g := m.detailGoal()
	if g == nil {
		return ""
	}
	width := dialogWidth - m.styles.Dialog.GetHorizontalPadding()

	top := m.styles.CategoryBadge(m.categories.Style(g.Category))
	if g.Completed {
		top += " " + lipgloss.NewStyle().
			Foreground(Colors.OnPrimary).
			Background(Colors.Success).
			Padding(0, 1).
			Render("Completed")
	}

	parts := []string{
		top,
		"",
		m.styles.DialogTitle.Width(width).Render(g.Title),
	}
	if g.Description != "" {
		parts = append(parts, m.styles.CardDesc.Width(width).Render(g.Description))
	}

	parts = append(parts,
		"",
		spread(m.styles.Label.Render("Overall Progress"), m.styles.CardTitle.Render(fmt.Sprintf("%d%%", g.Progress)), width),
		m.styles.ProgressBar(g.Progress, width, g.Completed),
		"",
		m.styles.Label.Render(fmt.Sprintf("Milestones (%d/%d)", g.CompletedMilestones(), len(g.Milestones))),
	)

	if len(g.Milestones) == 0 {
		parts = append(parts, m.styles.Footer.Render("  No milestones"))
	}
	for i, ms := range g.Milestones {
		cursor := "  "
		if i == m.milestoneCursor {
			cursor = m.styles.MilestoneCursor.Render("› ")
		}
		box, style := "[ ]", m.styles.MilestoneOpen
		if ms.Completed {
			box, style = "[x]", m.styles.MilestoneDone
		}
		parts = append(parts, cursor+box+" "+style.Render(truncate(ms.Title, width-6)))
	}

	if g.HasTargetDate() {
		parts = append(parts, "", m.styles.CardMeta.Render("Target: "+formatDate(g.TargetDate)))
	}

	closeBtn := m.styles.Footer.Render("[ esc ] Close")
	deleteBtn := m.styles.DialogTitle.Foreground(Colors.Error).Render("[ d ] Delete")
	parts = append(parts,
		"",
		lipgloss.JoinHorizontal(lipgloss.Left, closeBtn, "  ", deleteBtn),
		"",
		m.help.View(detailHelp{m.keys}),
	)

	if m.err != nil {
		parts = append(parts, m.styles.ErrorMsg.Render("Error: "+m.err.Error()))
	}

	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	var action, target string
	var color lipgloss.Color

	switch m.confirmAction {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		action = "Delete"
		target = "this goal"
		if g := m.detailGoal(); g != nil {
			target = fmt.Sprintf("%q", truncate(g.Title, 30))
		}
		color = Colors.Error
	}

	titleStyle := m.styles.DialogTitle.Foreground(color)
	title := titleStyle.Render(fmt.Sprintf("%s %s?", action, target))
	prompt := m.styles.DialogPrompt.Render("This action cannot be undone.")

	yesBtn := m.styles.HelpKey.Render("[ y ] Confirm")
	noBtn := m.styles.Footer.Render("[ n ] Cancel")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left, yesBtn, "  ", noBtn)

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		prompt,
		"",
		buttons,
	)
	return m.styles.Dialog.BorderForeground(color).Render(content)
}

// viewHelp renders the keyboard shortcuts overlay.
func (m *Model) viewHelp() string {
	title := m.styles.DialogTitle.Render("KEYBOARD SHORTCUTS")

	full := m.help
	full.ShowAll = true

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		full.View(m.keys),
		"",
		m.styles.Footer.Render("Press ? or esc to close"),
	)
	return m.styles.Dialog.UnsetWidth().Render(content)
}
