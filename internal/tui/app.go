package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/goals/internal/app"
	"github.com/runoshun/goals/internal/domain"
	"github.com/runoshun/goals/internal/usecase"
)

// inputWidth is the width of text inputs inside the create modal.
const inputWidth = dialogWidth - 8

// errorTimeout is how long an error stays on screen without a key press.
const errorTimeout = 5 * time.Second

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error
	changes   <-chan struct{}

	// State (slices - contain pointers)
	goals           []domain.Goal
	categories      domain.CategoryTable
	filters         []domain.Filter
	milestoneInputs []textinput.Model

	// Components (structs with pointers)
	keys   KeyMap
	styles Styles
	help   help.Model

	// Input state (large structs)
	titleInput textinput.Model
	dateInput  textinput.Model
	descInput  textarea.Model

	// Selection
	filter     domain.Filter
	selectedID string

	// Numeric state (smaller types last)
	mode            Mode
	prevMode        Mode
	confirmAction   ConfirmAction
	createField     CreateField
	milestoneField  int
	categoryCursor  int
	milestoneCursor int
	cursor          int
	width           int
	height          int
	loaded          bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "What do you want to achieve?"
	ti.CharLimit = 200
	ti.Width = inputWidth

	di := textarea.New()
	di.Placeholder = "Describe your goal in detail..."
	di.CharLimit = 2000
	di.ShowLineNumbers = false
	di.SetHeight(3)
	di.SetWidth(inputWidth)

	dt := textinput.New()
	dt.Placeholder = "YYYY-MM-DD (optional)"
	dt.CharLimit = 10
	dt.Width = inputWidth

	categories := c.Categories()

	return &Model{
		container:  c,
		categories: categories,
		filters:    domain.FilterKeys(categories),
		filter:     domain.FilterAll,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		help:       help.New(),
		titleInput: ti,
		descInput:  di,
		dateInput:  dt,
		mode:       ModeNormal,
	}
}

// WithChanges makes the model reload whenever ch delivers a value.
func (m *Model) WithChanges(ch <-chan struct{}) *Model {
	m.changes = ch
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadGoals(),
		m.waitForChange(),
	)
}

// loadGoals returns a command that loads goals from the store.
func (m *Model) loadGoals() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListGoalsUseCase().Execute(context.Background(), usecase.ListGoalsInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgGoalsLoaded{Goals: out.All}
	}
}

// waitForChange returns a command that blocks until the store changes.
func (m *Model) waitForChange() tea.Cmd {
	ch := m.changes
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return MsgStoreChanged{}
	}
}

// clearErrorAfter returns a command that clears the error line later.
func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MsgClearError{}
	})
}

// reload replaces the goal list with the stored one.
// On failure the in-memory list is kept.
func (m *Model) reload() tea.Cmd {
	out, err := m.container.ListGoalsUseCase().Execute(context.Background(), usecase.ListGoalsInput{})
	if err != nil {
		return m.setError(err)
	}
	m.setGoals(out.All)
	return nil
}

// setGoals replaces the goal list and keeps the selection valid.
func (m *Model) setGoals(goals []domain.Goal) {
	m.goals = goals
	m.loaded = true
	m.clampCursor()
	if m.mode == ModeDetail || (m.mode == ModeConfirm && m.prevMode == ModeDetail) {
		g := m.detailGoal()
		if g == nil {
			m.closeDetail()
			return
		}
		m.clampMilestoneCursor(*g)
	}
}

// setError records err for display and writes it to the log.
func (m *Model) setError(err error) tea.Cmd {
	m.err = err
	m.container.Logger.Error(m.selectedID, "tui", err.Error())
	return clearErrorAfter(errorTimeout)
}

// visibleGoals returns the goals matching the current filter.
func (m *Model) visibleGoals() []domain.Goal {
	return m.filter.Apply(m.goals, m.categories)
}

// SelectedGoal returns the goal under the grid cursor, or nil if none.
func (m *Model) SelectedGoal() *domain.Goal {
	visible := m.visibleGoals()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	g := visible[m.cursor]
	return &g
}

// detailGoal returns the goal shown in the detail modal, or nil if it is gone.
func (m *Model) detailGoal() *domain.Goal {
	for i := range m.goals {
		if m.goals[i].ID == m.selectedID {
			g := m.goals[i]
			return &g
		}
	}
	return nil
}

// stats computes the summary counts over every goal.
func (m *Model) stats() domain.Stats {
	return domain.ComputeStats(m.goals, m.container.Clock.Now())
}

func (m *Model) clampCursor() {
	n := len(m.visibleGoals())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) clampMilestoneCursor(g domain.Goal) {
	if m.milestoneCursor >= len(g.Milestones) {
		m.milestoneCursor = len(g.Milestones) - 1
	}
	if m.milestoneCursor < 0 {
		m.milestoneCursor = 0
	}
}

// selectGoal moves the grid cursor onto the goal with id, if visible.
func (m *Model) selectGoal(id string) {
	for i, g := range m.visibleGoals() {
		if g.ID == id {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

// cycleFilter moves the filter selection by delta, wrapping around.
func (m *Model) cycleFilter(delta int) {
	idx := 0
	for i, f := range m.filters {
		if f == m.filter {
			idx = i
			break
		}
	}
	n := len(m.filters)
	m.filter = m.filters[((idx+delta)%n+n)%n]
	m.cursor = 0
}

func (m *Model) openDetail(g domain.Goal) {
	m.selectedID = g.ID
	m.milestoneCursor = 0
	m.mode = ModeDetail
}

func (m *Model) closeDetail() {
	m.selectedID = ""
	m.milestoneCursor = 0
	m.mode = ModeNormal
	m.confirmAction = ConfirmNone
}

// openCreate resets the create form and focuses the title.
func (m *Model) openCreate() tea.Cmd {
	m.titleInput.Reset()
	m.descInput.Reset()
	m.dateInput.Reset()
	m.milestoneInputs = []textinput.Model{newMilestoneInput(0)}
	m.milestoneField = 0
	m.categoryCursor = 0
	def := m.container.AppConfig.NewGoalCategory()
	for i, c := range m.categories {
		if c.Name == def {
			m.categoryCursor = i
			break
		}
	}
	m.createField = FieldTitle
	m.mode = ModeCreate
	return m.focusCreateField()
}

func newMilestoneInput(index int) textinput.Model {
	in := textinput.New()
	in.Placeholder = milestonePlaceholder(index)
	in.CharLimit = 200
	in.Width = inputWidth
	return in
}

func milestonePlaceholder(index int) string {
	return "Milestone " + strconv.Itoa(index+1)
}

// focusCreateField focuses the input matching createField and blurs the rest.
func (m *Model) focusCreateField() tea.Cmd {
	m.titleInput.Blur()
	m.descInput.Blur()
	m.dateInput.Blur()
	for i := range m.milestoneInputs {
		m.milestoneInputs[i].Blur()
	}

	switch m.createField {
	case FieldTitle:
		return m.titleInput.Focus()
	case FieldDesc:
		return m.descInput.Focus()
	case FieldDate:
		return m.dateInput.Focus()
	case FieldMilestone:
		return m.milestoneInputs[m.milestoneField].Focus()
	case FieldCategory, FieldSubmit:
	}
	return nil
}

// canCreate reports whether the create button is enabled.
func (m *Model) canCreate() bool {
	return strings.TrimSpace(m.titleInput.Value()) != ""
}

// createGoal submits the create form.
// The modal stays open when the goal is rejected.
func (m *Model) createGoal() tea.Cmd {
	if !m.canCreate() {
		return nil
	}

	titles := make([]string, 0, len(m.milestoneInputs))
	for _, in := range m.milestoneInputs {
		titles = append(titles, in.Value())
	}
	var category string
	if m.categoryCursor < len(m.categories) {
		category = m.categories[m.categoryCursor].Name
	}

	out, err := m.container.CreateGoalUseCase().Execute(context.Background(), usecase.CreateGoalInput{
		Title:           m.titleInput.Value(),
		Description:     m.descInput.Value(),
		Category:        category,
		TargetDate:      strings.TrimSpace(m.dateInput.Value()),
		MilestoneTitles: titles,
	})
	if err != nil {
		return m.setError(err)
	}

	m.mode = ModeNormal
	m.setGoals(out.Goals)
	m.selectGoal(out.Goal.ID)
	return nil
}

// deleteGoal removes the goal awaiting confirmation.
func (m *Model) deleteGoal() tea.Cmd {
	id := m.selectedID
	m.closeDetail()
	out, err := m.container.DeleteGoalUseCase().Execute(context.Background(), usecase.DeleteGoalInput{
		GoalID:  id,
		ExactID: true,
	})
	if err != nil {
		return m.setError(err)
	}
	m.setGoals(out.Goals)
	return nil
}

// toggleMilestone flips the milestone under the detail cursor.
func (m *Model) toggleMilestone() tea.Cmd {
	g := m.detailGoal()
	if g == nil || m.milestoneCursor >= len(g.Milestones) {
		return nil
	}
	out, err := m.container.ToggleMilestoneUseCase().Execute(context.Background(), usecase.ToggleMilestoneInput{
		GoalID:      g.ID,
		ExactID:     true,
		MilestoneID: g.Milestones[m.milestoneCursor].ID,
	})
	if err != nil {
		return m.setError(err)
	}
	m.setGoals(out.Goals)
	return nil
}

// adjustProgress moves the detail goal's progress by delta, clamped to 0-100.
func (m *Model) adjustProgress(delta int) tea.Cmd {
	g := m.detailGoal()
	if g == nil {
		return nil
	}
	progress := domain.ClampProgress(g.Progress + delta)
	if progress == g.Progress {
		return nil
	}
	out, err := m.container.SetProgressUseCase().Execute(context.Background(), usecase.SetProgressInput{
		GoalID:   g.ID,
		ExactID:  true,
		Progress: progress,
	})
	if err != nil {
		return m.setError(err)
	}
	m.setGoals(out.Goals)
	return nil
}
