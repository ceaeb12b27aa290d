package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Progress steps of the detail slider.
const (
	progressStep     = 1
	progressStepMore = 10
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgGoalsLoaded:
		// A mutation may have landed before the initial load returned.
		if !m.loaded {
			m.setGoals(msg.Goals)
		}
		return m, nil

	case MsgStoreChanged:
		return m, tea.Batch(m.reload(), m.waitForChange())

	case MsgError:
		return m, m.setError(msg.Err)

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches a key press to the handler of the current mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeCreate:
		return m.handleCreateMode(msg)
	case ModeDetail:
		return m.handleDetailMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys on the dashboard.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m, m.openCreate()

	case key.Matches(msg, m.keys.Open):
		if g := m.SelectedGoal(); g != nil {
			m.openDetail(*g)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if g := m.SelectedGoal(); g != nil {
			m.selectedID = g.ID
			m.askConfirm(ConfirmDelete)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextFilter):
		m.cycleFilter(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevFilter):
		m.cycleFilter(-1)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.reload()

	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-m.columns())
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.columns())
		return m, nil
	}

	return m, nil
}

// moveCursor moves the grid cursor by delta cards, stopping at the edges.
func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.visibleGoals()) {
		return
	}
	m.cursor = next
}

// askConfirm opens the confirmation dialog for action on selectedID.
func (m *Model) askConfirm(action ConfirmAction) {
	m.prevMode = m.mode
	m.confirmAction = action
	m.mode = ModeConfirm
}

// handleDetailMode handles keys in the goal-detail modal.
func (m *Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := m.detailGoal()
	if g == nil {
		m.closeDetail()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.closeDetail()
		m.selectGoal(g.ID)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.milestoneCursor > 0 {
			m.milestoneCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.milestoneCursor < len(g.Milestones)-1 {
			m.milestoneCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleMilestone()

	case key.Matches(msg, m.keys.ProgressDown):
		return m, m.adjustProgress(-progressStep)

	case key.Matches(msg, m.keys.ProgressUp):
		return m, m.adjustProgress(progressStep)

	case key.Matches(msg, m.keys.ProgressDownMore):
		return m, m.adjustProgress(-progressStepMore)

	case key.Matches(msg, m.keys.ProgressUpMore):
		return m, m.adjustProgress(progressStepMore)

	case key.Matches(msg, m.keys.Delete):
		m.askConfirm(ConfirmDelete)
		return m, nil
	}

	return m, nil
}

// handleConfirmMode handles keys in the confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = m.prevMode
		m.confirmAction = ConfirmNone
		if m.mode == ModeNormal {
			m.selectedID = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		switch m.confirmAction {
		case ConfirmNone:
			// Nothing to confirm
		case ConfirmDelete:
			return m, m.deleteGoal()
		}
	}

	return m, nil
}

// handleHelpMode handles keys in the help overlay.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

// handleCreateMode handles keys in the create-goal modal.
func (m *Model) handleCreateMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.createGoal()

	case key.Matches(msg, m.keys.NextField):
		m.nextCreateField(1)
		return m, m.focusCreateField()

	case key.Matches(msg, m.keys.PrevField):
		m.nextCreateField(-1)
		return m, m.focusCreateField()

	case key.Matches(msg, m.keys.AddMilestone):
		return m, m.addMilestone()

	case key.Matches(msg, m.keys.RemoveMilestone):
		return m, m.removeMilestone()
	}

	switch m.createField {
	case FieldCategory:
		switch {
		case key.Matches(msg, m.keys.Left):
			if m.categoryCursor > 0 {
				m.categoryCursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.categoryCursor < len(m.categories)-1 {
				m.categoryCursor++
			}
		case msg.Type == tea.KeyEnter:
			m.nextCreateField(1)
			return m, m.focusCreateField()
		}
		return m, nil

	case FieldSubmit:
		if msg.Type == tea.KeyEnter {
			return m, m.createGoal()
		}
		return m, nil

	case FieldTitle, FieldDate:
		if msg.Type == tea.KeyEnter {
			m.nextCreateField(1)
			return m, m.focusCreateField()
		}

	case FieldMilestone:
		if msg.Type == tea.KeyEnter {
			return m, m.addMilestone()
		}

	case FieldDesc:
	}

	return m, m.updateCreateInput(msg)
}

// updateCreateInput forwards msg to the focused text input.
func (m *Model) updateCreateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.createField {
	case FieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case FieldDesc:
		m.descInput, cmd = m.descInput.Update(msg)
	case FieldDate:
		m.dateInput, cmd = m.dateInput.Update(msg)
	case FieldMilestone:
		m.milestoneInputs[m.milestoneField], cmd = m.milestoneInputs[m.milestoneField].Update(msg)
	case FieldCategory, FieldSubmit:
	}
	return cmd
}

// nextCreateField moves focus by delta through the form, milestone
// inputs included, wrapping around.
func (m *Model) nextCreateField(delta int) {
	type stop struct {
		field     CreateField
		milestone int
	}
	stops := []stop{{FieldTitle, 0}, {FieldDesc, 0}, {FieldCategory, 0}, {FieldDate, 0}}
	for i := range m.milestoneInputs {
		stops = append(stops, stop{FieldMilestone, i})
	}
	stops = append(stops, stop{FieldSubmit, 0})

	cur := 0
	for i, s := range stops {
		if s.field == m.createField && (s.field != FieldMilestone || s.milestone == m.milestoneField) {
			cur = i
			break
		}
	}
	n := len(stops)
	next := stops[((cur+delta)%n+n)%n]
	m.createField = next.field
	m.milestoneField = next.milestone
}

// addMilestone appends an empty milestone input and focuses it.
func (m *Model) addMilestone() tea.Cmd {
	m.milestoneInputs = append(m.milestoneInputs, newMilestoneInput(len(m.milestoneInputs)))
	m.createField = FieldMilestone
	m.milestoneField = len(m.milestoneInputs) - 1
	return m.focusCreateField()
}

// removeMilestone drops the focused milestone input, keeping at least one.
func (m *Model) removeMilestone() tea.Cmd {
	if m.createField != FieldMilestone || len(m.milestoneInputs) <= 1 {
		return nil
	}
	i := m.milestoneField
	m.milestoneInputs = append(m.milestoneInputs[:i], m.milestoneInputs[i+1:]...)
	for j := range m.milestoneInputs {
		m.milestoneInputs[j].Placeholder = milestonePlaceholder(j)
	}
	if m.milestoneField >= len(m.milestoneInputs) {
		m.milestoneField = len(m.milestoneInputs) - 1
	}
	return m.focusCreateField()
}
