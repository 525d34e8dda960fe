package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/projboard/internal/tui/components"
	"github.com/thenoetrevino/projboard/internal/tui/state"
)

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m.handleQuit()
	case km.ShowHelp:
		return m.handleShowHelp()
	case km.AddProject:
		return m.handleAddProject()
	case km.PrevList, "left":
		return m.handleNavigateLeft()
	case km.NextList, "right":
		return m.handleNavigateRight()
	case km.PrevItem, "up":
		return m.handleNavigateUp()
	case km.NextItem, "down":
		return m.handleNavigateDown()
	case km.PickUp:
		if m.Drag.Active() {
			return m.handleDrop()
		}
		return m.handlePickUp()
	case km.Drop:
		return m.handleDrop()
	case km.CancelDrag:
		return m.handleCancelDrag()
	}

	return m, nil
}

// handleQuit exits the application.
func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	m.Drag.Cancel()
	return m, tea.Quit
}

// handleShowHelp displays the help screen.
func (m Model) handleShowHelp() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.HelpMode)
	return m, nil
}

// handleAddProject opens the project form. A drag in flight is cancelled first.
func (m Model) handleAddProject() (tea.Model, tea.Cmd) {
	m.Drag.Cancel()
	m.UiState.SetMode(state.ProjectFormMode)
	return m, m.Input.Open()
}

// handleNavigateLeft focuses the previous list.
func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	m.focusList(m.UiState.SelectedList() - 1)
	return m, nil
}

// handleNavigateRight focuses the next list.
func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	m.focusList(m.UiState.SelectedList() + 1)
	return m, nil
}

// focusList moves focus to index and carries an in-flight drag along.
func (m Model) focusList(index int) {
	if index < 0 || index >= len(m.Lists) || index == m.UiState.SelectedList() {
		return
	}
	m.UiState.SetSelectedList(index)
	if m.Drag.Active() {
		m.Drag.Enter(m.currentList())
	}
}

// handleNavigateUp moves the cursor to the previous card.
func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedItem() > 0 {
		m.UiState.SetSelectedItem(m.UiState.SelectedItem() - 1)
		m.UiState.EnsureItemVisible(m.UiState.SelectedList(), components.VisibleCards(m.listHeight()))
	}
	return m, nil
}

// handleNavigateDown moves the cursor to the next card.
func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedItem() < m.currentList().Len()-1 {
		m.UiState.SetSelectedItem(m.UiState.SelectedItem() + 1)
		m.UiState.EnsureItemVisible(m.UiState.SelectedList(), components.VisibleCards(m.listHeight()))
	}
	return m, nil
}

// handlePickUp starts dragging the card under the cursor.
// The drag starts over the source list, so dropping in place is a no-op move.
func (m Model) handlePickUp() (tea.Model, tea.Cmd) {
	item := m.currentItem()
	if item == nil {
		m.NotificationState.Add(state.LevelInfo, "No project to pick up")
		return m, nil
	}

	m.Drag.Start(item)
	m.Drag.Enter(m.currentList())
	return m, nil
}

// handleDrop drops the dragged card on the focused list.
// The cursor follows the project to its new position.
func (m Model) handleDrop() (tea.Model, tea.Cmd) {
	if !m.Drag.Active() {
		return m, nil
	}

	id := m.Drag.Source().Project().ID
	target := m.currentList()
	if !m.Drag.Drop(target) {
		m.NotificationState.Add(state.LevelError, target.Title()+" refused the drop")
		return m, nil
	}

	if idx := target.IndexOf(id); idx >= 0 {
		m.UiState.SetSelectedItem(idx)
	}
	m.syncCursors()
	return m, nil
}

// handleCancelDrag abandons the drag without moving anything.
func (m Model) handleCancelDrag() (tea.Model, tea.Cmd) {
	m.Drag.Cancel()
	return m, nil
}
