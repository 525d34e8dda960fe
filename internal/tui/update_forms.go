package tui

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/projboard/internal/tui/state"
)

// updateProjectForm handles all messages when in ProjectFormMode
// This is separated out because forms need to receive ALL messages, not just KeyMsg
func (m Model) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.Input.IsOpen() {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	// ESC is intercepted here rather than waiting for huh's abort state
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "esc" {
		m.Input.Close()
		m.UiState.SetMode(state.NormalMode)
		return m, tea.ClearScreen
	}

	completed, cmd := m.Input.Update(msg)
	if !completed {
		return m, cmd
	}
	return m.handleProjectFormSubmit()
}

// handleProjectFormSubmit closes the form and either adds the project or
// shows the blocking alert.
func (m Model) handleProjectFormSubmit() (tea.Model, tea.Cmd) {
	m.Input.Close()
	project, err := m.Input.Submit()
	if err != nil {
		m.logger.Debug("project rejected", "error", err)
		message := AlertMessage
		var inputErr *InputError
		if errors.As(err, &inputErr) {
			message += "\n\n" + inputErr.Detail()
		}
		m.UiState.ShowAlert(message)
		return m, nil
	}

	m.syncCursors()
	m.NotificationState.Add(state.LevelInfo, "Added "+project.Title)
	m.UiState.SetMode(state.NormalMode)
	return m, tea.ClearScreen
}

// handleAlertMode waits for the alert to be dismissed. enter and space reopen
// the form with the rejected values so they can be corrected, esc leaves the
// form closed as it does from inside the form.
func (m Model) handleAlertMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "space":
		m.UiState.DismissAlert(state.ProjectFormMode)
		return m, m.Input.Open()
	case "esc":
		m.UiState.DismissAlert(state.NormalMode)
		return m, tea.ClearScreen
	}
	return m, nil
}

// handleHelpMode closes the help screen on any key.
func (m Model) handleHelpMode(_ tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}
