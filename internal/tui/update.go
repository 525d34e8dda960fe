package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/projboard/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.UiState.SetWidth(size.Width)
		m.UiState.SetHeight(size.Height)
		m.syncCursors()
	}

	// Forms need to receive ALL messages, not just key presses
	if m.UiState.Mode() == state.ProjectFormMode {
		return m.updateProjectForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch m.UiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(keyMsg)
	case state.AlertMode:
		return m.handleAlertMode(keyMsg)
	case state.HelpMode:
		return m.handleHelpMode(keyMsg)
	}

	return m, nil
}
