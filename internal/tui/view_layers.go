package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/projboard/internal/tui/components"
	"github.com/thenoetrevino/projboard/internal/tui/layers"
)

// renderProjectFormLayer renders the project creation form modal as a layer
func (m Model) renderProjectFormLayer() *lipgloss.Layer {
	form := m.Input.Form()
	if form == nil {
		return nil
	}

	// Wrap form in a styled container with green border for creation
	formBox := components.ProjectFormBoxStyle.
		Width(max(m.UiState.Width()/2, 40)).
		Render("New Project\n\n" + form.View())

	return layers.CreateCenteredLayer(formBox, m.UiState.Width(), m.UiState.Height())
}

// alertHint lists the keys handleAlertMode accepts
const alertHint = "enter/space: fix input   esc: close form"

// renderAlertLayer renders the blocking validation alert as a layer
func (m Model) renderAlertLayer() *lipgloss.Layer {
	alertBox := components.AlertBoxStyle.
		Width(50).
		Render(m.UiState.AlertMessage() + "\n\n" + components.IndicatorStyle.Render(alertHint))

	return layers.CreateCenteredLayer(alertBox, m.UiState.Width(), m.UiState.Height())
}

// renderHelpLayer renders the keyboard shortcuts help screen as a layer
func (m Model) renderHelpLayer() *lipgloss.Layer {
	helpBox := components.HelpBoxStyle.
		Width(50).
		Render(m.generateHelpText())

	return layers.CreateCenteredLayer(helpBox, m.UiState.Width(), m.UiState.Height())
}

// generateHelpText creates help text based on current key mappings
func (m Model) generateHelpText() string {
	km := m.Config.KeyMappings
	return fmt.Sprintf(`PROJBOARD - Keyboard Shortcuts

PROJECTS
  %-8s Add new project

DRAG AND DROP
  %-8s Pick up selected project
  %-8s Drop on focused list
  %-8s Cancel drag

NAVIGATION
  %-8s Move to previous list
  %-8s Move to next list
  %-8s Move to previous project
  %-8s Move to next project

OTHER
  %-8s Show this help
  %-8s Quit

Press any key to close`,
		km.AddProject,
		km.PickUp,
		km.Drop,
		km.CancelDrag,
		km.PrevList,
		km.NextList,
		km.PrevItem,
		km.NextItem,
		km.ShowHelp,
		km.Quit,
	)
}
