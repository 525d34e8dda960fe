package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/projboard/internal/tui/components"
	"github.com/thenoetrevino/projboard/internal/tui/state"
	"github.com/thenoetrevino/projboard/internal/tui/theme"
)

// listSpacing is the gap between two lists
const listSpacing = 2

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true                                   // Use alternate screen buffer
	view.BackgroundColor = lipgloss.Color(theme.Background) // Set root background color

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// Always show the board with modal overlays on top
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBoard()),
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.ProjectFormMode:
		modalLayer = m.renderProjectFormLayer()
	case state.AlertMode:
		modalLayer = m.renderAlertLayer()
	case state.HelpMode:
		modalLayer = m.renderHelpLayer()
	}
	if modalLayer != nil {
		layers = append(layers, modalLayer)
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// viewBoard renders the header, the lists side by side and the status bar
func (m Model) viewBoard() string {
	header := components.TitleStyle.Render("PROJBOARD")

	listWidth := m.UiState.ListWidth()
	height := m.listHeight()

	var draggingID, draggingTitle string
	if src := m.Drag.Source(); src != nil {
		draggingID = src.Project().ID
		draggingTitle = src.Project().Title
	}

	gap := lipgloss.NewStyle().Width(listSpacing).Render("")
	var columns []string
	for i, l := range m.Lists {
		if i > 0 {
			columns = append(columns, gap)
		}
		columns = append(columns, l.View(ListViewProps{
			Width:        listWidth,
			Height:       height,
			Focused:      i == m.UiState.SelectedList(),
			Cursor:       m.UiState.ItemCursor(i),
			ScrollOffset: m.UiState.ScrollOffset(i),
			DraggingID:   draggingID,
		}))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	footer := components.RenderStatusBar(components.StatusBarProps{
		Width:        m.UiState.Width(),
		Dragging:     draggingTitle,
		Notification: m.inlineNotification(),
	})

	return lipgloss.JoinVertical(lipgloss.Left, header, "", board, "", footer)
}

// inlineNotification returns the latest notification rendered as a banner
func (m Model) inlineNotification() string {
	n, ok := m.NotificationState.Latest()
	if !ok {
		return ""
	}
	if n.Level == state.LevelError {
		return components.ErrorBannerStyle.Render(n.Message)
	}
	return components.InfoBannerStyle.Render(n.Message)
}
