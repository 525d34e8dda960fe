package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/projboard/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	// Dragging is the title of the project being dragged, empty when idle
	Dragging string
	// Notification is an already rendered banner shown in place of the help hint
	Notification string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "Projboard - Project Management", or the drag in progress
// Right side: the latest notification, or "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Projboard - Project Management"
	if props.Dragging != "" {
		leftText = "Dragging: " + props.Dragging + " (enter to drop, esc to cancel)"
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := props.Notification
	if rightRendered == "" {
		rightRendered = style.Render("press ? for help")
	}

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := max(props.Width-leftWidth-rightWidth, 1)

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
