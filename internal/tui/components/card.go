package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/projboard/internal/models"
	"github.com/thenoetrevino/projboard/internal/tui/theme"
)

type CardProps struct {
	Project  models.Project
	Width    int
	Selected bool
	Dragging bool
}

// RenderCard renders a single project as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Project Title}     ┃
//	┃ N persons assigned  ┃
//	┃ {description}       ┃
//	┃ {description}       ┃
//	┗━━━━━━━━━━━━━━━━━━━━━┛
//
// This has a fixed height so lists can compute how many cards fit.
func RenderCard(props CardProps) string {
	bg := theme.CardBg
	if props.Selected {
		bg = theme.SelectedBg
	}
	border := theme.SelectedBorder
	if props.Dragging {
		border = theme.DraggingBorder
	}

	inner := max(props.Width-cardHorizontalFrame, 1)

	title := lipgloss.NewStyle().
		Bold(true).
		Render(fitLine(" "+props.Project.Title, inner))

	people := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(fitLine(" "+props.Project.PeopleLabel(), inner))

	lines := []string{title, people}
	lines = append(lines, RenderDescription(DescriptionProps{
		Description: props.Project.Description,
		Width:       inner,
		Lines:       cardDescriptionLines,
	})...)

	// Width and Height set the area inside the border
	style := CardStyle.
		Width(inner).
		Height(CardHeight-2).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	if props.Selected || props.Dragging {
		style = style.BorderForeground(lipgloss.Color(border))
	}

	return style.Render(strings.Join(lines, "\n"))
}

// fitLine shortens a line to width cells, ending it with an ellipsis when cut
func fitLine(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(max(width, 1)), "…")
}
