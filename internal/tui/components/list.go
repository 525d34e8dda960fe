package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/projboard/internal/tui/theme"
)

type ListProps struct {
	// Title is the list header, e.g. "ACTIVE PROJECTS"
	Title string
	// Cards holds every rendered card of the list, in order
	Cards []string
	// Focused reports whether the keyboard cursor is in this list
	Focused bool
	// Droppable reports whether a drag is hovering and the list accepted it
	Droppable bool
	// Width and Height are the outer dimensions of the list box
	Width  int
	Height int
	// ScrollOffset is the index of the first visible card
	ScrollOffset int
}

// RenderList renders a complete project list with its title and cards.
//
// Layout:
//
//	{TITLE} ({count})
//	▲ more above (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ more below (if more cards below)
func RenderList(props ListProps) string {
	header := fmt.Sprintf("%s (%d)", props.Title, len(props.Cards))
	content := TitleStyle.Render(header) + "\n"

	if len(props.Cards) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No projects")
	} else {
		visible := VisibleCards(props.Height)
		start := min(max(props.ScrollOffset, 0), len(props.Cards)-1)
		end := min(start+visible, len(props.Cards))

		// Always reserve space for the top indicator
		if start > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		content += strings.Join(props.Cards[start:end], "\n")

		if end < len(props.Cards) {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	// Subtract 2 for the borders since .Width() and .Height() exclude them
	style := ListStyle.Width(max(props.Width-2, 1))
	switch {
	case props.Droppable:
		style = style.BorderForeground(lipgloss.Color(theme.DroppableBorder))
	case props.Focused:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		style = style.Height(max(props.Height-listBorderOverhead, 1))
	}

	return style.Render(content)
}
