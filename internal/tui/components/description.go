package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/projboard/internal/tui/theme"
)

// DescriptionProps describes the description block of a card
type DescriptionProps struct {
	Description string
	// Width is the cell width of every returned line
	Width int
	// Lines is the exact number of lines returned
	Lines int
}

// markdownRenderers holds one glamour renderer per wrap width.
// Every card in a list shares a width, so the cache stays small.
var (
	markdownMu        sync.Mutex
	markdownRenderers = map[int]*glamour.TermRenderer{}
)

func markdownRenderer(wrap int) (*glamour.TermRenderer, error) {
	markdownMu.Lock()
	defer markdownMu.Unlock()

	if r, ok := markdownRenderers[wrap]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, err
	}
	markdownRenderers[wrap] = r
	return r, nil
}

// RenderDescription renders a project description as markdown and returns
// exactly props.Lines lines, each indented one cell and fitted to props.Width.
// Blank rendered lines are skipped, so paragraphs pack together on a card.
// Rendering failures fall back to the raw text.
func RenderDescription(props DescriptionProps) []string {
	lines := make([]string, 0, props.Lines)
	if props.Lines <= 0 {
		return lines
	}

	if strings.TrimSpace(props.Description) == "" {
		placeholder := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render(fitLine(" No description", props.Width))
		lines = append(lines, placeholder)
	} else {
		for line := range strings.SplitSeq(markdown(props.Description, props.Width), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			lines = append(lines, fitLine(" "+line, props.Width))
			if len(lines) == props.Lines {
				break
			}
		}
	}

	for len(lines) < props.Lines {
		lines = append(lines, "")
	}
	return lines
}

// markdown wraps text one cell narrower than width to leave room for the indent
func markdown(text string, width int) string {
	r, err := markdownRenderer(max(width-1, 1))
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}
