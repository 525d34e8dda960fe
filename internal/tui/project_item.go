package tui

import (
	"log/slog"

	"github.com/thenoetrevino/projboard/internal/dragdrop"
	"github.com/thenoetrevino/projboard/internal/models"
	"github.com/thenoetrevino/projboard/internal/tui/components"
)

// ProjectItem is the card for one project. It is the drag source of the board.
type ProjectItem struct {
	project models.Project
	logger  *slog.Logger
}

var _ dragdrop.Draggable = (*ProjectItem)(nil)

// NewProjectItem creates a card for project
func NewProjectItem(project models.Project, logger *slog.Logger) *ProjectItem {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectItem{project: project, logger: logger}
}

// Project returns the project shown by this card
func (i *ProjectItem) Project() models.Project {
	return i.project
}

// DragStart puts the project id into the payload as text/plain and allows a move.
func (i *ProjectItem) DragStart(dt *dragdrop.DataTransfer) {
	dt.SetData(dragdrop.MIMETextPlain, i.project.ID)
	dt.EffectAllowed = dragdrop.EffectMove
	i.logger.Debug("drag started", "project_id", i.project.ID)
}

// DragEnd is called once the gesture finishes, dropped or not.
func (i *ProjectItem) DragEnd(dt *dragdrop.DataTransfer) {
	i.logger.Debug("drag ended", "project_id", i.project.ID, "types", dt.Types())
}

// View renders the card
func (i *ProjectItem) View(width int, selected, dragging bool) string {
	return components.RenderCard(components.CardProps{
		Project:  i.project,
		Width:    width,
		Selected: selected,
		Dragging: dragging,
	})
}
