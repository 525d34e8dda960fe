package tui

import (
	"log/slog"
	"strings"

	"github.com/thenoetrevino/projboard/internal/dragdrop"
	"github.com/thenoetrevino/projboard/internal/models"
	projectstate "github.com/thenoetrevino/projboard/internal/state"
	"github.com/thenoetrevino/projboard/internal/tui/components"
)

// ProjectList shows the projects of one status and accepts drops that move
// a project into that status.
type ProjectList struct {
	status models.ProjectStatus
	state  *projectstate.ProjectState
	logger *slog.Logger

	items     []*ProjectItem
	droppable bool
}

var _ dragdrop.DragTarget = (*ProjectList)(nil)

// NewProjectList creates a list for status and subscribes it to ps.
// The list shows whatever ps already holds and re-renders on every change.
func NewProjectList(status models.ProjectStatus, ps *projectstate.ProjectState, logger *slog.Logger) *ProjectList {
	if logger == nil {
		logger = slog.Default()
	}
	l := &ProjectList{
		status: status,
		state:  ps,
		logger: logger,
	}
	l.assign(ps.Projects())
	ps.AddListener(func(projects []models.Project) {
		l.assign(projects)
	})
	return l
}

// assign keeps the projects matching the list status, in state order
func (l *ProjectList) assign(projects []models.Project) {
	items := make([]*ProjectItem, 0, len(projects))
	for _, p := range projects {
		if p.Status == l.status {
			items = append(items, NewProjectItem(p, l.logger))
		}
	}
	l.items = items
}

// Status returns the status this list shows
func (l *ProjectList) Status() models.ProjectStatus {
	return l.status
}

// Title returns the list header, e.g. "ACTIVE PROJECTS"
func (l *ProjectList) Title() string {
	return strings.ToUpper(l.status.String()) + " PROJECTS"
}

// Items returns the cards of the list
func (l *ProjectList) Items() []*ProjectItem {
	return l.items
}

// Len returns the number of projects in the list
func (l *ProjectList) Len() int {
	return len(l.items)
}

// Item returns the card at index, or nil when out of range
func (l *ProjectList) Item(index int) *ProjectItem {
	if index < 0 || index >= len(l.items) {
		return nil
	}
	return l.items[index]
}

// IndexOf returns the position of the project with id, or -1
func (l *ProjectList) IndexOf(id string) int {
	for i, item := range l.items {
		if item.project.ID == id {
			return i
		}
	}
	return -1
}

// Droppable reports whether a drag is hovering over the list and was accepted
func (l *ProjectList) Droppable() bool {
	return l.droppable
}

// DragOver accepts only plain text payloads and highlights the list when it does.
func (l *ProjectList) DragOver(dt *dragdrop.DataTransfer) bool {
	if !dt.HasType(dragdrop.MIMETextPlain) {
		return false
	}
	l.droppable = true
	return true
}

// DragLeave removes the highlight
func (l *ProjectList) DragLeave(_ *dragdrop.DataTransfer) {
	l.droppable = false
}

// Drop moves the project named by the payload into this list's status.
func (l *ProjectList) Drop(dt *dragdrop.DataTransfer) {
	l.droppable = false
	id := dt.GetData(dragdrop.MIMETextPlain)
	if !l.state.MoveProject(id, l.status) {
		l.logger.Debug("drop ignored", "project_id", id, "status", l.status)
	}
}

// ListViewProps holds what the list needs from the model to render itself
type ListViewProps struct {
	Width        int
	Height       int
	Focused      bool
	Cursor       int
	ScrollOffset int
	// DraggingID is the id of the project being dragged, if any
	DraggingID string
}

// View renders the list with its cards
func (l *ProjectList) View(props ListViewProps) string {
	cardWidth := components.CardWidth(props.Width)
	cards := make([]string, len(l.items))
	for i, item := range l.items {
		selected := props.Focused && i == props.Cursor
		dragging := props.DraggingID != "" && item.project.ID == props.DraggingID
		cards[i] = item.View(cardWidth, selected, dragging)
	}

	return components.RenderList(components.ListProps{
		Title:        l.Title(),
		Cards:        cards,
		Focused:      props.Focused,
		Droppable:    l.droppable,
		Width:        props.Width,
		Height:       props.Height,
		ScrollOffset: props.ScrollOffset,
	})
}
