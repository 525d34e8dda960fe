package tui

import (
	"context"
	"log/slog"
	"slices"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/projboard/internal/app"
	"github.com/thenoetrevino/projboard/internal/config"
	"github.com/thenoetrevino/projboard/internal/models"
	"github.com/thenoetrevino/projboard/internal/tui/components"
	"github.com/thenoetrevino/projboard/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx               context.Context
	App               *app.App
	Config            *config.Config
	Input             *ProjectInput
	Lists             []*ProjectList
	UiState           *state.UIState
	NotificationState *state.NotificationState
	Drag              *DragState

	logger *slog.Logger
}

// InitialModel creates the TUI model with one list per project status.
// The lists subscribe to the app's project state before anything else can mutate it.
func InitialModel(ctx context.Context, a *app.App) Model {
	cfg := a.Config
	logger := a.Logger()

	// Initialize styles with color scheme from config
	components.InitStyles(cfg.ColorScheme)

	statuses := models.Statuses()
	lists := make([]*ProjectList, 0, len(statuses))
	for _, status := range statuses {
		lists = append(lists, NewProjectList(status, a.Projects, logger))
	}

	uiState := state.NewUIState(len(lists))
	uiState.SetSelectedList(slices.Index(statuses, cfg.Board.FocusList))

	return Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		Input:             NewProjectInput(a.Projects, cfg.Rules, cfg.ColorScheme),
		Lists:             lists,
		UiState:           uiState,
		NotificationState: state.NewNotificationState(),
		Drag:              NewDragState(),
		logger:            logger,
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// currentList returns the focused list
func (m Model) currentList() *ProjectList {
	return m.Lists[m.UiState.SelectedList()]
}

// currentItem returns the card under the cursor, or nil when the list is empty
func (m Model) currentItem() *ProjectItem {
	return m.currentList().Item(m.UiState.SelectedItem())
}

// listHeight returns the outer height of every list
func (m Model) listHeight() int {
	return m.UiState.ContentHeight()
}

// syncCursors keeps cursors and scroll offsets valid after the lists changed
func (m Model) syncCursors() {
	lens := make([]int, len(m.Lists))
	for i, l := range m.Lists {
		lens[i] = l.Len()
	}
	m.UiState.ClampCursors(lens...)
	visible := components.VisibleCards(m.listHeight())
	for i := range m.Lists {
		m.UiState.EnsureItemVisible(i, visible)
	}
}
