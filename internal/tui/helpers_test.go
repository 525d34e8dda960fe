package tui

import (
	"context"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/projboard/internal/app"
	"github.com/thenoetrevino/projboard/internal/config"
)

// sequentialIDs returns a generator producing p1, p2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}
}

// setupTestModel creates a sized model over a fresh app with predictable ids
func setupTestModel(t *testing.T) Model {
	t.Helper()
	a := app.New(config.Default(), app.WithIDGenerator(sequentialIDs()))
	m := InitialModel(context.Background(), a)
	return updateModel(m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

// updateModel updates the model with a message and returns the updated model
func updateModel(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// press sends each key in order
func press(m Model, keys ...tea.Key) Model {
	for _, k := range keys {
		m = updateModel(m, tea.KeyPressMsg(k))
	}
	return m
}

func runeKey(r rune) tea.Key {
	return tea.Key{Code: r, Text: string(r)}
}

var (
	keySpace = tea.Key{Code: tea.KeySpace}
	keyEnter = tea.Key{Code: tea.KeyEnter}
	keyEsc   = tea.Key{Code: tea.KeyEscape}
	keyRight = tea.Key{Code: tea.KeyRight}
	keyDown  = tea.Key{Code: tea.KeyDown}
)
