package state

import (
	"testing"
)

// TestSetSelectedList_OutOfRange ensures focusing a list that does not exist is ignored.
func TestSetSelectedList_OutOfRange(t *testing.T) {
	s := NewUIState(2)

	s.SetSelectedList(5)
	if s.SelectedList() != 0 {
		t.Errorf("SelectedList() after out of range = %d, want 0", s.SelectedList())
	}

	s.SetSelectedList(-1)
	if s.SelectedList() != 0 {
		t.Errorf("SelectedList() after negative = %d, want 0", s.SelectedList())
	}
}

// TestCursorsArePerList ensures each list keeps its own cursor.
func TestCursorsArePerList(t *testing.T) {
	s := NewUIState(2)
	s.SetSelectedItem(3)
	s.SetSelectedList(1)

	if s.SelectedItem() != 0 {
		t.Errorf("SelectedItem() in second list = %d, want 0", s.SelectedItem())
	}
	if s.ItemCursor(0) != 3 {
		t.Errorf("ItemCursor(0) = %d, want 3", s.ItemCursor(0))
	}
}

// TestSetItemCursor_NeverNegative ensures the cursor cannot go below zero.
func TestSetItemCursor_NeverNegative(t *testing.T) {
	s := NewUIState(1)
	s.SetItemCursor(0, -4)

	if s.ItemCursor(0) != 0 {
		t.Errorf("ItemCursor(0) = %d, want 0", s.ItemCursor(0))
	}
}

// TestClampCursors ensures cursors stay inside lists that shrank.
func TestClampCursors(t *testing.T) {
	s := NewUIState(2)
	s.SetItemCursor(0, 4)
	s.SetItemCursor(1, 1)
	s.EnsureItemVisible(0, 1)

	s.ClampCursors(2, 0)

	if s.ItemCursor(0) != 1 {
		t.Errorf("ItemCursor(0) = %d, want 1", s.ItemCursor(0))
	}
	if s.ItemCursor(1) != 0 {
		t.Errorf("ItemCursor(1) = %d, want 0 for an empty list", s.ItemCursor(1))
	}
	if s.ScrollOffset(0) > s.ItemCursor(0) {
		t.Errorf("ScrollOffset(0) = %d, should not pass the cursor", s.ScrollOffset(0))
	}
}

// TestEnsureItemVisible scrolls both ways.
func TestEnsureItemVisible(t *testing.T) {
	s := NewUIState(1)

	s.SetItemCursor(0, 5)
	s.EnsureItemVisible(0, 3)
	if s.ScrollOffset(0) != 3 {
		t.Errorf("ScrollOffset after scrolling down = %d, want 3", s.ScrollOffset(0))
	}

	s.SetItemCursor(0, 1)
	s.EnsureItemVisible(0, 3)
	if s.ScrollOffset(0) != 1 {
		t.Errorf("ScrollOffset after scrolling up = %d, want 1", s.ScrollOffset(0))
	}
}

// TestContentHeight_Minimum ensures tiny terminals still get a usable list height.
func TestContentHeight_Minimum(t *testing.T) {
	s := NewUIState(2)
	s.SetHeight(3)

	if got := s.ContentHeight(); got != 5 {
		t.Errorf("ContentHeight() = %d, want 5", got)
	}
}

// TestListWidth splits the screen between lists.
func TestListWidth(t *testing.T) {
	s := NewUIState(2)
	s.SetWidth(102)

	if got := s.ListWidth(); got != 50 {
		t.Errorf("ListWidth() = %d, want 50", got)
	}

	s.SetWidth(10)
	if got := s.ListWidth(); got != 24 {
		t.Errorf("ListWidth() on a narrow terminal = %d, want 24", got)
	}
}

// TestAlert ensures the alert message follows the mode.
func TestAlert(t *testing.T) {
	s := NewUIState(2)

	s.ShowAlert("bad input")
	if s.Mode() != AlertMode {
		t.Errorf("Mode() = %v, want %v", s.Mode(), AlertMode)
	}
	if s.AlertMessage() != "bad input" {
		t.Errorf("AlertMessage() = %q", s.AlertMessage())
	}

	s.DismissAlert(ProjectFormMode)
	if s.Mode() != ProjectFormMode {
		t.Errorf("Mode() after dismiss = %v, want %v", s.Mode(), ProjectFormMode)
	}
	if s.AlertMessage() != "" {
		t.Errorf("AlertMessage() after dismiss = %q, want empty", s.AlertMessage())
	}
}

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	if _, ok := s.Latest(); ok {
		t.Fatal("Latest() on empty state should report false")
	}

	s.Add(LevelInfo, "first")
	s.Add(LevelError, "second")

	n, ok := s.Latest()
	if !ok || n.Message != "second" || n.Level != LevelError {
		t.Errorf("Latest() = %+v, %v", n, ok)
	}
	if len(s.All()) != 2 {
		t.Errorf("All() has %d entries, want 2", len(s.All()))
	}

	s.Clear()
	if s.HasAny() {
		t.Error("HasAny() after Clear() = true")
	}
}
