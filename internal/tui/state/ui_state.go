package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode      Mode = iota // Default navigation and drag mode
	ProjectFormMode             // Creating a new project with huh
	AlertMode                   // Blocking alert, must be dismissed
	HelpMode                    // Displaying help screen
)

// String returns a readable mode name, used in logs and test failures
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case ProjectFormMode:
		return "project-form"
	case AlertMode:
		return "alert"
	case HelpMode:
		return "help"
	default:
		return "unknown"
	}
}

// UIState manages the user interface state.
// This includes navigation (list/item selection), per-list scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedList is the index of the focused project list
	selectedList int

	// selectedItems holds the cursor position within each list, by list index
	selectedItems []int

	// scrollOffsets holds the index of the first visible card within each list
	scrollOffsets []int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// alertMessage is the text shown while in AlertMode
	alertMessage string
}

// NewUIState creates a new UIState for the given number of lists.
func NewUIState(listCount int) *UIState {
	return &UIState{
		selectedList:  0,
		selectedItems: make([]int, listCount),
		scrollOffsets: make([]int, listCount),
		mode:          NormalMode,
	}
}

// ListCount returns the number of lists tracked
func (s *UIState) ListCount() int {
	return len(s.selectedItems)
}

// SelectedList returns the index of the focused list.
func (s *UIState) SelectedList() int {
	return s.selectedList
}

// SetSelectedList focuses a list. Out of range indexes are ignored.
func (s *UIState) SetSelectedList(index int) {
	if index < 0 || index >= len(s.selectedItems) {
		return
	}
	s.selectedList = index
}

// SelectedItem returns the cursor position within the focused list.
func (s *UIState) SelectedItem() int {
	return s.ItemCursor(s.selectedList)
}

// SetSelectedItem moves the cursor within the focused list.
func (s *UIState) SetSelectedItem(index int) {
	s.SetItemCursor(s.selectedList, index)
}

// ItemCursor returns the cursor position within list
func (s *UIState) ItemCursor(list int) int {
	if list < 0 || list >= len(s.selectedItems) {
		return 0
	}
	return s.selectedItems[list]
}

// SetItemCursor moves the cursor within list, never below zero.
func (s *UIState) SetItemCursor(list, index int) {
	if list < 0 || list >= len(s.selectedItems) {
		return
	}
	s.selectedItems[list] = max(0, index)
}

// ClampCursors keeps every cursor inside its list after the lists change.
// lens holds the current item count of each list, by list index.
func (s *UIState) ClampCursors(lens ...int) {
	for i, n := range lens {
		if i >= len(s.selectedItems) {
			break
		}
		if s.selectedItems[i] >= n {
			s.selectedItems[i] = max(0, n-1)
		}
		if s.scrollOffsets[i] > s.selectedItems[i] {
			s.scrollOffsets[i] = s.selectedItems[i]
		}
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the lists.
// This is terminal height minus header and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // title + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// ListWidth returns the outer width of one list when all lists share the screen.
func (s *UIState) ListWidth() int {
	const spacing = 2
	const minWidth = 24
	count := max(1, len(s.selectedItems))
	return max((s.width-spacing*(count-1))/count, minWidth)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// AlertMessage returns the text of the active alert.
func (s *UIState) AlertMessage() string {
	return s.alertMessage
}

// ShowAlert switches to AlertMode with the given message.
func (s *UIState) ShowAlert(message string) {
	s.alertMessage = message
	s.mode = AlertMode
}

// DismissAlert clears the alert and switches to next.
func (s *UIState) DismissAlert(next Mode) {
	s.alertMessage = ""
	s.mode = next
}

// ScrollOffset returns the index of the first visible card in list.
func (s *UIState) ScrollOffset(list int) int {
	if list < 0 || list >= len(s.scrollOffsets) {
		return 0
	}
	return s.scrollOffsets[list]
}

// EnsureItemVisible adjusts the scroll offset of list so its cursor is visible.
// This should be called after item navigation within a list.
//
// Parameters:
//   - list: the list containing the cursor
//   - visibleCount: number of cards that can be displayed at once
func (s *UIState) EnsureItemVisible(list int, visibleCount int) {
	if list < 0 || list >= len(s.scrollOffsets) {
		return
	}
	visibleCount = max(1, visibleCount)
	cursor := s.selectedItems[list]
	offset := s.scrollOffsets[list]

	// If selection is above visible area, scroll up
	if cursor < offset {
		s.scrollOffsets[list] = cursor
	}

	// If selection is below visible area, scroll down
	if cursor >= offset+visibleCount {
		s.scrollOffsets[list] = cursor - visibleCount + 1
	}
}
