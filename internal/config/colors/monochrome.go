package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Background
		Background: "#121212",

		// Semantic
		Create: "#FFFFFF",
		Delete: "#FFFFFF",

		// UI elements
		ListBorder:      "#FFFFFF",
		DroppableBorder: "#D0D0D0",
		CardBorder:      "#585858",
		CardBackground:  "#1C1C1C",
		SelectedBorder:  "#FFFFFF",
		SelectedBg:      "#3A3A3A",
		DraggingBorder:  "#D0D0D0",

		// Text
		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:  "#FFFFFF",
		InfoBg:  "#1C1C1C",
		ErrorFg: "#FFFFFF",
		ErrorBg: "#585858",

		// Status bar
		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#FFFFFF",
	}
}
