package theme

import "github.com/thenoetrevino/projboard/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight       string
	Subtle          string
	Normal          string
	Create          string
	Delete          string
	Background      string
	SelectedBorder  string
	SelectedBg      string
	DroppableBorder string
	DraggingBorder  string
	CardBg          string
	InfoFg          string
	InfoBg          string
	ErrorFg         string
	ErrorBg         string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Delete = colors.Delete
	Background = colors.Background
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	DroppableBorder = colors.DroppableBorder
	DraggingBorder = colors.DraggingBorder
	CardBg = colors.CardBackground
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
