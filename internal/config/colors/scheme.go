package colors

import "errors"

// ErrUnknownPreset is returned when a preset name is not one of Presets()
var ErrUnknownPreset = errors.New("unknown color preset")

// Presets returns the names GetPreset knows
func Presets() []string {
	return []string{"default", "monochrome"}
}

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Root background
	Background string `yaml:"background"`

	// Semantic colors
	Create string `yaml:"create"` // Green - project form
	Delete string `yaml:"delete"` // Red - alerts

	// UI element colors
	ListBorder      string `yaml:"list_border"`
	DroppableBorder string `yaml:"droppable_border"` // List under an in-flight drag
	CardBorder      string `yaml:"card_border"`
	CardBackground  string `yaml:"card_background"`
	SelectedBorder  string `yaml:"selected_border"`
	SelectedBg      string `yaml:"selected_bg"`
	DraggingBorder  string `yaml:"dragging_border"` // Card being dragged

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// fields returns pointers to every color field, paired by position
// with the same field of other
func (c *ColorScheme) fields(other *ColorScheme) [][2]*string {
	return [][2]*string{
		{&c.Accent, &other.Accent},
		{&c.Background, &other.Background},
		{&c.Create, &other.Create},
		{&c.Delete, &other.Delete},
		{&c.ListBorder, &other.ListBorder},
		{&c.DroppableBorder, &other.DroppableBorder},
		{&c.CardBorder, &other.CardBorder},
		{&c.CardBackground, &other.CardBackground},
		{&c.SelectedBorder, &other.SelectedBorder},
		{&c.SelectedBg, &other.SelectedBg},
		{&c.DraggingBorder, &other.DraggingBorder},
		{&c.Title, &other.Title},
		{&c.Subtle, &other.Subtle},
		{&c.Normal, &other.Normal},
		{&c.InfoFg, &other.InfoFg},
		{&c.InfoBg, &other.InfoBg},
		{&c.ErrorFg, &other.ErrorFg},
		{&c.ErrorBg, &other.ErrorBg},
		{&c.StatusBarBg, &other.StatusBarBg},
		{&c.StatusBarText, &other.StatusBarText},
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	for _, pair := range c.fields(preset) {
		if *pair[0] == "" {
			*pair[0] = *pair[1]
		}
	}
}

// MergeFrom overrides c with every non-empty value of other.
// A preset change in other is applied first so unset fields follow it.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}

	for _, pair := range c.fields(&other) {
		if *pair[1] != "" {
			*pair[0] = *pair[1]
		}
	}
}
