package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Projects
	AddProject string `yaml:"add_project"`

	// Drag and drop
	PickUp     string `yaml:"pick_up"`
	Drop       string `yaml:"drop"`
	CancelDrag string `yaml:"cancel_drag"`

	// Navigation
	PrevList string `yaml:"prev_list"`
	NextList string `yaml:"next_list"`
	PrevItem string `yaml:"prev_item"`
	NextItem string `yaml:"next_item"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Projects
		AddProject: "a",

		// Drag and drop
		PickUp:     "space",
		Drop:       "enter",
		CancelDrag: "esc",

		// Navigation
		PrevList: "h",
		NextList: "l",
		PrevItem: "k",
		NextItem: "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddProject == "" {
		k.AddProject = defaults.AddProject
	}
	if k.PickUp == "" {
		k.PickUp = defaults.PickUp
	}
	if k.Drop == "" {
		k.Drop = defaults.Drop
	}
	if k.CancelDrag == "" {
		k.CancelDrag = defaults.CancelDrag
	}
	if k.PrevList == "" {
		k.PrevList = defaults.PrevList
	}
	if k.NextList == "" {
		k.NextList = defaults.NextList
	}
	if k.PrevItem == "" {
		k.PrevItem = defaults.PrevItem
	}
	if k.NextItem == "" {
		k.NextItem = defaults.NextItem
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
