package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/projboard/internal/config"
)

// CreateProjectForm creates a huh form for adding a new project.
// Values are bound to the given pointers and validated by the caller on completion,
// so each field only shows its configured limits as a hint.
func CreateProjectForm(
	title *string,
	description *string,
	people *string,
	rules config.FormRules,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Description(rules.Title.Describe()).
			Placeholder("Enter project title...").
			Value(title),

		huh.NewText().
			Key("description").
			Title("Description").
			Description(rules.Description.Describe()).
			Placeholder("Enter project description...").
			CharLimit(500).
			Lines(3).
			Value(description),

		huh.NewInput().
			Key("people").
			Title("People").
			Description(rules.People.Describe()).
			Placeholder("How many people work on it?").
			CharLimit(4).
			Value(people),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter())
}
