package config

import "github.com/thenoetrevino/projboard/internal/validation"

// FormRules holds the validation rules for each project form field
type FormRules struct {
	Title       *validation.Rules `yaml:"title"`
	Description *validation.Rules `yaml:"description"`
	People      *validation.Rules `yaml:"people"`
}

// DefaultFormRules returns the rules the project form uses out of the box:
// a title, a description of at least 5 characters, and 1 to 5 people
func DefaultFormRules() FormRules {
	return FormRules{
		Title: &validation.Rules{
			Required: true,
		},
		Description: &validation.Rules{
			Required:  true,
			MinLength: validation.Int(5),
		},
		People: &validation.Rules{
			Required: true,
			Min:      validation.Int(1),
			Max:      validation.Int(5),
		},
	}
}

// applyDefaults fills in any field whose rules were left out entirely.
// A field present in the file replaces the default rule set as a whole.
func (r *FormRules) applyDefaults() {
	defaults := DefaultFormRules()

	if r.Title == nil {
		r.Title = defaults.Title
	}
	if r.Description == nil {
		r.Description = defaults.Description
	}
	if r.People == nil {
		r.People = defaults.People
	}
}

// WithDefaults returns a copy of r with missing fields filled from DefaultFormRules
func (r FormRules) WithDefaults() FormRules {
	r.applyDefaults()
	return r
}
