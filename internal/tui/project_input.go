package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/projboard/internal/config"
	"github.com/thenoetrevino/projboard/internal/models"
	projectstate "github.com/thenoetrevino/projboard/internal/state"
	"github.com/thenoetrevino/projboard/internal/tui/huhforms"
	"github.com/thenoetrevino/projboard/internal/validation"
)

// AlertMessage is shown whenever a submitted project fails validation
const AlertMessage = "Invalid input, please try again!"

// ErrInvalidInput is matched by every error returned from ProjectInput.Submit
var ErrInvalidInput = errors.New("invalid input")

// errNotANumber reports a people value that does not parse as an integer
var errNotANumber = errors.New("must be a whole number")

// InputError names the field that failed validation
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrInvalidInput, e.Field, e.Err)
}

// Unwrap exposes both ErrInvalidInput and the underlying validation error
func (e *InputError) Unwrap() []error {
	return []error{ErrInvalidInput, e.Err}
}

// Detail returns a one line, user facing description of the failure
func (e *InputError) Detail() string {
	return e.Field + " " + e.Err.Error()
}

// ProjectInput owns the "new project" form. Values survive a failed submit so
// the form can be reopened with them after the alert is dismissed.
type ProjectInput struct {
	Title       string
	Description string
	People      string

	form   *huh.Form
	rules  config.FormRules
	colors config.ColorScheme
	state  *projectstate.ProjectState
}

// NewProjectInput creates the input for ps using the configured rules.
// Fields without rules fall back to the defaults.
func NewProjectInput(ps *projectstate.ProjectState, rules config.FormRules, colors config.ColorScheme) *ProjectInput {
	return &ProjectInput{
		rules:  rules.WithDefaults(),
		colors: colors,
		state:  ps,
	}
}

// Open builds a fresh form bound to the current values
func (in *ProjectInput) Open() tea.Cmd {
	in.form = huhforms.CreateProjectForm(&in.Title, &in.Description, &in.People, in.rules).
		WithTheme(huhforms.CreateProjboardTheme(in.colors)).
		WithShowHelp(false)
	return in.form.Init()
}

// Form returns the open form, or nil
func (in *ProjectInput) Form() *huh.Form {
	return in.form
}

// IsOpen reports whether the form is showing
func (in *ProjectInput) IsOpen() bool {
	return in.form != nil
}

// Close hides the form, keeping the values typed so far
func (in *ProjectInput) Close() {
	in.form = nil
}

// Clear resets every value
func (in *ProjectInput) Clear() {
	in.Title = ""
	in.Description = ""
	in.People = ""
}

// Update forwards msg to the form and reports whether the user submitted it.
func (in *ProjectInput) Update(msg tea.Msg) (bool, tea.Cmd) {
	if in.form == nil {
		return false, nil
	}

	model, cmd := in.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		in.form = f
	}

	return in.form.State == huh.StateCompleted, cmd
}

// userInput holds the parsed, trimmed form values
type userInput struct {
	title       string
	description string
	people      int
}

// gatherUserInput trims and parses the values and validates each field.
func (in *ProjectInput) gatherUserInput() (userInput, error) {
	values := userInput{
		title:       strings.TrimSpace(in.Title),
		description: strings.TrimSpace(in.Description),
	}

	if err := validation.Validate(values.title, in.rules.Title.Options()...); err != nil {
		return userInput{}, &InputError{Field: "title", Err: err}
	}
	if err := validation.Validate(values.description, in.rules.Description.Options()...); err != nil {
		return userInput{}, &InputError{Field: "description", Err: err}
	}

	people := strings.TrimSpace(in.People)
	if people != "" {
		n, err := strconv.Atoi(people)
		if err != nil {
			return userInput{}, &InputError{Field: "people", Err: errNotANumber}
		}
		values.people = n
	}
	if err := validation.Validate(values.people, in.rules.People.Options()...); err != nil {
		return userInput{}, &InputError{Field: "people", Err: err}
	}

	return values, nil
}

// Submit validates the values and adds the project to the state.
// On failure nothing is added and the values are kept.
func (in *ProjectInput) Submit() (models.Project, error) {
	values, err := in.gatherUserInput()
	if err != nil {
		return models.Project{}, err
	}

	project := in.state.AddProject(values.title, values.description, values.people)
	in.Clear()
	return project, nil
}
