// Package state holds the authoritative, in-memory sequence of projects and
// broadcasts every change to the registered listeners.
package state

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/thenoetrevino/projboard/internal/models"
)

// Listener receives the full, ordered project sequence after every mutation.
// Listeners filter the sequence themselves.
type Listener func(projects []models.Project)

// ProjectState owns the ordered project sequence.
// It is not safe for concurrent use; every call is expected to come from the
// Bubble Tea update loop.
type ProjectState struct {
	projects  []models.Project
	listeners []Listener

	newID  func() string
	logger *slog.Logger
}

// Option is a functional option for configuring a ProjectState
type Option func(*ProjectState)

// WithIDGenerator replaces the default UUID generator.
// The generator must return a distinct value on every call.
func WithIDGenerator(fn func() string) Option {
	return func(s *ProjectState) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithLogger sets the logger used for mutation traces
func WithLogger(logger *slog.Logger) Option {
	return func(s *ProjectState) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewProjectState creates an empty container
func NewProjectState(opts ...Option) *ProjectState {
	s := &ProjectState{
		projects: []models.Project{},
		newID:    uuid.NewString,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddListener registers fn. It is not invoked until the next mutation.
func (s *ProjectState) AddListener(fn Listener) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// AddProject appends a new active project and notifies every listener.
// Input is not validated here; callers validate before adding.
func (s *ProjectState) AddProject(title, description string, people int) models.Project {
	project := models.Project{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      models.StatusActive,
	}
	s.projects = append(s.projects, project)

	s.logger.Debug("project added",
		"project_id", project.ID,
		"title", project.Title,
		"people", project.People)

	s.notify()
	return project
}

// MoveProject sets the status of the project with the given id.
// Unknown ids and unchanged statuses are silent no-ops; the result reports
// whether anything changed.
func (s *ProjectState) MoveProject(id string, status models.ProjectStatus) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("move ignored, project not found", "project_id", id)
		return false
	}
	if s.projects[idx].Status == status {
		return false
	}

	from := s.projects[idx].Status
	s.projects[idx].Status = status

	s.logger.Debug("project moved",
		"project_id", id,
		"from", from.String(),
		"to", status.String())

	s.notify()
	return true
}

// Projects returns a copy of the current sequence
func (s *ProjectState) Projects() []models.Project {
	return slices.Clone(s.projects)
}

// Project looks up a single project by id
func (s *ProjectState) Project(id string) (models.Project, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Project{}, false
	}
	return s.projects[idx], true
}

// Len returns the number of projects
func (s *ProjectState) Len() int {
	return len(s.projects)
}

func (s *ProjectState) indexOf(id string) int {
	return slices.IndexFunc(s.projects, func(p models.Project) bool {
		return p.ID == id
	})
}

// notify runs every listener, in registration order, each with its own copy
func (s *ProjectState) notify() {
	for _, fn := range s.listeners {
		fn(slices.Clone(s.projects))
	}
}
