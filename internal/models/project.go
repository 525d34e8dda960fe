package models

import "strconv"

// Project represents a unit of work tracked on the board
// Projects are created by the project state container and never deleted
type Project struct {
	ID          string        // Unique identifier, generated on creation
	Title       string        // Short display name
	Description string        // Free-form description (markdown is rendered on cards)
	People      int           // Estimated number of people assigned
	Status      ProjectStatus // Which list the project belongs to
}

// PeopleLabel returns the assignment line shown on a project card
func (p Project) PeopleLabel() string {
	if p.People == 1 {
		return "1 person assigned"
	}
	return strconv.Itoa(p.People) + " persons assigned"
}
