package service

import "sprout/entities"

type NewProject struct {
	Name        string
	Description string
	Color       string
}

type ProjectService interface {
	List(uid string) ([]entities.Project, error)
	Create(uid string, in NewProject) (*entities.Project, error)
	// Delete removes the project and unassigns (never deletes) every custom
	// task that references it, so no task is left pointing at a project
	// that no longer exists.
	Delete(uid, id string) error
}
