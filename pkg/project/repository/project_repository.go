package repository

import "sprout/entities"

type ProjectRepository interface {
	List(uid string) ([]entities.Project, error)
	SaveAll(uid string, projects []entities.Project) error
}
