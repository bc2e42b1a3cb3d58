package repository

import "sprout/entities"

// TaskRepository persists the customTasks collection as one JSON array in
// the key-value store; mutations rewrite the whole collection.
type TaskRepository interface {
	List(uid string) ([]entities.CustomTask, error)
	SaveAll(uid string, tasks []entities.CustomTask) error
}
