package repository

import "sprout/entities"

type JournalRepository interface {
	Create(o *entities.Observation) error
	Recent(userID, plantID string, days int) ([]entities.Observation, error)
}
