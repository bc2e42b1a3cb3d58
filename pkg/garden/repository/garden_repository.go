package repository

import "sprout/entities"

// GardenRepository persists the gardenPlants collection as one JSON array in
// the key-value store. There is no partial update: every mutation re-reads
// and rewrites the whole collection.
type GardenRepository interface {
	List(uid string) ([]entities.GardenPlant, error)
	SaveAll(uid string, plants []entities.GardenPlant) error
}
