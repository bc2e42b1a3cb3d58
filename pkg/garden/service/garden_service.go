package service

import (
	"time"

	"sprout/entities"
)

// NewPlant is the user input for a planting; schedule and harvest date are
// derived at creation.
type NewPlant struct {
	Name        string
	DatePlanted time.Time
	GrowthForm  entities.GrowthForm
	Climate     entities.Climate
	Location    string
	Notes       string
}

// PlantPatch applies only non-nil fields. Changing the planting date
// regenerates the whole schedule; prior completion state is lost by design.
type PlantPatch struct {
	DatePlanted *time.Time
	Location    *string
	Notes       *string
}

type GardenService interface {
	List(uid string) ([]entities.GardenPlant, error)
	Get(uid, id string) (*entities.GardenPlant, error)
	Add(uid string, in NewPlant) (*entities.GardenPlant, error)
	Update(uid, id string, patch PlantPatch) (*entities.GardenPlant, error)
	Remove(uid, id string) error
	// Replant creates a fresh planting from a harvested one; the old record
	// is never resurrected.
	Replant(uid, id string, datePlanted time.Time) (*entities.GardenPlant, error)
	ToggleScheduleTask(uid, id string, index int) (*entities.GardenPlant, error)
	// SweepHarvested flips IsHarvested on every plant whose estimated
	// harvest date has passed, returning how many changed.
	SweepHarvested(uid string, now time.Time) (int, error)
}
