package repositoryImp

import (
	"encoding/json"
	"log"

	"sprout/entities"
	"sprout/pkg/garden/repository"
	storerepo "sprout/pkg/store/repository"
)

const plantsKey = "gardenPlants"

type gardenRepo struct{ store storerepo.Store }

func New(store storerepo.Store) repository.GardenRepository { return &gardenRepo{store} }

func (r *gardenRepo) List(uid string) ([]entities.GardenPlant, error) {
	raw, ok, err := r.store.Get(uid, plantsKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var out []entities.GardenPlant
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		// Malformed payloads read as empty; never propagated.
		log.Printf("[store] bad %s payload for %s: %v", plantsKey, uid, err)
		return nil, nil
	}
	return out, nil
}

func (r *gardenRepo) SaveAll(uid string, plants []entities.GardenPlant) error {
	if plants == nil {
		plants = []entities.GardenPlant{}
	}
	b, err := json.Marshal(plants)
	if err != nil {
		return err
	}
	return r.store.Set(uid, plantsKey, string(b))
}
