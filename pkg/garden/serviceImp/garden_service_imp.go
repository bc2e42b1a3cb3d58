package serviceImp

import (
	"errors"
	"fmt"
	"time"

	"sprout/entities"
	repo "sprout/pkg/garden/repository"
	"sprout/pkg/garden/service"
	"sprout/pkg/notify"
	"sprout/pkg/schedule"
)

var ErrNotFound = errors.New("plant not found")

type gardenSvc struct {
	r        repo.GardenRepository
	gen      *schedule.Generator
	notifier notify.Notifier
}

func NewGardenService(r repo.GardenRepository, gen *schedule.Generator, n notify.Notifier) service.GardenService {
	return &gardenSvc{r: r, gen: gen, notifier: n}
}

func newID() string { return fmt.Sprintf("%d", time.Now().UnixNano()) }

func (s *gardenSvc) List(uid string) ([]entities.GardenPlant, error) {
	return s.r.List(uid)
}

func (s *gardenSvc) Get(uid, id string) (*entities.GardenPlant, error) {
	plants, err := s.r.List(uid)
	if err != nil {
		return nil, err
	}
	for i := range plants {
		if plants[i].ID == id {
			return &plants[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *gardenSvc) Add(uid string, in service.NewPlant) (*entities.GardenPlant, error) {
	res := s.gen.Generate(in.Name, in.DatePlanted, in.GrowthForm, in.Climate)
	p := entities.GardenPlant{
		ID:                   newID(),
		Name:                 in.Name,
		DatePlanted:          entities.NewFlexTime(in.DatePlanted),
		GrowthForm:           in.GrowthForm,
		Climate:              in.Climate,
		Location:             in.Location,
		Notes:                in.Notes,
		EstimatedHarvestDate: entities.NewFlexTime(res.EstimatedHarvestDate),
		Schedule:             res.Schedule,
	}
	plants, err := s.r.List(uid)
	if err != nil {
		return nil, err
	}
	plants = append(plants, p)
	if err := s.r.SaveAll(uid, plants); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *gardenSvc) Update(uid, id string, patch service.PlantPatch) (*entities.GardenPlant, error) {
	plants, err := s.r.List(uid)
	if err != nil {
		return nil, err
	}
	for i := range plants {
		if plants[i].ID != id {
			continue
		}
		p := &plants[i]
		if patch.Location != nil {
			p.Location = *patch.Location
		}
		if patch.Notes != nil {
			p.Notes = *patch.Notes
		}
		if patch.DatePlanted != nil {
			p.DatePlanted = entities.NewFlexTime(*patch.DatePlanted)
			// Full regeneration: the prior schedule (and any completion
			// state on it) is replaced wholesale.
			res := s.gen.Generate(p.Name, *patch.DatePlanted, p.GrowthForm, p.Climate)
			p.Schedule = res.Schedule
			p.EstimatedHarvestDate = entities.NewFlexTime(res.EstimatedHarvestDate)
		}
		if err := s.r.SaveAll(uid, plants); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, ErrNotFound
}

func (s *gardenSvc) Remove(uid, id string) error {
	plants, err := s.r.List(uid)
	if err != nil {
		return err
	}
	kept := plants[:0]
	found := false
	for _, p := range plants {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrNotFound
	}
	return s.r.SaveAll(uid, kept)
}

func (s *gardenSvc) Replant(uid, id string, datePlanted time.Time) (*entities.GardenPlant, error) {
	old, err := s.Get(uid, id)
	if err != nil {
		return nil, err
	}
	return s.Add(uid, service.NewPlant{
		Name:        old.Name,
		DatePlanted: datePlanted,
		GrowthForm:  old.GrowthForm,
		Climate:     old.Climate,
		Location:    old.Location,
		Notes:       old.Notes,
	})
}

func (s *gardenSvc) ToggleScheduleTask(uid, id string, index int) (*entities.GardenPlant, error) {
	plants, err := s.r.List(uid)
	if err != nil {
		return nil, err
	}
	for i := range plants {
		if plants[i].ID != id {
			continue
		}
		p := &plants[i]
		if index < 0 || index >= len(p.Schedule) {
			return nil, ErrNotFound
		}
		p.Schedule[index].Completed = !p.Schedule[index].Completed
		if err := s.r.SaveAll(uid, plants); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, ErrNotFound
}

func (s *gardenSvc) SweepHarvested(uid string, now time.Time) (int, error) {
	plants, err := s.r.List(uid)
	if err != nil {
		return 0, err
	}
	changed := 0
	for i := range plants {
		p := &plants[i]
		if p.IsHarvested || now.Before(p.EstimatedHarvestDate.Time) {
			continue
		}
		p.IsHarvested = true
		harvested := entities.NewFlexTime(now)
		p.HarvestedDate = &harvested
		changed++
		if s.notifier != nil {
			s.notifier.Notify("Harvest time", fmt.Sprintf("%s should be ready to harvest", p.Name))
		}
	}
	if changed == 0 {
		return 0, nil
	}
	return changed, s.r.SaveAll(uid, plants)
}
