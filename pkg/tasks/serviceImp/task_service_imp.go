package serviceImp

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"sprout/entities"
	gardenrepo "sprout/pkg/garden/repository"
	repo "sprout/pkg/tasks/repository"
	"sprout/pkg/tasks/service"
	"sprout/pkg/tasks/types"
)

var ErrNotFound = errors.New("task not found")

type taskSvc struct {
	tasks  repo.TaskRepository
	garden gardenrepo.GardenRepository
}

func NewTaskService(tasks repo.TaskRepository, garden gardenrepo.GardenRepository) service.TaskService {
	return &taskSvc{tasks: tasks, garden: garden}
}

func newID() string { return fmt.Sprintf("%d", time.Now().UnixNano()) }

func (s *taskSvc) Create(uid string, in service.NewTask) (*entities.CustomTask, error) {
	cat := in.Category
	if cat == "" {
		cat = entities.CategoryOther
	}
	t := entities.CustomTask{
		ID:        newID(),
		Activity:  in.Activity,
		Details:   in.Details,
		DueDate:   entities.NewFlexTime(in.DueDate),
		Category:  cat,
		Priority:  string(entities.NormalizePriority(in.Priority)),
		ProjectID: in.ProjectID,
		CreatedAt: entities.NewFlexTime(time.Now()),
	}
	list, err := s.tasks.List(uid)
	if err != nil {
		return nil, err
	}
	list = append(list, t)
	if err := s.tasks.SaveAll(uid, list); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *taskSvc) Update(uid, id string, patch service.TaskPatch) (*entities.CustomTask, error) {
	list, err := s.tasks.List(uid)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		t := &list[i]
		if patch.Activity != nil {
			t.Activity = *patch.Activity
		}
		if patch.Details != nil {
			t.Details = *patch.Details
		}
		if patch.DueDate != nil {
			t.DueDate = entities.NewFlexTime(*patch.DueDate)
		}
		if patch.Category != nil {
			t.Category = *patch.Category
		}
		if patch.Priority != nil {
			t.Priority = string(entities.NormalizePriority(*patch.Priority))
		}
		if patch.ProjectID != nil {
			t.ProjectID = *patch.ProjectID
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		if err := s.tasks.SaveAll(uid, list); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, ErrNotFound
}

func (s *taskSvc) Delete(uid, id string) error {
	list, err := s.tasks.List(uid)
	if err != nil {
		return err
	}
	kept := list[:0]
	found := false
	for _, t := range list {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return ErrNotFound
	}
	return s.tasks.SaveAll(uid, kept)
}

func (s *taskSvc) LoadAll(uid string) ([]types.TaskWithSource, error) {
	out := []types.TaskWithSource{}

	plants, err := s.garden.List(uid)
	if err != nil {
		return nil, err
	}
	for _, p := range plants {
		if p.IsHarvested {
			continue
		}
		planted := p.DatePlanted
		for i, st := range p.Schedule {
			out = append(out, types.TaskWithSource{
				Source:      types.SourceSystem,
				Activity:    st.Activity,
				Details:     st.Details,
				Completed:   st.Completed,
				DueDate:     st.DueDate,
				Category:    st.Category,
				Priority:    entities.PriorityImportant,
				PlantID:     p.ID,
				PlantName:   p.Name,
				DatePlanted: &planted,
				TaskIndex:   i,
			})
		}
	}

	customs, err := s.tasks.List(uid)
	if err != nil {
		return nil, err
	}
	// Self-healing migration: rewrite the collection when any stored
	// priority is still a legacy value.
	migrated := false
	for i := range customs {
		if norm := string(entities.NormalizePriority(customs[i].Priority)); norm != customs[i].Priority {
			customs[i].Priority = norm
			migrated = true
		}
	}
	if migrated {
		if err := s.tasks.SaveAll(uid, customs); err != nil {
			log.Printf("[tasks] priority migration save failed for %s: %v", uid, err)
		}
	}
	for _, t := range customs {
		out = append(out, types.TaskWithSource{
			Source:    types.SourceCustom,
			Activity:  t.Activity,
			Details:   t.Details,
			Completed: t.Completed,
			DueDate:   t.DueDate,
			Category:  t.Category,
			Priority:  entities.Priority(t.Priority),
			ID:        t.ID,
			ProjectID: t.ProjectID,
		})
	}

	// Canonical order: due date ascending, source-insertion order for ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Time.Before(out[j].DueDate.Time)
	})
	return out, nil
}

func (s *taskSvc) ToggleComplete(uid string, ref types.ToggleRef) error {
	switch ref.Source {
	case types.SourceCustom:
		list, err := s.tasks.List(uid)
		if err != nil {
			return err
		}
		for i := range list {
			if list[i].ID == ref.ID {
				list[i].Completed = !list[i].Completed
				return s.tasks.SaveAll(uid, list)
			}
		}
		return nil // task gone; nothing to do
	case types.SourceSystem:
		if ref.DatePlanted == nil {
			return nil
		}
		plants, err := s.garden.List(uid)
		if err != nil {
			return err
		}
		for i := range plants {
			p := &plants[i]
			if p.Name != ref.PlantName || !p.DatePlanted.Time.Equal(ref.DatePlanted.Time) {
				continue
			}
			if ref.TaskIndex < 0 || ref.TaskIndex >= len(p.Schedule) {
				return nil
			}
			p.Schedule[ref.TaskIndex].Completed = !p.Schedule[ref.TaskIndex].Completed
			return s.garden.SaveAll(uid, plants)
		}
		return nil // plant gone; nothing to do
	}
	return nil
}
