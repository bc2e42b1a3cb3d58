package serviceImp

import (
	"errors"
	"fmt"
	"time"

	"sprout/entities"
	repo "sprout/pkg/project/repository"
	"sprout/pkg/project/service"
	taskrepo "sprout/pkg/tasks/repository"
)

var ErrNotFound = errors.New("project not found")

type projectSvc struct {
	projects repo.ProjectRepository
	tasks    taskrepo.TaskRepository
}

func NewProjectService(projects repo.ProjectRepository, tasks taskrepo.TaskRepository) service.ProjectService {
	return &projectSvc{projects: projects, tasks: tasks}
}

func (s *projectSvc) List(uid string) ([]entities.Project, error) {
	return s.projects.List(uid)
}

func (s *projectSvc) Create(uid string, in service.NewProject) (*entities.Project, error) {
	p := entities.Project{
		ID:          fmt.Sprintf("%d", time.Now().UnixNano()),
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		CreatedAt:   entities.NewFlexTime(time.Now()),
	}
	list, err := s.projects.List(uid)
	if err != nil {
		return nil, err
	}
	list = append(list, p)
	if err := s.projects.SaveAll(uid, list); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *projectSvc) Delete(uid, id string) error {
	list, err := s.projects.List(uid)
	if err != nil {
		return err
	}
	kept := list[:0]
	found := false
	for _, p := range list {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.projects.SaveAll(uid, kept); err != nil {
		return err
	}

	// Unassign referencing tasks in the same flow so no dangling projectId
	// survives the deletion.
	tasks, err := s.tasks.List(uid)
	if err != nil {
		return err
	}
	changed := false
	for i := range tasks {
		if tasks[i].ProjectID == id {
			tasks[i].ProjectID = ""
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.tasks.SaveAll(uid, tasks)
}
