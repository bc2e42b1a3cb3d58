package repositoryImp

import (
	"encoding/json"
	"log"

	"sprout/entities"
	"sprout/pkg/project/repository"
	storerepo "sprout/pkg/store/repository"
)

const projectsKey = "projects"

type projectRepo struct{ store storerepo.Store }

func New(store storerepo.Store) repository.ProjectRepository { return &projectRepo{store} }

func (r *projectRepo) List(uid string) ([]entities.Project, error) {
	raw, ok, err := r.store.Get(uid, projectsKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var out []entities.Project
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("[store] bad %s payload for %s: %v", projectsKey, uid, err)
		return nil, nil
	}
	return out, nil
}

func (r *projectRepo) SaveAll(uid string, projects []entities.Project) error {
	if projects == nil {
		projects = []entities.Project{}
	}
	b, err := json.Marshal(projects)
	if err != nil {
		return err
	}
	return r.store.Set(uid, projectsKey, string(b))
}
