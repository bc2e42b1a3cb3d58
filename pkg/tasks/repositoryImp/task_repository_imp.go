package repositoryImp

import (
	"encoding/json"
	"log"

	"sprout/entities"
	"sprout/pkg/tasks/repository"
	storerepo "sprout/pkg/store/repository"
)

const tasksKey = "customTasks"

type taskRepo struct{ store storerepo.Store }

func New(store storerepo.Store) repository.TaskRepository { return &taskRepo{store} }

func (r *taskRepo) List(uid string) ([]entities.CustomTask, error) {
	raw, ok, err := r.store.Get(uid, tasksKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var out []entities.CustomTask
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("[store] bad %s payload for %s: %v", tasksKey, uid, err)
		return nil, nil
	}
	return out, nil
}

func (r *taskRepo) SaveAll(uid string, tasks []entities.CustomTask) error {
	if tasks == nil {
		tasks = []entities.CustomTask{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return r.store.Set(uid, tasksKey, string(b))
}
