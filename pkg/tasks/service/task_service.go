package service

import (
	"time"

	"sprout/entities"
	"sprout/pkg/tasks/types"
)

// NewTask is the user input for a custom task.
type NewTask struct {
	Activity  string
	Details   string
	DueDate   time.Time
	Category  entities.TaskCategory
	Priority  string
	ProjectID string
}

// TaskPatch applies only non-nil fields.
type TaskPatch struct {
	Activity  *string
	Details   *string
	DueDate   *time.Time
	Category  *entities.TaskCategory
	Priority  *string
	ProjectID *string
	Completed *bool
}

type TaskService interface {
	Create(uid string, in NewTask) (*entities.CustomTask, error)
	Update(uid, id string, patch TaskPatch) (*entities.CustomTask, error)
	Delete(uid, id string) error
	// LoadAll merges system tasks flattened from non-harvested plants with
	// custom tasks, normalized and sorted by due date ascending.
	LoadAll(uid string) ([]types.TaskWithSource, error)
	// ToggleComplete flips a task's completion state and persists it. A
	// reference to a plant or task that no longer exists is a silent no-op;
	// callers reload rather than inspect a result.
	ToggleComplete(uid string, ref types.ToggleRef) error
}
