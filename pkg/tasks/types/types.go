package types

import "sprout/entities"

type Source string

const (
	SourceSystem Source = "system"
	SourceCustom Source = "custom"
)

// TaskWithSource is the common shape the aggregator produces for both
// plant-schedule tasks and user-authored tasks. System tasks carry
// back-references (plant name, planting date, schedule index) so the
// originating task can be located and mutated later.
type TaskWithSource struct {
	Source    Source                `json:"source"`
	Activity  string                `json:"activity"`
	Details   string                `json:"details,omitempty"`
	Completed bool                  `json:"completed"`
	DueDate   entities.FlexTime     `json:"dueDate"`
	Category  entities.TaskCategory `json:"category"`
	Priority  entities.Priority     `json:"priority"`

	// Custom-task fields.
	ID        string `json:"id,omitempty"`
	ProjectID string `json:"projectId,omitempty"`

	// System-task back-references.
	PlantID     string             `json:"plantId,omitempty"`
	PlantName   string             `json:"plantName,omitempty"`
	DatePlanted *entities.FlexTime `json:"datePlanted,omitempty"`
	TaskIndex   int                `json:"taskIndex"`
}

// ToggleRef identifies one task for a completion toggle. Custom tasks are
// located by ID; system tasks by (plant name, planting date) identity plus
// the index within that plant's schedule.
type ToggleRef struct {
	Source      Source             `json:"source"`
	ID          string             `json:"id,omitempty"`
	PlantName   string             `json:"plantName,omitempty"`
	DatePlanted *entities.FlexTime `json:"datePlanted,omitempty"`
	TaskIndex   int                `json:"taskIndex"`
}
