package entities

import "strings"

// Priority is the closed set of task priorities. Stored records may still
// carry the legacy high/medium/low values; NormalizePriority heals those on
// read.
type Priority string

const (
	PriorityUrgentImportant Priority = "urgent-important"
	PriorityUrgent          Priority = "urgent"
	PriorityImportant       Priority = "important"
	PriorityNiceToDo        Priority = "nice-to-do"
)

// NormalizePriority maps any stored value onto the canonical set:
// high -> urgent-important, medium -> important, low -> nice-to-do, anything
// unrecognized -> important. Idempotent.
func NormalizePriority(v string) Priority {
	switch Priority(v) {
	case PriorityUrgentImportant, PriorityUrgent, PriorityImportant, PriorityNiceToDo:
		return Priority(v)
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "high":
		return PriorityUrgentImportant
	case "medium":
		return PriorityImportant
	case "low":
		return PriorityNiceToDo
	}
	return PriorityImportant
}

// CustomTask is a user-authored task, independent of any plant schedule.
// Priority is kept as a plain string so legacy values survive decoding and
// can be migrated in place.
type CustomTask struct {
	ID        string       `json:"id"`
	Activity  string       `json:"activity"`
	Details   string       `json:"details,omitempty"`
	Completed bool         `json:"completed"`
	DueDate   FlexTime     `json:"dueDate"`
	Category  TaskCategory `json:"category"`
	Priority  string       `json:"priority"`
	ProjectID string       `json:"projectId,omitempty"`
	CreatedAt FlexTime     `json:"createdAt"`
}
