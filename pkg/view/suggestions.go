package view

import (
	"sort"

	"sprout/pkg/tasks/types"
)

type SuggestionSort string

const (
	SortByDueDate   SuggestionSort = "due"
	SortByPlantName SuggestionSort = "plant"
)

// Suggestions is the system-task presentation mode: plant-schedule tasks
// only, sorted strictly by due date or plant name. hideCompleted is the
// mode's own toggle, independent of the status filter used elsewhere.
func Suggestions(tasks []types.TaskWithSource, sortBy SuggestionSort, hideCompleted bool) []types.TaskWithSource {
	out := make([]types.TaskWithSource, 0, len(tasks))
	for _, t := range tasks {
		if t.Source != types.SourceSystem {
			continue
		}
		if hideCompleted && t.Completed {
			continue
		}
		out = append(out, t)
	}
	switch sortBy {
	case SortByPlantName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PlantName < out[j].PlantName })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Time.Before(out[j].DueDate.Time) })
	}
	return out
}
