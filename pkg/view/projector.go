package view

import "sprout/pkg/tasks/types"

type GroupBy string

const (
	GroupNone     GroupBy = "none"
	GroupCategory GroupBy = "category"
	GroupPriority GroupBy = "priority"
	GroupProject  GroupBy = "project"
)

type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
)

// Bucket names that do not come from the data itself.
const (
	groupAllTasks   = "All Tasks"
	groupSuggested  = "suggestions"
	groupUnassigned = "unassigned"
)

type Options struct {
	GroupBy    GroupBy
	Status     StatusFilter
	ShowCustom bool
	ShowSystem bool
}

// Project reshapes the aggregator's merged task list into the grouped,
// filtered structure every view consumes. Input order (due date ascending)
// is preserved within each group. A pure function: the input slice is never
// mutated.
func Project(tasks []types.TaskWithSource, opts Options) map[string][]types.TaskWithSource {
	if opts.GroupBy == "" {
		opts.GroupBy = GroupNone
	}
	if opts.Status == "" {
		opts.Status = StatusAll
	}

	out := map[string][]types.TaskWithSource{}
	for _, t := range tasks {
		if t.Source == types.SourceCustom && !opts.ShowCustom {
			continue
		}
		if t.Source == types.SourceSystem && !opts.ShowSystem {
			continue
		}
		switch opts.Status {
		case StatusPending:
			if t.Completed {
				continue
			}
		case StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		key := groupKey(t, opts.GroupBy)
		out[key] = append(out[key], t)
	}
	return out
}

func groupKey(t types.TaskWithSource, g GroupBy) string {
	switch g {
	case GroupCategory:
		return string(t.Category)
	case GroupPriority:
		// System tasks carry no persisted priority; the aggregator already
		// stamps them important.
		return string(t.Priority)
	case GroupProject:
		if t.Source == types.SourceSystem {
			return groupSuggested
		}
		if t.ProjectID == "" {
			return groupUnassigned
		}
		return t.ProjectID
	}
	return groupAllTasks
}
