package timeline

import (
	"sort"

	"sprout/entities"
)

// Registry maps plant names to their growth timelines. Lookup is
// case-sensitive; unregistered names fall back to the default timeline
// rather than erroring.
type Registry struct {
	plants map[string]entities.PlantTimeline
	def    entities.PlantTimeline
}

func NewRegistry() *Registry {
	r := &Registry{plants: map[string]entities.PlantTimeline{}, def: defaultTimeline}
	for name, tl := range builtinTimelines {
		r.plants[name] = tl
	}
	return r
}

func (r *Registry) Lookup(name string) entities.PlantTimeline {
	if tl, ok := r.plants[name]; ok {
		return tl
	}
	return r.def
}

func (r *Registry) Has(name string) bool {
	_, ok := r.plants[name]
	return ok
}

func (r *Registry) Default() entities.PlantTimeline { return r.def }

func (r *Registry) Register(name string, tl entities.PlantTimeline) {
	r.plants[name] = tl
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.plants))
	for n := range r.plants {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
