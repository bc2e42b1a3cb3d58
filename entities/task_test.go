package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePriorityLegacyValues(t *testing.T) {
	cases := map[string]Priority{
		"high":   PriorityUrgentImportant,
		"High":   PriorityUrgentImportant,
		" HIGH ": PriorityUrgentImportant,
		"medium": PriorityImportant,
		"low":    PriorityNiceToDo,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizePriority(in), "input %q", in)
	}
}

func TestNormalizePriorityUnrecognized(t *testing.T) {
	assert.Equal(t, PriorityImportant, NormalizePriority(""))
	assert.Equal(t, PriorityImportant, NormalizePriority("whenever"))
	assert.Equal(t, PriorityImportant, NormalizePriority("URGENT!!"))
}

func TestNormalizePriorityIdempotent(t *testing.T) {
	for _, p := range []Priority{PriorityUrgentImportant, PriorityUrgent, PriorityImportant, PriorityNiceToDo} {
		assert.Equal(t, p, NormalizePriority(string(p)))
		assert.Equal(t, p, NormalizePriority(string(NormalizePriority(string(p)))))
	}
}
