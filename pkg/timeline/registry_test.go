package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/entities"
)

func TestLookupKnownPlant(t *testing.T) {
	r := NewRegistry()
	tl := r.Lookup("Tomatoes")
	assert.Equal(t, 21, tl.SowToSeedlingDays)
	assert.Equal(t, 60, tl.SeedlingToHarvestDays)
	assert.True(t, r.Has("Tomatoes"))
}

func TestLookupUnknownPlantFallsBack(t *testing.T) {
	r := NewRegistry()
	tl := r.Lookup("Durian")
	assert.False(t, r.Has("Durian"))
	assert.Equal(t, r.Default(), tl)
}

func TestLookupIsCaseSensitive(t *testing.T) {
	r := NewRegistry()
	assert.True(t, r.Has("Tomatoes"))
	assert.False(t, r.Has("tomatoes"))
}

func TestRegisterOverrides(t *testing.T) {
	r := NewRegistry()
	tl := r.Lookup("Tomatoes")
	tl.SeedlingToHarvestDays = 99
	r.Register("Tomatoes", tl)
	assert.Equal(t, 99, r.Lookup("Tomatoes").SeedlingToHarvestDays)
}

func TestNamesSorted(t *testing.T) {
	r := NewRegistry()
	names := r.Names()
	require.NotEmpty(t, names)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "Tomatoes")
	assert.Contains(t, names, "Lettuce")
}

func TestEveryBuiltinHasAllClimates(t *testing.T) {
	r := NewRegistry()
	climates := []entities.Climate{entities.ClimateWarm, entities.ClimateCool, entities.ClimateTemperate}
	for _, name := range r.Names() {
		tl := r.Lookup(name)
		for _, c := range climates {
			adj, ok := tl.ClimateAdjustments[c]
			require.True(t, ok, "%s missing %s adjustment", name, c)
			assert.Greater(t, adj.GrowthMultiplier, 0.0, "%s %s multiplier", name, c)
		}
	}
}
