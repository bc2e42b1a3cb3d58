package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/entities"
	"sprout/pkg/timeline"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func findTask(tasks []entities.ScheduledTask, activity string) *entities.ScheduledTask {
	for i := range tasks {
		if tasks[i].Activity == activity {
			return &tasks[i]
		}
	}
	return nil
}

func TestGenerateTomatoesSeedTemperate(t *testing.T) {
	g := NewGenerator(timeline.NewRegistry())
	res := g.Generate("Tomatoes", day(2024, 3, 1), entities.GrowthFormSeed, entities.ClimateTemperate)

	// 21 sow-to-seedling + 60 seedling-to-harvest at multiplier 1.0.
	assert.Equal(t, day(2024, 5, 21), res.EstimatedHarvestDate)

	for _, st := range res.Schedule {
		low := strings.ToLower(st.Activity)
		assert.NotContains(t, low, "sow seed", "sowing is implicit and must be filtered")
		assert.NotContains(t, low, "water", "watering cadence is not scheduled")
	}

	fert := findTask(res.Schedule, "Fertilise")
	require.NotNil(t, fert)
	assert.Equal(t, day(2024, 3, 22), fert.DueDate.Time)
	assert.Equal(t, 3, fert.WeekNumber)
	assert.Equal(t, entities.CategoryFertilizing, fert.Category)

	var climateTasks []entities.ScheduledTask
	for _, st := range res.Schedule {
		if st.Category == entities.CategoryClimate {
			climateTasks = append(climateTasks, st)
		}
	}
	require.Len(t, climateTasks, 2)
	// 30% and 60% of the 81-day total, rounded half-up.
	assert.Equal(t, day(2024, 3, 25), climateTasks[0].DueDate.Time)
	assert.Equal(t, day(2024, 4, 19), climateTasks[1].DueDate.Time)
	for _, ct := range climateTasks {
		assert.Equal(t, "Climate-specific care for temperate conditions", ct.Details)
	}

	// 5 surviving key activities plus the 2 climate reminders.
	assert.Len(t, res.Schedule, 7)
}

func TestGenerateSeedlingSkipsEarlyActivities(t *testing.T) {
	g := NewGenerator(timeline.NewRegistry())
	res := g.Generate("Tomatoes", day(2024, 3, 1), entities.GrowthFormSeedling, entities.ClimateTemperate)

	// Seedlings skip the 21-day sowing phase entirely.
	assert.Equal(t, day(2024, 4, 30), res.EstimatedHarvestDate)

	assert.Nil(t, findTask(res.Schedule, "Thin to the strongest seedling"),
		"day-14 activity is already past for a seedling")
	assert.NotNil(t, findTask(res.Schedule, "Fertilise"),
		"an activity timed exactly at the phase boundary is retained")
	assert.NotNil(t, findTask(res.Schedule, "Stake and remove laterals"))
}

func TestGenerateWarmClimateMultiplier(t *testing.T) {
	g := NewGenerator(timeline.NewRegistry())
	res := g.Generate("Tomatoes", day(2024, 3, 1), entities.GrowthFormSeed, entities.ClimateWarm)

	// 81 days at 0.9 rounds to 73.
	assert.Equal(t, day(2024, 5, 13), res.EstimatedHarvestDate)

	// Activity timings scale too: 21 * 0.9 rounds to 19.
	fert := findTask(res.Schedule, "Fertilise")
	require.NotNil(t, fert)
	assert.Equal(t, day(2024, 3, 20), fert.DueDate.Time)

	// The moisture-related care entry is filtered; the remaining two keep
	// consecutive 30% spacing positions.
	assert.Nil(t, findTask(res.Schedule, "Mulch thickly to hold soil moisture"))
	shade := findTask(res.Schedule, "Shade cloth during heat waves")
	require.NotNil(t, shade)
	assert.Equal(t, day(2024, 3, 23), shade.DueDate.Time)
	sunscald := findTask(res.Schedule, "Check fruit for sunscald")
	require.NotNil(t, sunscald)
	assert.Equal(t, day(2024, 4, 14), sunscald.DueDate.Time)
}

func TestGenerateUnknownPlantUsesDefaultTimeline(t *testing.T) {
	g := NewGenerator(timeline.NewRegistry())
	res := g.Generate("Dragonfruit", day(2024, 3, 1), entities.GrowthFormSeed, entities.ClimateTemperate)

	// Default timeline: 14 + 60 at multiplier 1.0.
	assert.Equal(t, day(2024, 5, 14), res.EstimatedHarvestDate)
	assert.Nil(t, findTask(res.Schedule, "Plant according to the packet"))
	assert.NotNil(t, findTask(res.Schedule, "Fertilise with a balanced feed"))
}

func TestGenerateUnknownClimateKeepsBaseDurations(t *testing.T) {
	g := NewGenerator(timeline.NewRegistry())
	res := g.Generate("Tomatoes", day(2024, 3, 1), entities.GrowthFormSeed, entities.Climate("alpine"))

	assert.Equal(t, day(2024, 5, 21), res.EstimatedHarvestDate)
	for _, st := range res.Schedule {
		assert.NotEqual(t, entities.CategoryClimate, st.Category,
			"no climate table means no climate reminders")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := NewGenerator(timeline.NewRegistry())
	a := g.Generate("Tomatoes", day(2024, 3, 1), entities.GrowthFormSeed, entities.ClimateCool)
	b := g.Generate("Tomatoes", day(2024, 3, 1), entities.GrowthFormSeed, entities.ClimateCool)
	assert.Equal(t, a, b)
}

func TestWeekOf(t *testing.T) {
	assert.Equal(t, 0, weekOf(0))
	assert.Equal(t, 1, weekOf(1))
	assert.Equal(t, 1, weekOf(7))
	assert.Equal(t, 2, weekOf(8))
	assert.Equal(t, 3, weekOf(21))
}
