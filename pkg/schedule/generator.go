package schedule

import (
	"fmt"
	"math"
	"strings"
	"time"

	"sprout/entities"
	"sprout/pkg/timeline"
)

// climateCareSpacing positions each climate-care reminder at successive
// fractions of the total growth duration: 30%, 60%, 90% and so on.
const climateCareSpacing = 0.3

// Result is the derived schedule for one planting.
type Result struct {
	Schedule             []entities.ScheduledTask `json:"schedule"`
	EstimatedHarvestDate time.Time                `json:"estimatedHarvestDate"`
}

// Generator derives dated care schedules from the timeline registry. It is
// deterministic: identical inputs always produce the identical task list.
type Generator struct {
	reg *timeline.Registry
}

func NewGenerator(reg *timeline.Registry) *Generator { return &Generator{reg: reg} }

// Generate derives the full care schedule and estimated harvest date for one
// planting. Seedlings skip the sow-to-seedling phase, and activities timed
// strictly before that phase ends are dropped for them (an activity timed
// exactly at SowToSeedlingDays is retained). Initial sowing/planting
// activities and anything watering-related are filtered out entirely:
// planting is implicit and watering cadence belongs to a separate subsystem.
// The returned task list is unsorted; ordering is the view layer's job.
func (g *Generator) Generate(plantName string, plantingDate time.Time, form entities.GrowthForm, climate entities.Climate) Result {
	tl := g.reg.Lookup(plantName)
	adj, ok := tl.ClimateAdjustments[climate]
	if !ok {
		adj = entities.ClimateAdjustment{GrowthMultiplier: 1.0}
	}

	growthDays := tl.SeedlingToHarvestDays
	if form == entities.GrowthFormSeed {
		growthDays += tl.SowToSeedlingDays
	}
	totalGrowthDays := roundDays(float64(growthDays) * adj.GrowthMultiplier)
	harvestDate := plantingDate.AddDate(0, 0, totalGrowthDays)

	var tasks []entities.ScheduledTask
	for _, ka := range tl.KeyActivities {
		if form == entities.GrowthFormSeedling && ka.TimingDays < tl.SowToSeedlingDays {
			continue // already past for a seedling
		}
		if isSowingActivity(ka.Activity) || isWateringActivity(ka.Activity) {
			continue
		}
		timing := roundDays(float64(ka.TimingDays) * adj.GrowthMultiplier)
		tasks = append(tasks, entities.ScheduledTask{
			WeekNumber: weekOf(timing),
			Activity:   ka.Activity,
			Details:    ka.Details,
			Category:   ka.Category,
			DueDate:    entities.NewFlexTime(plantingDate.AddDate(0, 0, timing)),
		})
	}

	idx := 0
	for _, care := range adj.ExtraCare {
		if isWateringActivity(care) {
			continue
		}
		offset := roundDays(float64(totalGrowthDays) * climateCareSpacing * float64(idx+1))
		tasks = append(tasks, entities.ScheduledTask{
			WeekNumber: weekOf(offset),
			Activity:   care,
			Details:    fmt.Sprintf("Climate-specific care for %s conditions", climate),
			Category:   entities.CategoryClimate,
			DueDate:    entities.NewFlexTime(plantingDate.AddDate(0, 0, offset)),
		})
		idx++
	}

	return Result{Schedule: tasks, EstimatedHarvestDate: harvestDate}
}

// roundDays rounds half-up to whole days.
func roundDays(v float64) int { return int(math.Round(v)) }

func weekOf(days int) int {
	if days <= 0 {
		return 0
	}
	return (days + 6) / 7
}

var sowingPhrases = []string{"sow seed", "plant seed", "seed packet", "plant according"}

func isSowingActivity(s string) bool {
	low := strings.ToLower(s)
	for _, p := range sowingPhrases {
		if strings.Contains(low, p) {
			return true
		}
	}
	return false
}

var wateringWords = []string{"water", "moisture", "irrigation"}

func isWateringActivity(s string) bool {
	low := strings.ToLower(s)
	for _, w := range wateringWords {
		if strings.Contains(low, w) {
			return true
		}
	}
	return false
}
