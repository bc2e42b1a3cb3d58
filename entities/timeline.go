package entities

// Climate selects a growth-rate multiplier and watering cadence.
type Climate string

const (
	ClimateWarm      Climate = "warm"
	ClimateCool      Climate = "cool"
	ClimateTemperate Climate = "temperate"
)

// GrowthForm is whether a planting began as a seed or a seedling. Seedlings
// skip the sow-to-seedling phase when growth durations are computed.
type GrowthForm string

const (
	GrowthFormSeed     GrowthForm = "seed"
	GrowthFormSeedling GrowthForm = "seedling"
)

type TaskCategory string

const (
	CategoryPlanting    TaskCategory = "planting"
	CategoryFertilizing TaskCategory = "fertilizing"
	CategoryPruning     TaskCategory = "pruning"
	CategoryPest        TaskCategory = "pest"
	CategoryHarvest     TaskCategory = "harvest"
	CategoryClimate     TaskCategory = "climate"
	CategoryOther       TaskCategory = "other"
)

// KeyActivity is a care action at a fixed offset in days from planting.
type KeyActivity struct {
	TimingDays int          `json:"timingDays"`
	Activity   string       `json:"activity"`
	Details    string       `json:"details"`
	Category   TaskCategory `json:"category"`
}

type ClimateAdjustment struct {
	GrowthMultiplier      float64  `json:"growthMultiplier"`
	WateringFrequencyDays int      `json:"wateringFrequencyDays"`
	ExtraCare             []string `json:"extraCare"`
}

// PlantTimeline is the static growth profile for one species. Reference data
// only; never mutated at runtime.
type PlantTimeline struct {
	SowToSeedlingDays     int                           `json:"sowToSeedlingDays"`
	SeedlingToHarvestDays int                           `json:"seedlingToHarvestDays"`
	HarvestWindowDays     int                           `json:"harvestWindowDays"`
	ClimateAdjustments    map[Climate]ClimateAdjustment `json:"climateAdjustments"`
	KeyActivities         []KeyActivity                 `json:"keyActivities"`
}
