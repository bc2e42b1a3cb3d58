package entities

// ScheduledTask is one system-derived care task inside a plant's schedule.
// Only Completed is ever mutated after generation.
type ScheduledTask struct {
	WeekNumber int          `json:"weekNumber"`
	Activity   string       `json:"activity"`
	Details    string       `json:"details"`
	Completed  bool         `json:"completed"`
	DueDate    FlexTime     `json:"dueDate"`
	Category   TaskCategory `json:"category"`
}

// GardenPlant is a live planting in a user's garden. EstimatedHarvestDate and
// Schedule are derived at creation and fully regenerated when the planting
// date changes.
type GardenPlant struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	DatePlanted          FlexTime        `json:"datePlanted"`
	GrowthForm           GrowthForm      `json:"growthForm"`
	Climate              Climate         `json:"climate"`
	Location             string          `json:"location,omitempty"`
	Notes                string          `json:"notes,omitempty"`
	EstimatedHarvestDate FlexTime        `json:"estimatedHarvestDate"`
	Schedule             []ScheduledTask `json:"schedule"`
	IsHarvested          bool            `json:"isHarvested"`
	HarvestedDate        *FlexTime       `json:"harvestedDate,omitempty"`
}
