package entities

import "time"

// Observation is a dated garden-journal entry for one plant. PhotoURL points
// at externally stored imagery; upload itself is not handled here.
type Observation struct {
	ObsID      uint      `gorm:"primaryKey" json:"obs_id"`
	UserID     string    `gorm:"index" json:"user_id"`
	PlantID    string    `gorm:"index" json:"plant_id"`
	Date       time.Time `json:"date"`
	Note       string    `json:"note"`
	RainfallMM *float64  `json:"rainfall_mm"`
	PestScale  *int      `json:"pest_scale"`
	PhotoURL   string    `json:"photo_url"`
	CreatedAt  time.Time
}
