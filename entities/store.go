package entities

import "time"

// StoreRecord is one row of the key-value persistence surface: a serialized
// JSON collection under a per-user key.
type StoreRecord struct {
	UserID    string `gorm:"primaryKey" json:"user_id"`
	Key       string `gorm:"primaryKey" json:"key"`
	Value     string `json:"value"`
	UpdatedAt time.Time
}
