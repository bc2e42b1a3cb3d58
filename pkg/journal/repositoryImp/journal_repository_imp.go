package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"sprout/entities"
	"sprout/pkg/journal/repository"
)

type journalRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.JournalRepository { return &journalRepo{db} }

func (r *journalRepo) Create(o *entities.Observation) error { return r.db.Create(o).Error }

func (r *journalRepo) Recent(userID, plantID string, days int) ([]entities.Observation, error) {
	var out []entities.Observation
	cut := time.Now().AddDate(0, 0, -days)
	q := r.db.Where("user_id = ? AND date >= ?", userID, cut)
	if plantID != "" {
		q = q.Where("plant_id = ?", plantID)
	}
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
