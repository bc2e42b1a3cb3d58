package repositoryImp

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sprout/entities"
	"sprout/pkg/store/repository"
)

type storeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.Store { return &storeRepo{db} }

func (r *storeRepo) Get(uid, key string) (string, bool, error) {
	var rec entities.StoreRecord
	err := r.db.Where("user_id = ? AND key = ?", uid, key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

func (r *storeRepo) Set(uid, key, value string) error {
	rec := entities.StoreRecord{UserID: uid, Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
}
