package cart

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Tuka1911/dymokminiapp/models"
)

// GormStorage keeps cart snapshots in the cart_snapshots table, one JSON
// payload per key.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (s *GormStorage) Load(key string) (string, bool, error) {
	var row models.CartSnapshot
	err := s.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Payload, true, nil
}

func (s *GormStorage) Save(key, payload string) error {
	row := models.CartSnapshot{Key: key, Payload: payload, UpdatedAt: time.Now()}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
}

func (s *GormStorage) Clear(key string) error {
	return s.db.Delete(&models.CartSnapshot{}, "key = ?", key).Error
}
