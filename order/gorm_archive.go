package order

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Tuka1911/dymokminiapp/models"
)

// GormArchive persists order records in the order_records table.
type GormArchive struct {
	db *gorm.DB
}

func NewGormArchive(db *gorm.DB) *GormArchive {
	return &GormArchive{db: db}
}

func (a *GormArchive) Save(rec *models.OrderRecord) error {
	return a.db.Create(rec).Error
}

func (a *GormArchive) List() ([]models.OrderRecord, error) {
	var recs []models.OrderRecord
	if err := a.db.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// FindByNumber returns the newest record carrying the display number, or
// nil when none exists.
func (a *GormArchive) FindByNumber(number string) (*models.OrderRecord, error) {
	var rec models.OrderRecord
	err := a.db.Where("number = ?", number).Order("created_at DESC").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
