// internal/repository/dispatch_log_repo.go
package repository

import (
	"absence-tracker/internal/models"

	"gorm.io/gorm"
)

type DispatchLogRepository interface {
	Create(entry *models.DispatchEntry) error
	GetByRunID(runID string) ([]models.DispatchEntry, error)
	ListRecent(limit int) ([]models.DispatchEntry, error)
}

type GormDispatchLogRepository struct {
	db *gorm.DB
}

func NewGormDispatchLogRepository(db *gorm.DB) (DispatchLogRepository, error) {
	if err := db.AutoMigrate(&models.DispatchEntry{}); err != nil {
		return nil, err
	}
	return &GormDispatchLogRepository{db: db}, nil
}

func (r *GormDispatchLogRepository) Create(entry *models.DispatchEntry) error {
	return r.db.Create(entry).Error
}

func (r *GormDispatchLogRepository) GetByRunID(runID string) ([]models.DispatchEntry, error) {
	var entries []models.DispatchEntry
	err := r.db.Where("run_id = ?", runID).
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *GormDispatchLogRepository) ListRecent(limit int) ([]models.DispatchEntry, error) {
	var entries []models.DispatchEntry
	err := r.db.Order("id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
