package repository

import (
	"time"

	"github.com/lucasmonteiro/occurrence-api/internal/models"
	"gorm.io/gorm"
)

// GormOccurrenceRepository is a GORM implementation of OccurrenceRepository
type GormOccurrenceRepository struct {
	db *gorm.DB
}

// NewOccurrenceRepository creates a new OccurrenceRepository
func NewOccurrenceRepository(db *gorm.DB) OccurrenceRepository {
	return &GormOccurrenceRepository{db: db}
}

// Create creates a new occurrence
func (r *GormOccurrenceRepository) Create(occurrence *models.Occurrence) error {
	return r.db.Create(occurrence).Error
}

// FindByID finds an occurrence by ID
func (r *GormOccurrenceRepository) FindByID(id string) (*models.Occurrence, error) {
	var occurrence models.Occurrence
	if err := r.db.Where("id = ?", id).First(&occurrence).Error; err != nil {
		return nil, err
	}
	return &occurrence, nil
}

// ListByOwner lists a user's occurrences, most recent first
func (r *GormOccurrenceRepository) ListByOwner(ownerID string) ([]models.Occurrence, error) {
	var occurrences []models.Occurrence
	if err := r.db.Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&occurrences).Error; err != nil {
		return nil, err
	}
	return occurrences, nil
}

// Update updates an occurrence
func (r *GormOccurrenceRepository) Update(occurrence *models.Occurrence) error {
	return r.db.Save(occurrence).Error
}

// Delete permanently removes an occurrence
func (r *GormOccurrenceRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Occurrence{}).Error
}

// CountCreatedSince counts occurrences created at or after t
func (r *GormOccurrenceRepository) CountCreatedSince(t time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Occurrence{}).
		Where("created_at >= ?", t).
		Count(&count).Error
	return count, err
}
