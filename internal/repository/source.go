package repository

import (
	"dealership-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SourceRepository handles database operations for lead sources
type SourceRepository struct {
	db *gorm.DB
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(db *gorm.DB) *SourceRepository {
	return &SourceRepository{db: db}
}

// Create creates a new source
func (r *SourceRepository) Create(source *models.Source) error {
	return r.db.Create(source).Error
}

// GetByID retrieves a source by ID
func (r *SourceRepository) GetByID(id uuid.UUID) (*models.Source, error) {
	var source models.Source
	err := r.db.First(&source, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &source, nil
}

// GetByName retrieves a source by name
func (r *SourceRepository) GetByName(name string) (*models.Source, error) {
	var source models.Source
	err := r.db.First(&source, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &source, nil
}

// GetAll retrieves all sources with pagination
func (r *SourceRepository) GetAll(limit, offset int) ([]models.Source, int64, error) {
	var sources []models.Source
	var total int64

	if err := r.db.Model(&models.Source{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&sources).Error
	return sources, total, err
}

// Update updates a source
func (r *SourceRepository) Update(source *models.Source) error {
	return r.db.Save(source).Error
}

// Delete deletes a source
func (r *SourceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Source{}, "id = ?", id).Error
}

// IncrementLeadCounts bumps both lead counters of a source in a single
// UPDATE so concurrent lead creations never lose increments.
func (r *SourceRepository) IncrementLeadCounts(id uuid.UUID) error {
	return r.db.Model(&models.Source{}).Where("id = ?", id).UpdateColumns(map[string]interface{}{
		"total_leads_count":  gorm.Expr("total_leads_count + 1"),
		"todays_leads_count": gorm.Expr("todays_leads_count + 1"),
	}).Error
}

// ResetTodaysCounts zeroes the daily counter across all sources.
func (r *SourceRepository) ResetTodaysCounts() error {
	return r.db.Model(&models.Source{}).Where("todays_leads_count > 0").
		UpdateColumn("todays_leads_count", 0).Error
}
