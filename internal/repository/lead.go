package repository

import (
	"dealership-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create creates a new lead
func (r *LeadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// GetByID retrieves a lead by ID
func (r *LeadRepository) GetByID(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetByExternalID retrieves a lead by its upstream identifier within a source
func (r *LeadRepository) GetByExternalID(sourceID uuid.UUID, externalID string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "source_id = ? AND external_id = ?", sourceID, externalID).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetAll retrieves all leads with pagination
func (r *LeadRepository) GetAll(limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	if err := r.db.Model(&models.Lead{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&leads).Error
	return leads, total, err
}

// GetBySourceID retrieves all leads of a source with pagination
func (r *LeadRepository) GetBySourceID(sourceID uuid.UUID, limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	if err := r.db.Model(&models.Lead{}).Where("source_id = ?", sourceID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("source_id = ?", sourceID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&leads).Error
	return leads, total, err
}

// GetByAssignee retrieves all leads assigned to a user with pagination
func (r *LeadRepository) GetByAssignee(userID uuid.UUID, limit, offset int) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	if err := r.db.Model(&models.Lead{}).Where("assigned_to = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("assigned_to = ?", userID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&leads).Error
	return leads, total, err
}

// GetUnassignedBySource retrieves the currently unassigned leads of a source
func (r *LeadRepository) GetUnassignedBySource(sourceID uuid.UUID) ([]models.Lead, error) {
	var leads []models.Lead
	err := r.db.Where("source_id = ? AND assigned_to IS NULL", sourceID).
		Order("created_at ASC").Find(&leads).Error
	return leads, err
}

// AssignIfUnassigned sets assigned_to only when the lead is still
// unassigned. The conditional UPDATE is the compare-and-set that
// guarantees at most one automatic assignment per lead: the losing side
// of a race sees zero affected rows and reports false.
func (r *LeadRepository) AssignIfUnassigned(id uuid.UUID, userID uuid.UUID) (bool, error) {
	result := r.db.Model(&models.Lead{}).
		Where("id = ? AND assigned_to IS NULL", id).
		Update("assigned_to", userID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Assign unconditionally sets assigned_to. Used by the manual path, which
// always overrides any prior assignment.
func (r *LeadRepository) Assign(id uuid.UUID, userID uuid.UUID) error {
	result := r.db.Model(&models.Lead{}).Where("id = ?", id).Update("assigned_to", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStatus updates a lead's pipeline status
func (r *LeadRepository) UpdateStatus(id uuid.UUID, status models.LeadStatus) error {
	result := r.db.Model(&models.Lead{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Update updates a lead
func (r *LeadRepository) Update(lead *models.Lead) error {
	return r.db.Save(lead).Error
}
