package repository

import (
	"dealership-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BranchRepository handles database operations for branches
type BranchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

// Create creates a new branch
func (r *BranchRepository) Create(branch *models.Branch) error {
	return r.db.Create(branch).Error
}

// GetByID retrieves a branch by ID
func (r *BranchRepository) GetByID(id uuid.UUID) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.First(&branch, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// GetByName retrieves a branch by name
func (r *BranchRepository) GetByName(name string) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.First(&branch, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// GetAll retrieves all branches with pagination
func (r *BranchRepository) GetAll(limit, offset int) ([]models.Branch, int64, error) {
	var branches []models.Branch
	var total int64

	if err := r.db.Model(&models.Branch{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&branches).Error
	return branches, total, err
}

// Update updates a branch
func (r *BranchRepository) Update(branch *models.Branch) error {
	return r.db.Save(branch).Error
}

// Delete deletes a branch
func (r *BranchRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Branch{}, "id = ?", id).Error
}
