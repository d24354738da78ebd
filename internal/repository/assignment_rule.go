package repository

import (
	"dealership-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRuleRepository handles database operations for assignment rules
type AssignmentRuleRepository struct {
	db *gorm.DB
}

// NewAssignmentRuleRepository creates a new assignment rule repository
func NewAssignmentRuleRepository(db *gorm.DB) *AssignmentRuleRepository {
	return &AssignmentRuleRepository{db: db}
}

// Create creates a new assignment rule
func (r *AssignmentRuleRepository) Create(rule *models.AssignmentRule) error {
	return r.db.Create(rule).Error
}

// GetByID retrieves an assignment rule by ID
func (r *AssignmentRuleRepository) GetByID(id uuid.UUID) (*models.AssignmentRule, error) {
	var rule models.AssignmentRule
	err := r.db.First(&rule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetAll retrieves all assignment rules with pagination
func (r *AssignmentRuleRepository) GetAll(limit, offset int) ([]models.AssignmentRule, int64, error) {
	var rules []models.AssignmentRule
	var total int64

	if err := r.db.Model(&models.AssignmentRule{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("priority DESC, id ASC").Limit(limit).Offset(offset).Find(&rules).Error
	return rules, total, err
}

// GetCandidates retrieves the active rules that could match a source:
// rules bound to this source plus source-agnostic rules. Time-window and
// weekday filtering happens in the selector, which also owns the
// tie-break ordering.
func (r *AssignmentRuleRepository) GetCandidates(sourceID uuid.UUID) ([]models.AssignmentRule, error) {
	var rules []models.AssignmentRule
	err := r.db.Where("is_active = ? AND (source_id = ? OR source_id IS NULL)", true, sourceID).
		Find(&rules).Error
	return rules, err
}

// CountReferencingFallback counts rules whose fallback points at the rule
func (r *AssignmentRuleRepository) CountReferencingFallback(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.AssignmentRule{}).Where("fallback_rule_id = ?", id).Count(&count).Error
	return count, err
}

// Update updates an assignment rule
func (r *AssignmentRuleRepository) Update(rule *models.AssignmentRule) error {
	return r.db.Save(rule).Error
}

// Delete deletes an assignment rule
func (r *AssignmentRuleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AssignmentRule{}, "id = ?", id).Error
}
