package repository

import (
	"dealership-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RuleMemberRepository handles database operations for rule members
type RuleMemberRepository struct {
	db *gorm.DB
}

// NewRuleMemberRepository creates a new rule member repository
func NewRuleMemberRepository(db *gorm.DB) *RuleMemberRepository {
	return &RuleMemberRepository{db: db}
}

// Create creates a new rule member
func (r *RuleMemberRepository) Create(member *models.RuleMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a rule member by ID
func (r *RuleMemberRepository) GetByID(id uuid.UUID) (*models.RuleMember, error) {
	var member models.RuleMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByRuleID retrieves all members of a rule, active or not
func (r *RuleMemberRepository) GetByRuleID(ruleID uuid.UUID) ([]models.RuleMember, error) {
	var members []models.RuleMember
	err := r.db.Where("rule_id = ?", ruleID).Order("id ASC").Find(&members).Error
	return members, err
}

// GetActiveByRuleID retrieves the active members of a rule in rotation
// order (member id ascending, the stable key all strategies rely on).
func (r *RuleMemberRepository) GetActiveByRuleID(ruleID uuid.UUID) ([]models.RuleMember, error) {
	var members []models.RuleMember
	err := r.db.Where("rule_id = ? AND is_active = ?", ruleID, true).Order("id ASC").Find(&members).Error
	return members, err
}

// GetByRuleAndUser retrieves a rule member by rule and user
func (r *RuleMemberRepository) GetByRuleAndUser(ruleID, userID uuid.UUID) (*models.RuleMember, error) {
	var member models.RuleMember
	err := r.db.First(&member, "rule_id = ? AND user_id = ?", ruleID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Update updates a rule member
func (r *RuleMemberRepository) Update(member *models.RuleMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a rule member
func (r *RuleMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.RuleMember{}, "id = ?", id).Error
}
