package repository

import (
	"dealership-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentLogRepository handles database operations for assignment logs.
// The log is append-only: there are deliberately no update or delete
// methods here.
type AssignmentLogRepository struct {
	db *gorm.DB
}

// NewAssignmentLogRepository creates a new assignment log repository
func NewAssignmentLogRepository(db *gorm.DB) *AssignmentLogRepository {
	return &AssignmentLogRepository{db: db}
}

// Create appends an assignment log entry
func (r *AssignmentLogRepository) Create(entry *models.AssignmentLog) error {
	return r.db.Create(entry).Error
}

// GetByLeadID retrieves the log entries of a lead, newest first
func (r *AssignmentLogRepository) GetByLeadID(leadID uuid.UUID, limit, offset int) ([]models.AssignmentLog, int64, error) {
	var entries []models.AssignmentLog
	var total int64

	if err := r.db.Model(&models.AssignmentLog{}).Where("lead_id = ?", leadID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("lead_id = ?", leadID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

// GetByRuleID retrieves the log entries produced by a rule, newest first
func (r *AssignmentLogRepository) GetByRuleID(ruleID uuid.UUID, limit, offset int) ([]models.AssignmentLog, int64, error) {
	var entries []models.AssignmentLog
	var total int64

	if err := r.db.Model(&models.AssignmentLog{}).Where("rule_id = ?", ruleID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("rule_id = ?", ruleID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

// CountAssignedByRule counts the committed automatic assignments of a rule
func (r *AssignmentLogRepository) CountAssignedByRule(ruleID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.AssignmentLog{}).
		Where("rule_id = ? AND action = ? AND assigned_to IS NOT NULL", ruleID, models.ActionAutoAssignment).
		Count(&count).Error
	return count, err
}

// CountAssignedByRulePerUser groups the committed automatic assignments
// of a rule by assignee. This is both the rule-stats read and the running
// counter the deterministic weighted strategy converges on.
func (r *AssignmentLogRepository) CountAssignedByRulePerUser(ruleID uuid.UUID) (map[uuid.UUID]int64, error) {
	type row struct {
		AssignedTo uuid.UUID
		Count      int64
	}
	var rows []row
	err := r.db.Model(&models.AssignmentLog{}).
		Select("assigned_to, COUNT(*) as count").
		Where("rule_id = ? AND action = ? AND assigned_to IS NOT NULL", ruleID, models.ActionAutoAssignment).
		Group("assigned_to").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.AssignedTo] = r.Count
	}
	return counts, nil
}
