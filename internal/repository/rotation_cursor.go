package repository

import (
	"errors"

	"dealership-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RotationCursorRepository handles database operations for rotation cursors
type RotationCursorRepository struct {
	db *gorm.DB
}

// NewRotationCursorRepository creates a new rotation cursor repository
func NewRotationCursorRepository(db *gorm.DB) *RotationCursorRepository {
	return &RotationCursorRepository{db: db}
}

// GetByRuleID retrieves the cursor of a rule
func (r *RotationCursorRepository) GetByRuleID(ruleID uuid.UUID) (*models.RotationCursor, error) {
	var cursor models.RotationCursor
	err := r.db.First(&cursor, "rule_id = ?", ruleID).Error
	if err != nil {
		return nil, err
	}
	return &cursor, nil
}

// Advance runs the round-robin pick as a single read-modify-write
// transaction. The cursor row is locked FOR UPDATE for the duration, so
// two concurrent picks against the same rule serialize and cannot both
// observe the same "last member". pick receives the previous member id
// (nil on first use) and returns the member to record.
func (r *RotationCursorRepository) Advance(ruleID uuid.UUID, pick func(lastMemberID *uuid.UUID) (uuid.UUID, error)) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var cursor models.RotationCursor
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cursor, "rule_id = ?", ruleID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cursor = models.RotationCursor{RuleID: ruleID}
			if err := tx.Create(&cursor).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		next, err := pick(cursor.LastMemberID)
		if err != nil {
			return err
		}

		cursor.LastMemberID = &next
		return tx.Save(&cursor).Error
	})
}

// DeleteByRuleID removes the cursor row of a rule
func (r *RotationCursorRepository) DeleteByRuleID(ruleID uuid.UUID) error {
	return r.db.Delete(&models.RotationCursor{}, "rule_id = ?", ruleID).Error
}
