package models

import (
	"github.com/google/uuid"
)

// RotationCursor is the engine-private round-robin state, one row per
// rule. It records the member that received the previous assignment and
// is persisted so rotation fairness survives restarts and multiple
// service instances. It is only ever read and advanced inside a single
// row-locked transaction.
type RotationCursor struct {
	BaseModel
	RuleID       uuid.UUID  `json:"rule_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	LastMemberID *uuid.UUID `json:"last_member_id,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for RotationCursor
func (RotationCursor) TableName() string {
	return "rotation_cursors"
}
