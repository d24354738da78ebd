package models

import (
	"github.com/google/uuid"
)

// AssignmentLog is the immutable audit record of every assignment
// decision: successful, skipped and no-match outcomes alike. Rows are
// never updated or deleted; this is the system of record for "why was
// this lead assigned to whom".
type AssignmentLog struct {
	BaseModel
	LeadID      uuid.UUID        `json:"lead_id" gorm:"type:uuid;not null;index" validate:"required"`
	AssignedTo  *uuid.UUID       `json:"assigned_to,omitempty" gorm:"type:uuid;index"`
	Action      AssignmentAction `json:"action" gorm:"type:varchar(30);not null" validate:"required"`
	RuleID      *uuid.UUID       `json:"rule_id,omitempty" gorm:"type:uuid;index"`
	ActorUserID *uuid.UUID       `json:"actor_user_id,omitempty" gorm:"type:uuid"`
	Remarks     string           `json:"remarks" gorm:"type:text"`

	// Relationships
	Lead     Lead            `json:"lead,omitempty" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	Assignee *User           `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo"`
	Rule     *AssignmentRule `json:"rule,omitempty" gorm:"foreignKey:RuleID"`
}

// TableName returns the table name for AssignmentLog
func (AssignmentLog) TableName() string {
	return "assignment_logs"
}
