package models

import (
	"github.com/google/uuid"
)

// RuleMember enrolls a CRE in a rule's distribution pool. Exactly one of
// Percentage or Weight is populated, uniformly across the rule's
// membership: mixing modes within one rule is rejected at save time.
// Deactivating a member removes it from future selection but never
// rewrites historical assignment logs.
type RuleMember struct {
	BaseModel
	RuleID uuid.UUID `json:"rule_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	// Percentage is the member's share for weighted rules in percentage
	// mode; tolerated even when shares do not sum to 100, the draw
	// normalizes by the actual sum.
	Percentage *float64 `json:"percentage,omitempty"`
	// Weight is the member's share for weighted rules in deterministic
	// weight mode.
	Weight   *int `json:"weight,omitempty"`
	IsActive bool `json:"is_active" gorm:"default:true"`

	// Relationships
	Rule AssignmentRule `json:"rule,omitempty" gorm:"foreignKey:RuleID;constraint:OnDelete:CASCADE"`
	User User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for RuleMember
func (RuleMember) TableName() string {
	return "rule_members"
}
