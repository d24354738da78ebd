package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// DayList is a set of weekdays (0=Sunday..6=Saturday) stored as a jsonb
// array. An empty list means the rule is active every day.
type DayList []int

// Value implements driver.Valuer
func (d DayList) Value() (driver.Value, error) {
	if d == nil {
		d = DayList{}
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner
func (d *DayList) Scan(value interface{}) error {
	if value == nil {
		*d = DayList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for DayList: %T", value)
	}
	return json.Unmarshal(raw, d)
}

// Contains reports whether the weekday is in the list.
func (d DayList) Contains(weekday int) bool {
	for _, day := range d {
		if day == weekday {
			return true
		}
	}
	return false
}

// RuleConfig holds strategy-specific tuning for a rule, persisted as jsonb.
// It is validated against the rule type before being stored.
type RuleConfig struct {
	// Mode selects the weighted sub-mode; required for weighted rules,
	// ignored for round-robin rules.
	Mode WeightedMode `json:"mode,omitempty"`
	// FallbackBypassFilters controls whether a rule reached through a
	// fallback chain is exempt from its own source/time-window filters.
	// Nil means true: an explicitly configured fallback applies as-is.
	FallbackBypassFilters *bool `json:"fallback_bypass_filters,omitempty"`
}

// BypassFilters resolves the fallback filter policy with its default.
func (c RuleConfig) BypassFilters() bool {
	if c.FallbackBypassFilters == nil {
		return true
	}
	return *c.FallbackBypassFilters
}

// Value implements driver.Valuer
func (c RuleConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner
func (c *RuleConfig) Scan(value interface{}) error {
	if value == nil {
		*c = RuleConfig{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for RuleConfig: %T", value)
	}
	return json.Unmarshal(raw, c)
}

// AssignmentRule is a configured policy describing how leads from a source
// (or all sources, when SourceID is nil) are distributed among CREs.
type AssignmentRule struct {
	BaseModel
	Name     string     `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	SourceID *uuid.UUID `json:"source_id,omitempty" gorm:"type:uuid;index"`
	RuleType RuleType   `json:"rule_type" gorm:"type:varchar(20);not null" validate:"required"`
	Priority int        `json:"priority" gorm:"not null;default:0"`
	IsActive bool       `json:"is_active" gorm:"default:true"`
	Config   RuleConfig `json:"config" gorm:"type:jsonb"`
	// ActiveFrom/ActiveTo bound the rule to a time-of-day window in
	// "HH:MM" 24h format; nil means unbounded on that side.
	ActiveFrom       *string    `json:"active_from,omitempty" gorm:"size:5"`
	ActiveTo         *string    `json:"active_to,omitempty" gorm:"size:5"`
	ActiveDays       DayList    `json:"active_days" gorm:"type:jsonb"`
	FallbackRuleID   *uuid.UUID `json:"fallback_rule_id,omitempty" gorm:"type:uuid"`
	FallbackToManual bool       `json:"fallback_to_manual" gorm:"default:false"`

	// Relationships
	Source       *Source         `json:"source,omitempty" gorm:"foreignKey:SourceID"`
	FallbackRule *AssignmentRule `json:"fallback_rule,omitempty" gorm:"foreignKey:FallbackRuleID"`
	Members      []RuleMember    `json:"members,omitempty" gorm:"foreignKey:RuleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AssignmentRule
func (AssignmentRule) TableName() string {
	return "assignment_rules"
}
