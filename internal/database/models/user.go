package models

import (
	"github.com/google/uuid"
)

// User represents a staff member: admins, team leads and CREs.
// CREs (Customer Relationship Executives) are the assignable sales agents.
type User struct {
	BaseModel
	FullName     string     `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Email        string     `json:"email" gorm:"size:255;not null;uniqueIndex" validate:"required,email"`
	PhoneNumber  string     `json:"phone_number" gorm:"size:20"`
	PasswordHash string     `json:"-" gorm:"size:100;not null"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'cre'" validate:"required"`
	BranchID     *uuid.UUID `json:"branch_id,omitempty" gorm:"type:uuid;index"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`

	// Relationships
	Branch *Branch `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
