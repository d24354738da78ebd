package models

import (
	"github.com/google/uuid"
)

// Lead represents a sales enquiry. AssignedTo is nil until the assignment
// engine or a manual action picks a CRE; the engine only ever writes it
// through a conditional update so two concurrent triggers cannot both win.
type Lead struct {
	BaseModel
	CustomerName  string     `json:"customer_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	PhoneNumber   string     `json:"phone_number" gorm:"size:20;index"`
	Email         string     `json:"email" gorm:"size:255"`
	VehicleModel  string     `json:"vehicle_model" gorm:"size:100"`
	SourceID      uuid.UUID  `json:"source_id" gorm:"type:uuid;not null;index;index:idx_leads_source_external,unique" validate:"required"`
	BranchID      *uuid.UUID `json:"branch_id,omitempty" gorm:"type:uuid;index"`
	AssignedTo    *uuid.UUID `json:"assigned_to,omitempty" gorm:"type:uuid;index"`
	Status        LeadStatus `json:"status" gorm:"type:varchar(20);not null;default:'new'"`
	// ExternalID carries the upstream identifier of ingested leads
	// (Meta leadgen id, call log uuid) and is the dedup key per source.
	ExternalID string `json:"external_id,omitempty" gorm:"size:100;index:idx_leads_source_external,unique,where:external_id <> ''"`
	Remarks    string `json:"remarks" gorm:"type:text"`

	// Relationships
	Source   Source  `json:"source,omitempty" gorm:"foreignKey:SourceID"`
	Branch   *Branch `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
	Assignee *User   `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}
