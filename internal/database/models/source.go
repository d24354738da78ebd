package models

// Source represents a lead acquisition channel (Meta lead forms,
// call-tracking, walk-ins, website enquiries). The counters mirror the
// ingestion pipeline's bookkeeping: both are incremented when a lead is
// created, todays_leads_count is reset by the ingestion side at midnight.
type Source struct {
	BaseModel
	Name             string     `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	SourceType       SourceType `json:"source_type" gorm:"type:varchar(30);not null" validate:"required"`
	TotalLeadsCount  int64      `json:"total_leads_count" gorm:"default:0"`
	TodaysLeadsCount int64      `json:"todays_leads_count" gorm:"default:0"`
	IsActive         bool       `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for Source
func (Source) TableName() string {
	return "sources"
}
