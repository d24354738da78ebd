package models

// Branch represents a dealership branch
type Branch struct {
	BaseModel
	Name     string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	City     string `json:"city" gorm:"size:100"`
	Address  string `json:"address" gorm:"size:255"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for Branch
func (Branch) TableName() string {
	return "branches"
}
