package models

import (
	"time"
)

// Service is one entry of the renovation services list shown on the
// public site, ordered by DisplayOrder ascending.
type Service struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null;size:100" json:"name"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Icon         string    `gorm:"size:50" json:"icon,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0" json:"order"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name for Service
func (Service) TableName() string {
	return "services"
}

// ServiceUpdate enumerates the service fields that may change on a
// partial update. Nil fields are left untouched.
type ServiceUpdate struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	DisplayOrder *int    `json:"order"`
}
