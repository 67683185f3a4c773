package models

import (
	"time"
)

// Case is a published case study of a finished project. Date is kept as
// a free-form display string; it is not validated as a calendar date.
type Case struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:100" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Image       string    `gorm:"not null;size:255" json:"image"`
	Date        string    `gorm:"size:50" json:"date"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name for Case
func (Case) TableName() string {
	return "cases"
}

// CaseUpdate enumerates the case fields that may change on a partial
// update. Nil fields are left untouched.
type CaseUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Date        *string `json:"date"`
}
