package models

import (
	"time"
)

// Contact is an inbound contact-form submission. Rows are immutable
// after creation except for the read flag, which only ever moves from
// unread to read.
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Phone     string    `gorm:"not null;size:20" json:"phone"`
	Email     string    `gorm:"not null;size:100" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}
