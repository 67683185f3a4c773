package models

import (
	"time"
)

// Folder groups albums in the gallery tree. Deleting a folder removes
// every album it owns together with their images and files.
type Folder struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Albums []Album `gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for Folder
func (Folder) TableName() string {
	return "folders"
}

// FolderUpdate enumerates the folder fields that may change on a partial
// update. Nil fields are left untouched.
type FolderUpdate struct {
	Name *string `json:"name"`
}
