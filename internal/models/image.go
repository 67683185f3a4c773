package models

import (
	"time"
)

// Image is a catalog row bound 1:1 to a file on the media store. The row
// and the file are created and destroyed together; StoragePath is the
// file's location relative to the content root and is never taken from
// user input.
type Image struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AlbumID     uint      `gorm:"not null;index" json:"album_id"`
	DisplayName string    `gorm:"not null;size:255" json:"display_name"`
	StoragePath string    `gorm:"not null;size:500" json:"storage_path"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	ContentType string    `gorm:"size:100" json:"content_type,omitempty"`
	SizeBytes   int64     `json:"size_bytes,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Album Album `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName returns the table name for Image
func (Image) TableName() string {
	return "images"
}

// ImageUpdate enumerates the image fields that may change on a partial
// update. The storage path is deliberately absent: the file location is
// owned by the media store and never edited through the API.
type ImageUpdate struct {
	DisplayName *string `json:"display_name"`
	Description *string `json:"description"`
	AlbumID     *uint   `json:"album_id"`
}
