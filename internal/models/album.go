package models

import (
	"time"
)

// Label classifies an album as commercial or residential work.
type Label string

const (
	LabelBusiness Label = "business"
	LabelHouse    Label = "house"
)

// IsValid reports whether the label is one of the known values.
func (l Label) IsValid() bool {
	return l == LabelBusiness || l == LabelHouse
}

// Album is a collection of images, optionally filed under a folder.
// An album with a NULL folder_id is unfiled and only reachable through
// the flat album listing.
type Album struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:100" json:"name"`
	Label       Label     `gorm:"not null;size:20;default:house" json:"label"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CoverImage  string    `gorm:"size:255" json:"cover_image,omitempty"`
	FolderID    *uint     `gorm:"index" json:"folder_id,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Folder *Folder `gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE" json:"-"`
	Images []Image `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

// TableName returns the table name for Album
func (Album) TableName() string {
	return "albums"
}

// AlbumUpdate enumerates the album fields that may change on a partial
// update. Nil fields are left untouched.
type AlbumUpdate struct {
	Name        *string `json:"name"`
	Label       *Label  `json:"label"`
	Description *string `json:"description"`
	CoverImage  *string `json:"cover_image"`
}
