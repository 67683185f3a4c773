package fixtures

import (
	"fmt"
	"time"

	"github.com/kejingzs/kejing-backend/internal/models"
)

// FolderBuilder creates test Folder instances with fluent API
type FolderBuilder struct {
	folder models.Folder
}

// NewFolderBuilder creates a new FolderBuilder with sensible defaults
func NewFolderBuilder() *FolderBuilder {
	now := time.Now()
	return &FolderBuilder{
		folder: models.Folder{
			ID:        1,
			Name:      "Living Rooms",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the folder ID
func (b *FolderBuilder) WithID(id uint) *FolderBuilder {
	b.folder.ID = id
	return b
}

// WithName sets the folder name
func (b *FolderBuilder) WithName(name string) *FolderBuilder {
	b.folder.Name = name
	return b
}

// Build returns the constructed Folder
func (b *FolderBuilder) Build() *models.Folder {
	return &b.folder
}

// BuildValue returns the constructed Folder as a value (not pointer)
func (b *FolderBuilder) BuildValue() models.Folder {
	return b.folder
}

// AlbumBuilder creates test Album instances with fluent API
type AlbumBuilder struct {
	album models.Album
}

// NewAlbumBuilder creates a new AlbumBuilder with sensible defaults
func NewAlbumBuilder() *AlbumBuilder {
	now := time.Now()
	return &AlbumBuilder{
		album: models.Album{
			ID:        1,
			Name:      "Modern Kitchen",
			Label:     models.LabelHouse,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// WithID sets the album ID
func (b *AlbumBuilder) WithID(id uint) *AlbumBuilder {
	b.album.ID = id
	return b
}

// WithName sets the album name
func (b *AlbumBuilder) WithName(name string) *AlbumBuilder {
	b.album.Name = name
	return b
}

// WithLabel sets the album label
func (b *AlbumBuilder) WithLabel(label models.Label) *AlbumBuilder {
	b.album.Label = label
	return b
}

// WithDescription sets the album description
func (b *AlbumBuilder) WithDescription(description string) *AlbumBuilder {
	b.album.Description = description
	return b
}

// WithFolderID files the album under a folder
func (b *AlbumBuilder) WithFolderID(folderID uint) *AlbumBuilder {
	b.album.FolderID = &folderID
	return b
}

// WithImages sets the preloaded images
func (b *AlbumBuilder) WithImages(images []models.Image) *AlbumBuilder {
	b.album.Images = images
	return b
}

// Build returns the constructed Album
func (b *AlbumBuilder) Build() *models.Album {
	return &b.album
}

// BuildValue returns the constructed Album as a value (not pointer)
func (b *AlbumBuilder) BuildValue() models.Album {
	return b.album
}

// ImageBuilder creates test Image instances with fluent API
type ImageBuilder struct {
	image models.Image
}

// NewImageBuilder creates a new ImageBuilder with sensible defaults
func NewImageBuilder() *ImageBuilder {
	now := time.Now()
	return &ImageBuilder{
		image: models.Image{
			ID:          1,
			AlbumID:     1,
			DisplayName: "before.jpg",
			StoragePath: "1/20250101120000_abcd1234.jpg",
			ContentType: "image/jpeg",
			SizeBytes:   2048,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// WithID sets the image ID
func (b *ImageBuilder) WithID(id uint) *ImageBuilder {
	b.image.ID = id
	return b
}

// WithAlbumID sets the owning album
func (b *ImageBuilder) WithAlbumID(albumID uint) *ImageBuilder {
	b.image.AlbumID = albumID
	return b
}

// WithDisplayName sets the display name
func (b *ImageBuilder) WithDisplayName(name string) *ImageBuilder {
	b.image.DisplayName = name
	return b
}

// WithStoragePath sets the storage path
func (b *ImageBuilder) WithStoragePath(path string) *ImageBuilder {
	b.image.StoragePath = path
	return b
}

// Build returns the constructed Image
func (b *ImageBuilder) Build() *models.Image {
	return &b.image
}

// BuildValue returns the constructed Image as a value (not pointer)
func (b *ImageBuilder) BuildValue() models.Image {
	return b.image
}

// ServiceBuilder creates test Service instances with fluent API
type ServiceBuilder struct {
	service models.Service
}

// NewServiceBuilder creates a new ServiceBuilder with sensible defaults
func NewServiceBuilder() *ServiceBuilder {
	now := time.Now()
	return &ServiceBuilder{
		service: models.Service{
			ID:           1,
			Name:         "Full Renovation",
			Description:  "Complete home renovation from demolition to finish.",
			Icon:         "hammer",
			DisplayOrder: 1,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

// WithID sets the service ID
func (b *ServiceBuilder) WithID(id uint) *ServiceBuilder {
	b.service.ID = id
	return b
}

// WithName sets the service name
func (b *ServiceBuilder) WithName(name string) *ServiceBuilder {
	b.service.Name = name
	return b
}

// WithDisplayOrder sets the display order
func (b *ServiceBuilder) WithDisplayOrder(order int) *ServiceBuilder {
	b.service.DisplayOrder = order
	return b
}

// Build returns the constructed Service
func (b *ServiceBuilder) Build() *models.Service {
	return &b.service
}

// BuildValue returns the constructed Service as a value (not pointer)
func (b *ServiceBuilder) BuildValue() models.Service {
	return b.service
}

// CaseBuilder creates test Case instances with fluent API
type CaseBuilder struct {
	c models.Case
}

// NewCaseBuilder creates a new CaseBuilder with sensible defaults
func NewCaseBuilder() *CaseBuilder {
	now := time.Now()
	return &CaseBuilder{
		c: models.Case{
			ID:          1,
			Title:       "Downtown Loft",
			Description: "Open-plan loft conversion finished in eight weeks.",
			Image:       "/uploads/cases/loft.jpg",
			Date:        "Spring 2025",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// WithID sets the case ID
func (b *CaseBuilder) WithID(id uint) *CaseBuilder {
	b.c.ID = id
	return b
}

// WithTitle sets the case title
func (b *CaseBuilder) WithTitle(title string) *CaseBuilder {
	b.c.Title = title
	return b
}

// WithDate sets the free-form display date
func (b *CaseBuilder) WithDate(date string) *CaseBuilder {
	b.c.Date = date
	return b
}

// Build returns the constructed Case
func (b *CaseBuilder) Build() *models.Case {
	return &b.c
}

// BuildValue returns the constructed Case as a value (not pointer)
func (b *CaseBuilder) BuildValue() models.Case {
	return b.c
}

// ContactBuilder creates test Contact instances with fluent API
type ContactBuilder struct {
	contact models.Contact
}

// NewContactBuilder creates a new ContactBuilder with sensible defaults
func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{
		contact: models.Contact{
			ID:        1,
			Name:      "Zhang Wei",
			Phone:     "13800138000",
			Email:     "zhang@example.com",
			Message:   "I would like a quote for a kitchen remodel.",
			IsRead:    false,
			CreatedAt: time.Now(),
		},
	}
}

// WithID sets the contact ID
func (b *ContactBuilder) WithID(id uint) *ContactBuilder {
	b.contact.ID = id
	return b
}

// WithName sets the contact name
func (b *ContactBuilder) WithName(name string) *ContactBuilder {
	b.contact.Name = name
	return b
}

// WithRead sets the read flag
func (b *ContactBuilder) WithRead(read bool) *ContactBuilder {
	b.contact.IsRead = read
	return b
}

// Build returns the constructed Contact
func (b *ContactBuilder) Build() *models.Contact {
	return &b.contact
}

// BuildValue returns the constructed Contact as a value (not pointer)
func (b *ContactBuilder) BuildValue() models.Contact {
	return b.contact
}

// Helper functions for creating multiple test entities

// CreateAlbums creates a slice of albums with sequential IDs
func CreateAlbums(count int) []models.Album {
	albums := make([]models.Album, count)
	for i := 0; i < count; i++ {
		albums[i] = NewAlbumBuilder().
			WithID(uint(i + 1)).
			WithName(fmt.Sprintf("Album %d", i+1)).
			BuildValue()
	}
	return albums
}

// CreateImages creates a slice of images for a given album
func CreateImages(albumID uint, count int) []models.Image {
	images := make([]models.Image, count)
	for i := 0; i < count; i++ {
		images[i] = NewImageBuilder().
			WithID(uint(i + 1)).
			WithAlbumID(albumID).
			WithDisplayName(fmt.Sprintf("photo-%d.jpg", i+1)).
			WithStoragePath(fmt.Sprintf("%d/20250101120000_%08d.jpg", albumID, i+1)).
			BuildValue()
	}
	return images
}

// CreateContacts creates a slice of contact submissions with sequential IDs
func CreateContacts(count int) []models.Contact {
	contacts := make([]models.Contact, count)
	for i := 0; i < count; i++ {
		contacts[i] = NewContactBuilder().
			WithID(uint(i + 1)).
			WithName(fmt.Sprintf("Visitor %d", i+1)).
			BuildValue()
	}
	return contacts
}
