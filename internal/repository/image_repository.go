package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kejingzs/kejing-backend/internal/models"
	"gorm.io/gorm"
)

// ImageRepository defines the interface for image data access. Rows only
// reference files; the physical bytes are owned by the media store and
// coordinated through the catalog service.
type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, id uint) (*models.Image, error)
	List(ctx context.Context, limit, offset int) ([]models.Image, int64, error)
	ListByAlbum(ctx context.Context, albumID uint, limit, offset int) ([]models.Image, int64, error)
	Update(ctx context.Context, id uint, upd *models.ImageUpdate) (*models.Image, error)
	Delete(ctx context.Context, id uint) error
}

// imageRepository implements ImageRepository using GORM
type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new ImageRepository instance
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

// Create creates a new image row
func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	result := r.db.WithContext(ctx).Create(image)
	if result.Error != nil {
		return fmt.Errorf("failed to create image: %w", result.Error)
	}
	return nil
}

// GetByID retrieves an image by its ID
func (r *imageRepository) GetByID(ctx context.Context, id uint) (*models.Image, error) {
	var image models.Image
	result := r.db.WithContext(ctx).First(&image, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get image by ID: %w", result.Error)
	}
	return &image, nil
}

// List retrieves images newest-first with pagination
func (r *imageRepository) List(ctx context.Context, limit, offset int) ([]models.Image, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Image{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count images: %w", err)
	}

	var images []models.Image
	result := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&images)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list images: %w", result.Error)
	}
	return images, total, nil
}

// ListByAlbum retrieves the images of an album, newest-first
func (r *imageRepository) ListByAlbum(ctx context.Context, albumID uint, limit, offset int) ([]models.Image, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Image{}).Where("album_id = ?", albumID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count images: %w", err)
	}

	var images []models.Image
	result := r.db.WithContext(ctx).
		Where("album_id = ?", albumID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&images)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list images by album: %w", result.Error)
	}
	return images, total, nil
}

// Update applies a partial update; only non-nil fields are written. The
// storage path is never updatable.
func (r *imageRepository) Update(ctx context.Context, id uint, upd *models.ImageUpdate) (*models.Image, error) {
	image, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if upd.DisplayName != nil {
		fields["display_name"] = *upd.DisplayName
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.AlbumID != nil {
		fields["album_id"] = *upd.AlbumID
	}
	if len(fields) == 0 {
		return image, nil
	}

	result := r.db.WithContext(ctx).Model(image).Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update image: %w", result.Error)
	}
	return image, nil
}

// Delete deletes an image row by its ID. The caller is responsible for
// removing the backing file afterwards.
func (r *imageRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Image{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
