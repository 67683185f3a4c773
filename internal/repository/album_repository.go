package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kejingzs/kejing-backend/internal/models"
	"gorm.io/gorm"
)

// AlbumRepository defines the interface for album data access.
// Album deletion cascades through images and their files and is owned by
// the catalog service.
type AlbumRepository interface {
	Create(ctx context.Context, album *models.Album) error
	GetByID(ctx context.Context, id uint) (*models.Album, error)
	GetWithImages(ctx context.Context, id uint) (*models.Album, error)
	List(ctx context.Context, label *models.Label, limit, offset int) ([]models.Album, int64, error)
	ListByFolder(ctx context.Context, folderID uint, limit, offset int) ([]models.Album, int64, error)
	Update(ctx context.Context, id uint, upd *models.AlbumUpdate) (*models.Album, error)
}

// albumRepository implements AlbumRepository using GORM
type albumRepository struct {
	db *gorm.DB
}

// NewAlbumRepository creates a new AlbumRepository instance
func NewAlbumRepository(db *gorm.DB) AlbumRepository {
	return &albumRepository{db: db}
}

// Create creates a new album
func (r *albumRepository) Create(ctx context.Context, album *models.Album) error {
	result := r.db.WithContext(ctx).Create(album)
	if result.Error != nil {
		return fmt.Errorf("failed to create album: %w", result.Error)
	}
	return nil
}

// GetByID retrieves an album by its ID without its images
func (r *albumRepository) GetByID(ctx context.Context, id uint) (*models.Album, error) {
	var album models.Album
	result := r.db.WithContext(ctx).First(&album, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get album by ID: %w", result.Error)
	}
	return &album, nil
}

// GetWithImages retrieves an album with its images preloaded newest-first
func (r *albumRepository) GetWithImages(ctx context.Context, id uint) (*models.Album, error) {
	var album models.Album
	result := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("images.created_at DESC, images.id DESC")
		}).
		First(&album, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get album by ID: %w", result.Error)
	}
	return &album, nil
}

// List retrieves albums newest-first, optionally filtered by label
func (r *albumRepository) List(ctx context.Context, label *models.Label, limit, offset int) ([]models.Album, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Album{})
	if label != nil {
		query = query.Where("label = ?", *label)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count albums: %w", err)
	}

	var albums []models.Album
	result := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&albums)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list albums: %w", result.Error)
	}
	return albums, total, nil
}

// ListByFolder retrieves the albums owned by a folder, newest-first
func (r *albumRepository) ListByFolder(ctx context.Context, folderID uint, limit, offset int) ([]models.Album, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Album{}).Where("folder_id = ?", folderID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count albums: %w", err)
	}

	var albums []models.Album
	result := r.db.WithContext(ctx).
		Where("folder_id = ?", folderID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&albums)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list albums by folder: %w", result.Error)
	}
	return albums, total, nil
}

// Update applies a partial update; only non-nil fields are written
func (r *albumRepository) Update(ctx context.Context, id uint, upd *models.AlbumUpdate) (*models.Album, error) {
	album, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Label != nil {
		fields["label"] = *upd.Label
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.CoverImage != nil {
		fields["cover_image"] = *upd.CoverImage
	}
	if len(fields) == 0 {
		return album, nil
	}

	result := r.db.WithContext(ctx).Model(album).Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update album: %w", result.Error)
	}
	return album, nil
}
