package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kejingzs/kejing-backend/internal/models"
	"gorm.io/gorm"
)

// FolderRepository defines the interface for folder data access.
// Folder deletion cascades through albums and images and is owned by the
// catalog service, not this repository.
type FolderRepository interface {
	Create(ctx context.Context, folder *models.Folder) error
	GetByID(ctx context.Context, id uint) (*models.Folder, error)
	List(ctx context.Context, limit, offset int) ([]models.Folder, int64, error)
	Update(ctx context.Context, id uint, upd *models.FolderUpdate) (*models.Folder, error)
}

// folderRepository implements FolderRepository using GORM
type folderRepository struct {
	db *gorm.DB
}

// NewFolderRepository creates a new FolderRepository instance
func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &folderRepository{db: db}
}

// Create creates a new folder
func (r *folderRepository) Create(ctx context.Context, folder *models.Folder) error {
	result := r.db.WithContext(ctx).Create(folder)
	if result.Error != nil {
		return fmt.Errorf("failed to create folder: %w", result.Error)
	}
	return nil
}

// GetByID retrieves a folder by its ID
func (r *folderRepository) GetByID(ctx context.Context, id uint) (*models.Folder, error) {
	var folder models.Folder
	result := r.db.WithContext(ctx).First(&folder, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get folder by ID: %w", result.Error)
	}
	return &folder, nil
}

// List retrieves folders in insertion order with pagination
func (r *folderRepository) List(ctx context.Context, limit, offset int) ([]models.Folder, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Folder{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count folders: %w", err)
	}

	var folders []models.Folder
	result := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&folders)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list folders: %w", result.Error)
	}
	return folders, total, nil
}

// Update applies a partial update; only non-nil fields are written
func (r *folderRepository) Update(ctx context.Context, id uint, upd *models.FolderUpdate) (*models.Folder, error) {
	folder, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if len(fields) == 0 {
		return folder, nil
	}

	result := r.db.WithContext(ctx).Model(folder).Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update folder: %w", result.Error)
	}
	return folder, nil
}
