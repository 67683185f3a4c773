// Package services contains domain services that coordinate the
// database and the media store where a single repository is not enough.
package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	apperrors "github.com/kejingzs/kejing-backend/internal/errors"
	"github.com/kejingzs/kejing-backend/internal/models"
	"github.com/kejingzs/kejing-backend/internal/repository"
	"github.com/kejingzs/kejing-backend/internal/storage"
	"gorm.io/gorm"
)

// CatalogService owns the operations that touch both catalog rows and
// stored files: uploads and cascade deletes. Row deletion is
// transactional; file removal is best-effort and never fails the
// operation once the rows are gone.
type CatalogService interface {
	UploadImage(ctx context.Context, albumID uint, upload *ImageUpload) (*models.Image, error)
	DeleteImage(ctx context.Context, id uint) error
	DeleteAlbum(ctx context.Context, id uint) error
	DeleteFolder(ctx context.Context, id uint) error
}

// ImageUpload carries the metadata and content of one upload
type ImageUpload struct {
	Filename    string
	Description string
	ContentType string
	Size        int64
	Content     io.Reader
}

type catalogService struct {
	db        *gorm.DB
	albumRepo repository.AlbumRepository
	imageRepo repository.ImageRepository
	store     storage.FileStorage
	logger    *slog.Logger
}

// NewCatalogService creates a CatalogService
func NewCatalogService(db *gorm.DB, albumRepo repository.AlbumRepository, imageRepo repository.ImageRepository, store storage.FileStorage, logger *slog.Logger) CatalogService {
	return &catalogService{
		db:        db,
		albumRepo: albumRepo,
		imageRepo: imageRepo,
		store:     store,
		logger:    logger,
	}
}

// UploadImage validates the target album, writes the file, then inserts
// the catalog row. The file is written first so a row never points at
// missing bytes; if the insert fails the file is removed again.
func (s *catalogService) UploadImage(ctx context.Context, albumID uint, upload *ImageUpload) (*models.Image, error) {
	if _, err := s.albumRepo.GetByID(ctx, albumID); err != nil {
		return nil, err
	}

	if err := storage.ValidateFile(upload.Filename, upload.Size); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	path, err := s.store.Save(albumID, upload.Filename, upload.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrStorageWrite, err.Error())
	}

	image := &models.Image{
		AlbumID:     albumID,
		DisplayName: upload.Filename,
		StoragePath: path,
		Description: upload.Description,
		ContentType: upload.ContentType,
		SizeBytes:   upload.Size,
	}

	if err := s.imageRepo.Create(ctx, image); err != nil {
		// Roll back the file so no orphan bytes remain
		if delErr := s.store.Delete(path); delErr != nil && s.logger != nil {
			s.logger.Warn("failed to remove file after insert failure",
				slog.String("path", path),
				slog.Any("error", delErr))
		}
		return nil, err
	}

	return image, nil
}

// DeleteImage removes the catalog row, then the backing file. A failed
// file removal is logged and swallowed; the row is already gone and the
// operation has succeeded from the caller's point of view.
func (s *catalogService) DeleteImage(ctx context.Context, id uint) error {
	image, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.imageRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeFiles([]string{image.StoragePath})
	return nil
}

// DeleteAlbum removes an album, all its image rows and their files.
// Rows go in one transaction; files are removed after commit.
func (s *catalogService) DeleteAlbum(ctx context.Context, id uint) error {
	var paths []string
	err := s.db.WithContext(ctx).
		Model(&models.Image{}).
		Where("album_id = ?", id).
		Pluck("storage_path", &paths).Error
	if err != nil {
		return fmt.Errorf("failed to collect image paths: %w", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("album_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return fmt.Errorf("failed to delete album images: %w", err)
		}

		result := tx.Delete(&models.Album{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete album: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.removeFiles(paths)
	return nil
}

// DeleteFolder removes a folder, its albums, their image rows and all
// backing files. Albums without a folder are untouched.
func (s *catalogService) DeleteFolder(ctx context.Context, id uint) error {
	var paths []string
	err := s.db.WithContext(ctx).
		Model(&models.Image{}).
		Joins("JOIN albums ON albums.id = images.album_id").
		Where("albums.folder_id = ?", id).
		Pluck("images.storage_path", &paths).Error
	if err != nil {
		return fmt.Errorf("failed to collect image paths: %w", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("album_id IN (?)", tx.Model(&models.Album{}).Select("id").Where("folder_id = ?", id)).
			Delete(&models.Image{}).Error; err != nil {
			return fmt.Errorf("failed to delete folder images: %w", err)
		}

		if err := tx.Where("folder_id = ?", id).Delete(&models.Album{}).Error; err != nil {
			return fmt.Errorf("failed to delete folder albums: %w", err)
		}

		result := tx.Delete(&models.Folder{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete folder: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.removeFiles(paths)
	return nil
}

// removeFiles deletes stored files best-effort, logging failures
func (s *catalogService) removeFiles(paths []string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := s.store.Delete(path); err != nil && s.logger != nil {
			s.logger.Warn("failed to remove stored file",
				slog.String("path", path),
				slog.Any("error", err))
		}
	}
}
