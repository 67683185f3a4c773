package mocks

import (
	"context"

	"github.com/kejingzs/kejing-backend/internal/models"
	"github.com/kejingzs/kejing-backend/internal/services"
	"github.com/stretchr/testify/mock"
)

// MockCatalogService implements services.CatalogService
type MockCatalogService struct {
	mock.Mock
}

// UploadImage writes a file and inserts the catalog row
func (m *MockCatalogService) UploadImage(ctx context.Context, albumID uint, upload *services.ImageUpload) (*models.Image, error) {
	args := m.Called(ctx, albumID, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

// DeleteImage removes an image row and its stored file
func (m *MockCatalogService) DeleteImage(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// DeleteAlbum removes an album, its images and their stored files
func (m *MockCatalogService) DeleteAlbum(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// DeleteFolder removes a folder and everything filed under it
func (m *MockCatalogService) DeleteFolder(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
