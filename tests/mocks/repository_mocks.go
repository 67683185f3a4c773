package mocks

import (
	"context"

	"github.com/kejingzs/kejing-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockFolderRepository implements repository.FolderRepository
type MockFolderRepository struct {
	mock.Mock
}

// Create creates a new folder
func (m *MockFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	args := m.Called(ctx, folder)
	return args.Error(0)
}

// GetByID retrieves a folder by its ID
func (m *MockFolderRepository) GetByID(ctx context.Context, id uint) (*models.Folder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Folder), args.Error(1)
}

// List retrieves folders with pagination
func (m *MockFolderRepository) List(ctx context.Context, limit, offset int) ([]models.Folder, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Folder), args.Get(1).(int64), args.Error(2)
}

// Update applies a partial update to a folder
func (m *MockFolderRepository) Update(ctx context.Context, id uint, upd *models.FolderUpdate) (*models.Folder, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Folder), args.Error(1)
}

// MockAlbumRepository implements repository.AlbumRepository
type MockAlbumRepository struct {
	mock.Mock
}

// Create creates a new album
func (m *MockAlbumRepository) Create(ctx context.Context, album *models.Album) error {
	args := m.Called(ctx, album)
	return args.Error(0)
}

// GetByID retrieves an album by its ID
func (m *MockAlbumRepository) GetByID(ctx context.Context, id uint) (*models.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}

// GetWithImages retrieves an album with its images preloaded
func (m *MockAlbumRepository) GetWithImages(ctx context.Context, id uint) (*models.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}

// List retrieves albums, optionally filtered by label
func (m *MockAlbumRepository) List(ctx context.Context, label *models.Label, limit, offset int) ([]models.Album, int64, error) {
	args := m.Called(ctx, label, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Album), args.Get(1).(int64), args.Error(2)
}

// ListByFolder retrieves the albums filed under a folder
func (m *MockAlbumRepository) ListByFolder(ctx context.Context, folderID uint, limit, offset int) ([]models.Album, int64, error) {
	args := m.Called(ctx, folderID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Album), args.Get(1).(int64), args.Error(2)
}

// Update applies a partial update to an album
func (m *MockAlbumRepository) Update(ctx context.Context, id uint, upd *models.AlbumUpdate) (*models.Album, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Album), args.Error(1)
}

// MockImageRepository implements repository.ImageRepository
type MockImageRepository struct {
	mock.Mock
}

// Create creates a new image row
func (m *MockImageRepository) Create(ctx context.Context, image *models.Image) error {
	args := m.Called(ctx, image)
	return args.Error(0)
}

// GetByID retrieves an image by its ID
func (m *MockImageRepository) GetByID(ctx context.Context, id uint) (*models.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

// List retrieves images with pagination
func (m *MockImageRepository) List(ctx context.Context, limit, offset int) ([]models.Image, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Image), args.Get(1).(int64), args.Error(2)
}

// ListByAlbum retrieves the images inside an album
func (m *MockImageRepository) ListByAlbum(ctx context.Context, albumID uint, limit, offset int) ([]models.Image, int64, error) {
	args := m.Called(ctx, albumID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Image), args.Get(1).(int64), args.Error(2)
}

// Update applies a partial update to an image
func (m *MockImageRepository) Update(ctx context.Context, id uint, upd *models.ImageUpdate) (*models.Image, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

// Delete deletes an image row by its ID
func (m *MockImageRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockServiceRepository implements repository.ServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

// Create creates a new service offering
func (m *MockServiceRepository) Create(ctx context.Context, service *models.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

// GetByID retrieves a service by its ID
func (m *MockServiceRepository) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

// List retrieves services ordered by display order
func (m *MockServiceRepository) List(ctx context.Context, limit, offset int) ([]models.Service, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Service), args.Get(1).(int64), args.Error(2)
}

// Update applies a partial update to a service
func (m *MockServiceRepository) Update(ctx context.Context, id uint, upd *models.ServiceUpdate) (*models.Service, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

// Delete deletes a service by its ID
func (m *MockServiceRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCaseRepository implements repository.CaseRepository
type MockCaseRepository struct {
	mock.Mock
}

// Create creates a new case study
func (m *MockCaseRepository) Create(ctx context.Context, c *models.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// GetByID retrieves a case study by its ID
func (m *MockCaseRepository) GetByID(ctx context.Context, id uint) (*models.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Case), args.Error(1)
}

// List retrieves case studies with pagination
func (m *MockCaseRepository) List(ctx context.Context, limit, offset int) ([]models.Case, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Case), args.Get(1).(int64), args.Error(2)
}

// Update applies a partial update to a case study
func (m *MockCaseRepository) Update(ctx context.Context, id uint, upd *models.CaseUpdate) (*models.Case, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Case), args.Error(1)
}

// Delete deletes a case study by its ID
func (m *MockCaseRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContactRepository implements repository.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

// Create creates a new contact submission
func (m *MockContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

// GetByID retrieves a contact submission by its ID
func (m *MockContactRepository) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

// List retrieves contact submissions with pagination
func (m *MockContactRepository) List(ctx context.Context, limit, offset int) ([]models.Contact, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Contact), args.Get(1).(int64), args.Error(2)
}

// MarkRead flips a contact submission to read
func (m *MockContactRepository) MarkRead(ctx context.Context, id uint) (*models.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

// Delete deletes a contact submission by its ID
func (m *MockContactRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// CountUnread counts unread contact submissions
func (m *MockContactRepository) CountUnread(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockStatsRepository implements repository.StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

// GetStatistics computes current entity counts across the catalog
func (m *MockStatsRepository) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Statistics), args.Error(1)
}
