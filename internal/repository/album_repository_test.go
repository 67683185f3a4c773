package repository

import (
	"context"
	"testing"
	"time"

	"github.com/kejingzs/kejing-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AlbumRepositoryTestSuite is the test suite for AlbumRepository
type AlbumRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repo       AlbumRepository
	folderRepo FolderRepository
	testFolder *models.Folder
}

// SetupSuite runs once before all tests
func (s *AlbumRepositoryTestSuite) SetupSuite() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	db.Exec("PRAGMA foreign_keys = ON")

	err = db.AutoMigrate(&models.Folder{}, &models.Album{}, &models.Image{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewAlbumRepository(db)
	s.folderRepo = NewFolderRepository(db)
}

// TearDownSuite runs once after all tests
func (s *AlbumRepositoryTestSuite) TearDownSuite() {
	sqlDB, _ := s.db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// SetupTest runs before each test - clean up data and create a test folder
func (s *AlbumRepositoryTestSuite) SetupTest() {
	s.db.Exec("DELETE FROM images")
	s.db.Exec("DELETE FROM albums")
	s.db.Exec("DELETE FROM folders")

	s.testFolder = &models.Folder{Name: "Showcase"}
	err := s.folderRepo.Create(context.Background(), s.testFolder)
	require.NoError(s.T(), err)
}

// TestAlbumRepositoryTestSuite runs the test suite
func TestAlbumRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AlbumRepositoryTestSuite))
}

// ==================== Create Tests ====================

func (s *AlbumRepositoryTestSuite) TestCreate_Success() {
	// Arrange
	album := &models.Album{
		Name:     "Loft Conversion",
		Label:    models.LabelHouse,
		FolderID: &s.testFolder.ID,
	}

	// Act
	err := s.repo.Create(context.Background(), album)

	// Assert
	assert.NoError(s.T(), err)
	assert.NotZero(s.T(), album.ID)
	assert.NotZero(s.T(), album.CreatedAt)
}

func (s *AlbumRepositoryTestSuite) TestCreate_Unfiled() {
	// Albums may exist without a parent folder
	album := &models.Album{Name: "Unfiled", Label: models.LabelBusiness}

	// Act
	err := s.repo.Create(context.Background(), album)

	// Assert
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), album.FolderID)
}

// ==================== GetByID / GetWithImages Tests ====================

func (s *AlbumRepositoryTestSuite) TestGetByID_Found() {
	// Arrange
	album := &models.Album{Name: "Terrace", Label: models.LabelHouse}
	err := s.repo.Create(context.Background(), album)
	require.NoError(s.T(), err)

	// Act
	result, err := s.repo.GetByID(context.Background(), album.ID)

	// Assert
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), result)
	assert.Equal(s.T(), "Terrace", result.Name)
	assert.Nil(s.T(), result.Images)
}

func (s *AlbumRepositoryTestSuite) TestGetByID_NotFound() {
	// Act
	result, err := s.repo.GetByID(context.Background(), 99999)

	// Assert
	assert.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, ErrNotFound)
	assert.Nil(s.T(), result)
}

func (s *AlbumRepositoryTestSuite) TestGetWithImages_NewestFirst() {
	// Arrange
	album := &models.Album{Name: "Garden", Label: models.LabelHouse}
	err := s.repo.Create(context.Background(), album)
	require.NoError(s.T(), err)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		img := &models.Image{
			AlbumID:     album.ID,
			DisplayName: "img" + string(rune('0'+i)),
			StoragePath: "garden/img" + string(rune('0'+i)) + ".jpg",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(s.T(), s.db.Create(img).Error)
	}

	// Act
	result, err := s.repo.GetWithImages(context.Background(), album.ID)

	// Assert
	assert.NoError(s.T(), err)
	require.Len(s.T(), result.Images, 3)
	assert.Equal(s.T(), "img2", result.Images[0].DisplayName)
	assert.Equal(s.T(), "img0", result.Images[2].DisplayName)
}

// ==================== List Tests ====================

func (s *AlbumRepositoryTestSuite) TestList_NewestFirst() {
	// Arrange
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		album := &models.Album{
			Name:      "Album " + string(rune('A'+i)),
			Label:     models.LabelHouse,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(s.T(), s.db.Create(album).Error)
	}

	// Act
	result, total, err := s.repo.List(context.Background(), nil, 10, 0)

	// Assert
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(3), total)
	require.Len(s.T(), result, 3)
	assert.Equal(s.T(), "Album C", result[0].Name)
	assert.Equal(s.T(), "Album A", result[2].Name)
}

func (s *AlbumRepositoryTestSuite) TestList_FilterByLabel() {
	// Arrange
	require.NoError(s.T(), s.repo.Create(context.Background(), &models.Album{Name: "Office", Label: models.LabelBusiness}))
	require.NoError(s.T(), s.repo.Create(context.Background(), &models.Album{Name: "Villa", Label: models.LabelHouse}))
	require.NoError(s.T(), s.repo.Create(context.Background(), &models.Album{Name: "Shop", Label: models.LabelBusiness}))

	label := models.LabelBusiness

	// Act
	result, total, err := s.repo.List(context.Background(), &label, 10, 0)

	// Assert
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), total)
	require.Len(s.T(), result, 2)
	for _, a := range result {
		assert.Equal(s.T(), models.LabelBusiness, a.Label)
	}
}

func (s *AlbumRepositoryTestSuite) TestListByFolder_ReturnsOnlyOwned() {
	// Arrange
	other := &models.Folder{Name: "Other"}
	require.NoError(s.T(), s.folderRepo.Create(context.Background(), other))

	require.NoError(s.T(), s.repo.Create(context.Background(), &models.Album{Name: "Inside", Label: models.LabelHouse, FolderID: &s.testFolder.ID}))
	require.NoError(s.T(), s.repo.Create(context.Background(), &models.Album{Name: "Elsewhere", Label: models.LabelHouse, FolderID: &other.ID}))
	require.NoError(s.T(), s.repo.Create(context.Background(), &models.Album{Name: "Unfiled", Label: models.LabelHouse}))

	// Act
	result, total, err := s.repo.ListByFolder(context.Background(), s.testFolder.ID, 10, 0)

	// Assert
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
	require.Len(s.T(), result, 1)
	assert.Equal(s.T(), "Inside", result[0].Name)
}

// ==================== Update Tests ====================

func (s *AlbumRepositoryTestSuite) TestUpdate_PartialFields() {
	// Arrange
	album := &models.Album{
		Name:        "Before",
		Label:       models.LabelHouse,
		Description: "original description",
	}
	err := s.repo.Create(context.Background(), album)
	require.NoError(s.T(), err)

	newName := "After"
	newLabel := models.LabelBusiness

	// Act - update name and label only
	updated, err := s.repo.Update(context.Background(), album.ID, &models.AlbumUpdate{
		Name:  &newName,
		Label: &newLabel,
	})

	// Assert
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "After", updated.Name)
	assert.Equal(s.T(), models.LabelBusiness, updated.Label)

	// Untouched field survives
	result, err := s.repo.GetByID(context.Background(), album.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "original description", result.Description)
}

func (s *AlbumRepositoryTestSuite) TestUpdate_CoverImage() {
	// Arrange
	album := &models.Album{Name: "Covers", Label: models.LabelHouse}
	err := s.repo.Create(context.Background(), album)
	require.NoError(s.T(), err)

	cover := "/uploads/1/cover.jpg"

	// Act
	updated, err := s.repo.Update(context.Background(), album.ID, &models.AlbumUpdate{CoverImage: &cover})

	// Assert
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), cover, updated.CoverImage)
}

func (s *AlbumRepositoryTestSuite) TestUpdate_NotFound() {
	// Arrange
	name := "ghost"

	// Act
	updated, err := s.repo.Update(context.Background(), 99999, &models.AlbumUpdate{Name: &name})

	// Assert
	assert.ErrorIs(s.T(), err, ErrNotFound)
	assert.Nil(s.T(), updated)
}
