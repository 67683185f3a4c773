package handlers

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kejingzs/kejing-backend/internal/models"
	"github.com/kejingzs/kejing-backend/internal/repository"
	"github.com/kejingzs/kejing-backend/internal/storage"
	"github.com/kejingzs/kejing-backend/tests/fixtures"
	"github.com/kejingzs/kejing-backend/tests/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// ImageHandlerTestSuite is the test suite for ImageHandler
type ImageHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	handler     *ImageHandler
	mockRepo    *mocks.MockImageRepository
	mockAlbums  *mocks.MockAlbumRepository
	mockCatalog *mocks.MockCatalogService
	mockStore   *mocks.MockFileStorage
}

// SetupTest runs before each test
func (s *ImageHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.mockRepo = new(mocks.MockImageRepository)
	s.mockAlbums = new(mocks.MockAlbumRepository)
	s.mockCatalog = new(mocks.MockCatalogService)
	s.mockStore = new(mocks.MockFileStorage)
	s.handler = NewImageHandler(s.mockRepo, s.mockAlbums, s.mockCatalog, s.mockStore, nil, nil)
}

// TearDownTest runs after each test
func (s *ImageHandlerTestSuite) TearDownTest() {
	s.mockRepo.AssertExpectations(s.T())
	s.mockAlbums.AssertExpectations(s.T())
	s.mockCatalog.AssertExpectations(s.T())
	s.mockStore.AssertExpectations(s.T())
}

// TestImageHandlerTestSuite runs the test suite
func TestImageHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ImageHandlerTestSuite))
}

// Helper function to create a test context
func (s *ImageHandlerTestSuite) createContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	return c, rec
}

// createUploadContext builds a multipart upload request
func (s *ImageHandlerTestSuite) createUploadContext(albumID, filename, content string) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if albumID != "" {
		_ = writer.WriteField("album_id", albumID)
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		s.Require().NoError(err)
		_, err = part.Write([]byte(content))
		s.Require().NoError(err)
	}
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	return c, rec
}

// ==================== List Tests ====================

// TestList_AllImages tests listing images without a filter
func (s *ImageHandlerTestSuite) TestList_AllImages() {
	// Arrange
	images := fixtures.CreateImages(1, 2)
	c, rec := s.createContext(http.MethodGet, "/api/images", "")

	s.mockRepo.On("List", mock.Anything, 20, 0).Return(images, int64(2), nil)

	// Act
	err := s.handler.List(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"total":2`)
}

// TestList_FilteredByAlbum tests listing images scoped to an album
func (s *ImageHandlerTestSuite) TestList_FilteredByAlbum() {
	// Arrange
	images := fixtures.CreateImages(5, 1)
	c, rec := s.createContext(http.MethodGet, "/api/images?album_id=5", "")

	s.mockRepo.On("ListByAlbum", mock.Anything, uint(5), 20, 0).Return(images, int64(1), nil)

	// Act
	err := s.handler.List(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

// TestList_InvalidAlbumID tests a non-numeric album_id filter
func (s *ImageHandlerTestSuite) TestList_InvalidAlbumID() {
	// Arrange
	c, rec := s.createContext(http.MethodGet, "/api/images?album_id=abc", "")

	// Act
	err := s.handler.List(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

// ==================== Get Tests ====================

// TestGet_ValidID tests getting image metadata
func (s *ImageHandlerTestSuite) TestGet_ValidID() {
	// Arrange
	image := fixtures.NewImageBuilder().WithID(1).Build()
	c, rec := s.createContext(http.MethodGet, "/api/images/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.mockRepo.On("GetByID", mock.Anything, uint(1)).Return(image, nil)

	// Act
	err := s.handler.Get(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"storage_path"`)
}

// TestGet_NonExistentID tests getting an image that does not exist
func (s *ImageHandlerTestSuite) TestGet_NonExistentID() {
	// Arrange
	c, rec := s.createContext(http.MethodGet, "/api/images/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	s.mockRepo.On("GetByID", mock.Anything, uint(999)).Return(nil, repository.ErrNotFound)

	// Act
	err := s.handler.Get(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

// ==================== GetFile Tests ====================

// TestGetFile_StreamsBytes tests streaming the stored file
func (s *ImageHandlerTestSuite) TestGetFile_StreamsBytes() {
	// Arrange
	image := fixtures.NewImageBuilder().WithID(1).Build()
	c, rec := s.createContext(http.MethodGet, "/api/images/1/file", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.mockRepo.On("GetByID", mock.Anything, uint(1)).Return(image, nil)
	s.mockStore.On("Get", image.StoragePath).
		Return(io.NopCloser(strings.NewReader("jpegbytes")), nil)

	// Act
	err := s.handler.GetFile(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("jpegbytes", rec.Body.String())
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "inline")
}

// TestGetFile_StorageDrift tests a row whose file has gone missing
func (s *ImageHandlerTestSuite) TestGetFile_StorageDrift() {
	// Arrange
	image := fixtures.NewImageBuilder().WithID(1).Build()
	c, rec := s.createContext(http.MethodGet, "/api/images/1/file", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.mockRepo.On("GetByID", mock.Anything, uint(1)).Return(image, nil)
	s.mockStore.On("Get", image.StoragePath).Return(nil, storage.ErrFileNotFound)

	// Act
	err := s.handler.GetFile(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

// ==================== Upload Tests ====================

// TestUpload_ValidFile tests a complete multipart upload
func (s *ImageHandlerTestSuite) TestUpload_ValidFile() {
	// Arrange
	stored := fixtures.NewImageBuilder().WithID(7).WithAlbumID(3).Build()
	c, rec := s.createUploadContext("3", "kitchen.jpg", "jpegbytes")

	s.mockCatalog.On("UploadImage", mock.Anything, uint(3), mock.AnythingOfType("*services.ImageUpload")).
		Return(stored, nil)

	// Act
	err := s.handler.Upload(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
}

// TestUpload_MissingAlbumID tests an upload without album_id
func (s *ImageHandlerTestSuite) TestUpload_MissingAlbumID() {
	// Arrange
	c, rec := s.createUploadContext("", "kitchen.jpg", "jpegbytes")

	// Act
	err := s.handler.Upload(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

// TestUpload_MissingFile tests an upload without a file part
func (s *ImageHandlerTestSuite) TestUpload_MissingFile() {
	// Arrange
	c, rec := s.createUploadContext("3", "", "")

	// Act
	err := s.handler.Upload(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

// TestUpload_BlockedExtension tests that executable uploads are refused
func (s *ImageHandlerTestSuite) TestUpload_BlockedExtension() {
	// Arrange
	c, rec := s.createUploadContext("3", "payload.exe", "MZ")

	// Act
	err := s.handler.Upload(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

// TestUpload_UnknownAlbum tests uploading into an album that does not exist
func (s *ImageHandlerTestSuite) TestUpload_UnknownAlbum() {
	// Arrange
	c, rec := s.createUploadContext("99", "kitchen.jpg", "jpegbytes")

	s.mockCatalog.On("UploadImage", mock.Anything, uint(99), mock.AnythingOfType("*services.ImageUpload")).
		Return(nil, repository.ErrNotFound)

	// Act
	err := s.handler.Upload(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

// ==================== Update Tests ====================

// TestUpdate_MetadataOnly tests that the update never touches the storage path
func (s *ImageHandlerTestSuite) TestUpdate_MetadataOnly() {
	// Arrange
	updated := fixtures.NewImageBuilder().WithID(1).WithDisplayName("after.jpg").Build()
	body := `{"display_name": "after.jpg"}`
	c, rec := s.createContext(http.MethodPut, "/api/images/1", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.mockRepo.On("Update", mock.Anything, uint(1), mock.MatchedBy(func(upd *models.ImageUpdate) bool {
		return upd.DisplayName != nil && *upd.DisplayName == "after.jpg" && upd.AlbumID == nil
	})).Return(updated, nil)

	// Act
	err := s.handler.Update(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

// TestUpdate_MoveToAlbum tests moving an image to a verified album
func (s *ImageHandlerTestSuite) TestUpdate_MoveToAlbum() {
	// Arrange
	album := fixtures.NewAlbumBuilder().WithID(4).Build()
	updated := fixtures.NewImageBuilder().WithID(1).WithAlbumID(4).Build()
	body := `{"album_id": 4}`
	c, rec := s.createContext(http.MethodPut, "/api/images/1", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.mockAlbums.On("GetByID", mock.Anything, uint(4)).Return(album, nil)
	s.mockRepo.On("Update", mock.Anything, uint(1), mock.MatchedBy(func(upd *models.ImageUpdate) bool {
		return upd.AlbumID != nil && *upd.AlbumID == 4
	})).Return(updated, nil)

	// Act
	err := s.handler.Update(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

// TestUpdate_MoveToUnknownAlbum tests moving an image to a missing album
func (s *ImageHandlerTestSuite) TestUpdate_MoveToUnknownAlbum() {
	// Arrange
	body := `{"album_id": 99}`
	c, rec := s.createContext(http.MethodPut, "/api/images/1", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.mockAlbums.On("GetByID", mock.Anything, uint(99)).Return(nil, repository.ErrNotFound)

	// Act
	err := s.handler.Update(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

// ==================== Delete Tests ====================

// TestDelete_RemovesRowAndFile tests that delete goes through the catalog service
func (s *ImageHandlerTestSuite) TestDelete_RemovesRowAndFile() {
	// Arrange
	c, rec := s.createContext(http.MethodDelete, "/api/images/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.mockCatalog.On("DeleteImage", mock.Anything, uint(1)).Return(nil)

	// Act
	err := s.handler.Delete(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusNoContent, rec.Code)
}

// TestDelete_NonExistentID tests deleting an image that does not exist
func (s *ImageHandlerTestSuite) TestDelete_NonExistentID() {
	// Arrange
	c, rec := s.createContext(http.MethodDelete, "/api/images/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	s.mockCatalog.On("DeleteImage", mock.Anything, uint(999)).Return(repository.ErrNotFound)

	// Act
	err := s.handler.Delete(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

// TestDelete_InternalError tests deleting an image when the cascade fails
func (s *ImageHandlerTestSuite) TestDelete_InternalError() {
	// Arrange
	c, rec := s.createContext(http.MethodDelete, "/api/images/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.mockCatalog.On("DeleteImage", mock.Anything, uint(1)).Return(errors.New("database error"))

	// Act
	err := s.handler.Delete(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
}

// ==================== ListByAlbum Tests ====================

// TestListByAlbum_ValidAlbum tests listing an album's images with pagination
func (s *ImageHandlerTestSuite) TestListByAlbum_ValidAlbum() {
	// Arrange
	c, rec := s.createContext(http.MethodGet, "/api/albums/5/images?limit=10", "")
	c.SetParamNames("id")
	c.SetParamValues("5")

	album := fixtures.NewAlbumBuilder().WithID(5).Build()
	images := fixtures.CreateImages(5, 3)

	s.mockAlbums.On("GetByID", mock.Anything, uint(5)).Return(album, nil)
	s.mockRepo.On("ListByAlbum", mock.Anything, uint(5), 10, 0).Return(images, int64(3), nil)

	// Act
	err := s.handler.ListByAlbum(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"total":3`)
}

// TestListByAlbum_NonExistentAlbum tests listing images of a missing album
func (s *ImageHandlerTestSuite) TestListByAlbum_NonExistentAlbum() {
	// Arrange
	c, rec := s.createContext(http.MethodGet, "/api/albums/999/images", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	s.mockAlbums.On("GetByID", mock.Anything, uint(999)).Return(nil, repository.ErrNotFound)

	// Act
	err := s.handler.ListByAlbum(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}
