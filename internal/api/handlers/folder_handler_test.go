package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kejingzs/kejing-backend/internal/api/response"
	"github.com/kejingzs/kejing-backend/internal/models"
	"github.com/kejingzs/kejing-backend/internal/repository"
	"github.com/kejingzs/kejing-backend/tests/fixtures"
	"github.com/kejingzs/kejing-backend/tests/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// FolderHandlerTestSuite is the test suite for FolderHandler
type FolderHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	handler     *FolderHandler
	mockRepo    *mocks.MockFolderRepository
	mockAlbums  *mocks.MockAlbumRepository
	mockCatalog *mocks.MockCatalogService
}

// SetupTest runs before each test
func (s *FolderHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.mockRepo = new(mocks.MockFolderRepository)
	s.mockAlbums = new(mocks.MockAlbumRepository)
	s.mockCatalog = new(mocks.MockCatalogService)
	s.handler = NewFolderHandler(s.mockRepo, s.mockAlbums, s.mockCatalog)
}

// TearDownTest runs after each test
func (s *FolderHandlerTestSuite) TearDownTest() {
	s.mockRepo.AssertExpectations(s.T())
	s.mockAlbums.AssertExpectations(s.T())
	s.mockCatalog.AssertExpectations(s.T())
}

// TestFolderHandlerTestSuite runs the test suite
func TestFolderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FolderHandlerTestSuite))
}

// Helper function to create a test context
func (s *FolderHandlerTestSuite) createContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	return c, rec
}

// parseAPIResponse parses the API response from the recorder
func parseAPIResponse(rec *httptest.ResponseRecorder) (*response.APIResponse, error) {
	var resp response.APIResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	return &resp, err
}

// parseErrorResponse parses the error response from the recorder
func parseErrorResponse(rec *httptest.ResponseRecorder) (*response.ErrorResponse, error) {
	var resp response.ErrorResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	return &resp, err
}

// ==================== Create Tests ====================

// TestCreate_ValidInput tests creating a folder with valid input
func (s *FolderHandlerTestSuite) TestCreate_ValidInput() {
	// Arrange
	body := `{"name": "Bathrooms"}`
	c, rec := s.createContext(http.MethodPost, "/api/folders", body)

	s.mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Folder")).
		Run(func(args mock.Arguments) {
			folder := args.Get(1).(*models.Folder)
			folder.ID = 1
		}).
		Return(nil)

	// Act
	err := s.handler.Create(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	resp, err := parseAPIResponse(rec)
	s.NoError(err)
	s.True(resp.Success)
}

// TestCreate_EmptyName tests creating a folder with an empty name
func (s *FolderHandlerTestSuite) TestCreate_EmptyName() {
	// Arrange
	body := `{"name": ""}`
	c, rec := s.createContext(http.MethodPost, "/api/folders", body)

	// Act
	err := s.handler.Create(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	resp, err := parseErrorResponse(rec)
	s.NoError(err)
	s.False(resp.Success)
	s.Contains(resp.Error, "name is required")
}

// TestCreate_InternalError tests creating a folder when the repository fails
func (s *FolderHandlerTestSuite) TestCreate_InternalError() {
	// Arrange
	body := `{"name": "Bathrooms"}`
	c, rec := s.createContext(http.MethodPost, "/api/folders", body)

	s.mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Folder")).
		Return(errors.New("database error"))

	// Act
	err := s.handler.Create(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
}

// ==================== Get Tests ====================

// TestGet_ReturnsFolderWithAlbums tests that Get returns the folder and its albums
func (s *FolderHandlerTestSuite) TestGet_ReturnsFolderWithAlbums() {
	// Arrange
	folder := fixtures.NewFolderBuilder().WithID(1).WithName("Kitchens").Build()
	albums := []models.Album{
		fixtures.NewAlbumBuilder().WithID(1).WithFolderID(1).BuildValue(),
		fixtures.NewAlbumBuilder().WithID(2).WithFolderID(1).BuildValue(),
	}
	c, rec := s.createContext(http.MethodGet, "/api/folders/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.mockRepo.On("GetByID", mock.Anything, uint(1)).Return(folder, nil)
	s.mockAlbums.On("ListByFolder", mock.Anything, uint(1), 100, 0).
		Return(albums, int64(2), nil)

	// Act
	err := s.handler.Get(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"folder"`)
	s.Contains(rec.Body.String(), `"albums"`)
}

// TestGet_NonExistentID tests getting a folder that does not exist
func (s *FolderHandlerTestSuite) TestGet_NonExistentID() {
	// Arrange
	c, rec := s.createContext(http.MethodGet, "/api/folders/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	s.mockRepo.On("GetByID", mock.Anything, uint(999)).Return(nil, repository.ErrNotFound)

	// Act
	err := s.handler.Get(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

// TestGet_InvalidID tests getting a folder with a non-numeric ID
func (s *FolderHandlerTestSuite) TestGet_InvalidID() {
	// Arrange
	c, rec := s.createContext(http.MethodGet, "/api/folders/invalid", "")
	c.SetParamNames("id")
	c.SetParamValues("invalid")

	// Act
	err := s.handler.Get(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

// ==================== List Tests ====================

// TestList_Success tests listing folders
func (s *FolderHandlerTestSuite) TestList_Success() {
	// Arrange
	folders := []models.Folder{
		fixtures.NewFolderBuilder().WithID(1).BuildValue(),
		fixtures.NewFolderBuilder().WithID(2).WithName("Offices").BuildValue(),
	}
	c, rec := s.createContext(http.MethodGet, "/api/folders", "")

	s.mockRepo.On("List", mock.Anything, 20, 0).Return(folders, int64(2), nil)

	// Act
	err := s.handler.List(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"total":2`)
}

// TestList_CustomPagination tests listing folders with limit and offset
func (s *FolderHandlerTestSuite) TestList_CustomPagination() {
	// Arrange
	c, rec := s.createContext(http.MethodGet, "/api/folders?limit=5&offset=10", "")

	s.mockRepo.On("List", mock.Anything, 5, 10).Return([]models.Folder{}, int64(0), nil)

	// Act
	err := s.handler.List(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

// TestList_InternalError tests listing folders when the repository fails
func (s *FolderHandlerTestSuite) TestList_InternalError() {
	// Arrange
	c, rec := s.createContext(http.MethodGet, "/api/folders", "")

	s.mockRepo.On("List", mock.Anything, 20, 0).Return(nil, int64(0), errors.New("database error"))

	// Act
	err := s.handler.List(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
}

// ==================== Update Tests ====================

// TestUpdate_ValidData tests renaming a folder
func (s *FolderHandlerTestSuite) TestUpdate_ValidData() {
	// Arrange
	updated := fixtures.NewFolderBuilder().WithID(1).WithName("Renamed").Build()
	body := `{"name": "Renamed"}`
	c, rec := s.createContext(http.MethodPut, "/api/folders/1", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.mockRepo.On("Update", mock.Anything, uint(1), mock.MatchedBy(func(upd *models.FolderUpdate) bool {
		return upd.Name != nil && *upd.Name == "Renamed"
	})).Return(updated, nil)

	// Act
	err := s.handler.Update(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

// TestUpdate_EmptyName tests that a blank name is rejected
func (s *FolderHandlerTestSuite) TestUpdate_EmptyName() {
	// Arrange
	body := `{"name": "   "}`
	c, rec := s.createContext(http.MethodPut, "/api/folders/1", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	// Act
	err := s.handler.Update(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

// TestUpdate_NonExistentID tests updating a folder that does not exist
func (s *FolderHandlerTestSuite) TestUpdate_NonExistentID() {
	// Arrange
	body := `{"name": "Renamed"}`
	c, rec := s.createContext(http.MethodPut, "/api/folders/999", body)
	c.SetParamNames("id")
	c.SetParamValues("999")

	s.mockRepo.On("Update", mock.Anything, uint(999), mock.AnythingOfType("*models.FolderUpdate")).
		Return(nil, repository.ErrNotFound)

	// Act
	err := s.handler.Update(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

// ==================== Delete Tests ====================

// TestDelete_CascadesThroughCatalog tests that delete goes through the catalog service
func (s *FolderHandlerTestSuite) TestDelete_CascadesThroughCatalog() {
	// Arrange
	c, rec := s.createContext(http.MethodDelete, "/api/folders/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	s.mockCatalog.On("DeleteFolder", mock.Anything, uint(1)).Return(nil)

	// Act
	err := s.handler.Delete(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusNoContent, rec.Code)
}

// TestDelete_NonExistentID tests deleting a folder that does not exist
func (s *FolderHandlerTestSuite) TestDelete_NonExistentID() {
	// Arrange
	c, rec := s.createContext(http.MethodDelete, "/api/folders/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	s.mockCatalog.On("DeleteFolder", mock.Anything, uint(999)).Return(repository.ErrNotFound)

	// Act
	err := s.handler.Delete(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

// TestDelete_InvalidID tests deleting a folder with a non-numeric ID
func (s *FolderHandlerTestSuite) TestDelete_InvalidID() {
	// Arrange
	c, rec := s.createContext(http.MethodDelete, "/api/folders/invalid", "")
	c.SetParamNames("id")
	c.SetParamValues("invalid")

	// Act
	err := s.handler.Delete(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

// ==================== ListAlbums Tests ====================

// TestListAlbums_ValidFolder tests listing a folder's albums with pagination
func (s *FolderHandlerTestSuite) TestListAlbums_ValidFolder() {
	// Arrange
	c, rec := s.createContext(http.MethodGet, "/api/folders/1/albums?limit=10&offset=5", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	folder := fixtures.NewFolderBuilder().WithID(1).Build()
	albums := fixtures.CreateAlbums(2)

	s.mockRepo.On("GetByID", mock.Anything, uint(1)).Return(folder, nil)
	s.mockAlbums.On("ListByFolder", mock.Anything, uint(1), 10, 5).Return(albums, int64(2), nil)

	// Act
	err := s.handler.ListAlbums(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp response.PaginatedResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Equal(int64(2), resp.Meta.Total)
}

// TestListAlbums_NonExistentFolder tests listing albums of a missing folder
func (s *FolderHandlerTestSuite) TestListAlbums_NonExistentFolder() {
	// Arrange
	c, rec := s.createContext(http.MethodGet, "/api/folders/999/albums", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	s.mockRepo.On("GetByID", mock.Anything, uint(999)).Return(nil, repository.ErrNotFound)

	// Act
	err := s.handler.ListAlbums(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

// TestListAlbums_InvalidID tests listing albums with a non-numeric folder ID
func (s *FolderHandlerTestSuite) TestListAlbums_InvalidID() {
	// Arrange
	c, rec := s.createContext(http.MethodGet, "/api/folders/invalid/albums", "")
	c.SetParamNames("id")
	c.SetParamValues("invalid")

	// Act
	err := s.handler.ListAlbums(c)

	// Assert
	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}
