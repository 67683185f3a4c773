package handlers

import (
	"errors"
	"strconv"

	"github.com/kejingzs/kejing-backend/internal/api/response"
	"github.com/kejingzs/kejing-backend/internal/models"
	"github.com/kejingzs/kejing-backend/internal/repository"
	"github.com/kejingzs/kejing-backend/internal/services"
	"github.com/kejingzs/kejing-backend/internal/validator"
	"github.com/labstack/echo/v4"
)

// FolderHandler handles folder-related HTTP requests
type FolderHandler struct {
	folderRepo repository.FolderRepository
	albumRepo  repository.AlbumRepository
	catalog    services.CatalogService
}

// NewFolderHandler creates a new FolderHandler
func NewFolderHandler(folderRepo repository.FolderRepository, albumRepo repository.AlbumRepository, catalog services.CatalogService) *FolderHandler {
	return &FolderHandler{
		folderRepo: folderRepo,
		albumRepo:  albumRepo,
		catalog:    catalog,
	}
}

// CreateFolderRequest represents the request body for creating a folder
type CreateFolderRequest struct {
	Name string `json:"name"`
}

// UpdateFolderRequest represents the request body for updating a folder
type UpdateFolderRequest struct {
	Name *string `json:"name"`
}

// List handles GET /api/folders
func (h *FolderHandler) List(c echo.Context) error {
	limit, offset := paginationParams(c)

	folders, total, err := h.folderRepo.List(c.Request().Context(), limit, offset)
	if err != nil {
		return response.InternalError(c, "failed to list folders")
	}

	return response.Paginated(c, folders, total, limit, offset)
}

// Get handles GET /api/folders/:id and returns the folder with its albums
func (h *FolderHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid folder ID")
	}

	folder, err := h.folderRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "folder not found")
		}
		return response.InternalError(c, "failed to get folder")
	}

	albums, _, err := h.albumRepo.ListByFolder(c.Request().Context(), id, validator.MaxLimit, 0)
	if err != nil {
		return response.InternalError(c, "failed to list folder albums")
	}

	return response.Success(c, map[string]interface{}{
		"folder": folder,
		"albums": albums,
	})
}

// ListAlbums handles GET /api/folders/:id/albums with pagination
func (h *FolderHandler) ListAlbums(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid folder ID")
	}

	if _, err := h.folderRepo.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "folder not found")
		}
		return response.InternalError(c, "failed to get folder")
	}

	limit, offset := paginationParams(c)
	albums, total, err := h.albumRepo.ListByFolder(c.Request().Context(), id, limit, offset)
	if err != nil {
		return response.InternalError(c, "failed to list folder albums")
	}

	return response.Paginated(c, albums, total, limit, offset)
}

// Create handles POST /api/folders
func (h *FolderHandler) Create(c echo.Context) error {
	var req CreateFolderRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}

	if err := validator.ValidateRequired(req.Name); err != nil {
		return response.UnprocessableEntity(c, "name is required")
	}

	folder := &models.Folder{Name: validator.SanitizeString(req.Name, 100)}
	if err := h.folderRepo.Create(c.Request().Context(), folder); err != nil {
		return response.InternalError(c, "failed to create folder")
	}

	return response.Created(c, folder)
}

// Update handles PUT /api/folders/:id
func (h *FolderHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid folder ID")
	}

	var req UpdateFolderRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}

	upd := &models.FolderUpdate{}
	if req.Name != nil {
		name := validator.SanitizeString(*req.Name, 100)
		if name == "" {
			return response.UnprocessableEntity(c, "name cannot be empty")
		}
		upd.Name = &name
	}

	folder, err := h.folderRepo.Update(c.Request().Context(), id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "folder not found")
		}
		return response.InternalError(c, "failed to update folder")
	}

	return response.Success(c, folder)
}

// Delete handles DELETE /api/folders/:id. The folder's albums, their
// images and all stored files go with it.
func (h *FolderHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid folder ID")
	}

	if err := h.catalog.DeleteFolder(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "folder not found")
		}
		return response.InternalError(c, "failed to delete folder")
	}

	return response.NoContent(c)
}

// parseID extracts the numeric :id path parameter
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// paginationParams extracts and sanitizes limit/offset query parameters
func paginationParams(c echo.Context) (int, int) {
	limit := 0
	offset := 0

	if l := c.QueryParam("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			limit = parsed
		}
	}
	if o := c.QueryParam("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil {
			offset = parsed
		}
	}

	return validator.ValidatePagination(limit, offset)
}
