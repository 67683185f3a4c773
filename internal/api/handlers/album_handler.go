package handlers

import (
	"errors"

	"github.com/kejingzs/kejing-backend/internal/api/response"
	"github.com/kejingzs/kejing-backend/internal/models"
	"github.com/kejingzs/kejing-backend/internal/repository"
	"github.com/kejingzs/kejing-backend/internal/services"
	"github.com/kejingzs/kejing-backend/internal/validator"
	"github.com/labstack/echo/v4"
)

// AlbumHandler handles album-related HTTP requests
type AlbumHandler struct {
	albumRepo  repository.AlbumRepository
	folderRepo repository.FolderRepository
	catalog    services.CatalogService
}

// NewAlbumHandler creates a new AlbumHandler
func NewAlbumHandler(albumRepo repository.AlbumRepository, folderRepo repository.FolderRepository, catalog services.CatalogService) *AlbumHandler {
	return &AlbumHandler{
		albumRepo:  albumRepo,
		folderRepo: folderRepo,
		catalog:    catalog,
	}
}

// CreateAlbumRequest represents the request body for creating an album
type CreateAlbumRequest struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
	CoverImage  string `json:"cover_image"`
	FolderID    *uint  `json:"folder_id"`
}

// UpdateAlbumRequest represents the request body for updating an album
type UpdateAlbumRequest struct {
	Name        *string `json:"name"`
	Label       *string `json:"label"`
	Description *string `json:"description"`
	CoverImage  *string `json:"cover_image"`
}

// List handles GET /api/albums with an optional ?label= filter
func (h *AlbumHandler) List(c echo.Context) error {
	limit, offset := paginationParams(c)

	var label *models.Label
	if l := c.QueryParam("label"); l != "" {
		if err := validator.ValidateLabel(l); err != nil {
			return response.UnprocessableEntity(c, "label must be business or house")
		}
		parsed := models.Label(l)
		label = &parsed
	}

	albums, total, err := h.albumRepo.List(c.Request().Context(), label, limit, offset)
	if err != nil {
		return response.InternalError(c, "failed to list albums")
	}

	return response.Paginated(c, albums, total, limit, offset)
}

// Get handles GET /api/albums/:id and returns the album with its images
func (h *AlbumHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid album ID")
	}

	album, err := h.albumRepo.GetWithImages(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "album not found")
		}
		return response.InternalError(c, "failed to get album")
	}

	return response.Success(c, album)
}

// Create handles POST /api/albums
func (h *AlbumHandler) Create(c echo.Context) error {
	var req CreateAlbumRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}

	if err := validator.ValidateRequired(req.Name); err != nil {
		return response.UnprocessableEntity(c, "name is required")
	}

	label := models.LabelHouse
	if req.Label != "" {
		if err := validator.ValidateLabel(req.Label); err != nil {
			return response.UnprocessableEntity(c, "label must be business or house")
		}
		label = models.Label(req.Label)
	}

	if req.FolderID != nil {
		if _, err := h.folderRepo.GetByID(c.Request().Context(), *req.FolderID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return response.NotFound(c, "folder not found")
			}
			return response.InternalError(c, "failed to verify folder")
		}
	}

	album := &models.Album{
		Name:        validator.SanitizeString(req.Name, 100),
		Label:       label,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		FolderID:    req.FolderID,
	}

	if err := h.albumRepo.Create(c.Request().Context(), album); err != nil {
		return response.InternalError(c, "failed to create album")
	}

	return response.Created(c, album)
}

// Update handles PUT /api/albums/:id
func (h *AlbumHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid album ID")
	}

	var req UpdateAlbumRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}

	upd := &models.AlbumUpdate{
		Description: req.Description,
		CoverImage:  req.CoverImage,
	}
	if req.Name != nil {
		name := validator.SanitizeString(*req.Name, 100)
		if name == "" {
			return response.UnprocessableEntity(c, "name cannot be empty")
		}
		upd.Name = &name
	}
	if req.Label != nil {
		if err := validator.ValidateLabel(*req.Label); err != nil {
			return response.UnprocessableEntity(c, "label must be business or house")
		}
		label := models.Label(*req.Label)
		upd.Label = &label
	}

	album, err := h.albumRepo.Update(c.Request().Context(), id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "album not found")
		}
		return response.InternalError(c, "failed to update album")
	}

	return response.Success(c, album)
}

// Delete handles DELETE /api/albums/:id. All the album's images and
// their stored files go with it.
func (h *AlbumHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid album ID")
	}

	if err := h.catalog.DeleteAlbum(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "album not found")
		}
		return response.InternalError(c, "failed to delete album")
	}

	return response.NoContent(c)
}
