package handlers

import (
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/kejingzs/kejing-backend/internal/api/response"
	apperrors "github.com/kejingzs/kejing-backend/internal/errors"
	"github.com/kejingzs/kejing-backend/internal/logger"
	"github.com/kejingzs/kejing-backend/internal/models"
	"github.com/kejingzs/kejing-backend/internal/repository"
	"github.com/kejingzs/kejing-backend/internal/services"
	"github.com/kejingzs/kejing-backend/internal/storage"
	"github.com/kejingzs/kejing-backend/internal/validator"
	"github.com/kejingzs/kejing-backend/internal/websocket"
	"github.com/labstack/echo/v4"
)

// ImageHandler handles image-related HTTP requests
type ImageHandler struct {
	imageRepo repository.ImageRepository
	albumRepo repository.AlbumRepository
	catalog   services.CatalogService
	store     storage.FileStorage
	hub       *websocket.Hub
	secLog    *logger.SecurityLogger
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(imageRepo repository.ImageRepository, albumRepo repository.AlbumRepository, catalog services.CatalogService, store storage.FileStorage, hub *websocket.Hub, secLog *logger.SecurityLogger) *ImageHandler {
	return &ImageHandler{
		imageRepo: imageRepo,
		albumRepo: albumRepo,
		catalog:   catalog,
		store:     store,
		hub:       hub,
		secLog:    secLog,
	}
}

// UpdateImageRequest represents the request body for updating image metadata
type UpdateImageRequest struct {
	DisplayName *string `json:"display_name"`
	Description *string `json:"description"`
	AlbumID     *uint   `json:"album_id"`
}

// List handles GET /api/images with an optional ?album_id= filter
func (h *ImageHandler) List(c echo.Context) error {
	limit, offset := paginationParams(c)

	if a := c.QueryParam("album_id"); a != "" {
		albumID, err := strconv.ParseUint(a, 10, 32)
		if err != nil {
			return response.UnprocessableEntity(c, "invalid album_id")
		}
		images, total, err := h.imageRepo.ListByAlbum(c.Request().Context(), uint(albumID), limit, offset)
		if err != nil {
			return response.InternalError(c, "failed to list images")
		}
		return response.Paginated(c, images, total, limit, offset)
	}

	images, total, err := h.imageRepo.List(c.Request().Context(), limit, offset)
	if err != nil {
		return response.InternalError(c, "failed to list images")
	}

	return response.Paginated(c, images, total, limit, offset)
}

// ListByAlbum handles GET /api/albums/:id/images with pagination
func (h *ImageHandler) ListByAlbum(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid album ID")
	}

	if _, err := h.albumRepo.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "album not found")
		}
		return response.InternalError(c, "failed to get album")
	}

	limit, offset := paginationParams(c)
	images, total, err := h.imageRepo.ListByAlbum(c.Request().Context(), id, limit, offset)
	if err != nil {
		return response.InternalError(c, "failed to list album images")
	}

	return response.Paginated(c, images, total, limit, offset)
}

// Get handles GET /api/images/:id and returns image metadata
func (h *ImageHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid image ID")
	}

	image, err := h.imageRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "image not found")
		}
		return response.InternalError(c, "failed to get image")
	}

	return response.Success(c, image)
}

// GetFile handles GET /api/images/:id/file and streams the stored bytes
func (h *ImageHandler) GetFile(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid image ID")
	}

	image, err := h.imageRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "image not found")
		}
		return response.InternalError(c, "failed to get image")
	}

	rc, err := h.store.Get(image.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			// Row exists but bytes are gone: storage drift
			return response.NotFound(c, "image file not found")
		}
		if errors.Is(err, storage.ErrPathTraversal) && h.secLog != nil {
			h.secLog.PathTraversalAttempt(c.RealIP(), c.Path(), image.StoragePath)
		}
		return response.InternalError(c, "failed to open image file")
	}
	defer rc.Close()

	contentType := image.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+validator.SanitizeFilename(image.DisplayName)+`"`)
	return c.Stream(200, contentType, rc)
}

// Upload handles POST /api/upload (multipart form: album_id, file,
// optional description)
func (h *ImageHandler) Upload(c echo.Context) error {
	albumIDStr := c.FormValue("album_id")
	if albumIDStr == "" {
		return response.UnprocessableEntity(c, "album_id is required")
	}
	albumID, err := strconv.ParseUint(albumIDStr, 10, 32)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid album_id")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.UnprocessableEntity(c, "file is required")
	}

	if err := storage.ValidateFile(fileHeader.Filename, fileHeader.Size); err != nil {
		if h.secLog != nil {
			h.secLog.BlockedFileUpload(c.RealIP(), fileHeader.Filename, err.Error())
		}
		return response.UnprocessableEntity(c, err.Error())
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.InternalError(c, "failed to read upload")
	}
	defer src.Close()

	var content io.Reader = src

	image, err := h.catalog.UploadImage(c.Request().Context(), uint(albumID), &services.ImageUpload{
		Filename:    validator.SanitizeFilename(fileHeader.Filename),
		Description: c.FormValue("description"),
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     content,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return response.NotFound(c, "album not found")
		case errors.Is(err, apperrors.ErrValidation):
			return response.UnprocessableEntity(c, err.Error())
		case errors.Is(err, apperrors.ErrStorageWrite):
			return response.Error(c, apperrors.ErrStorageWrite)
		default:
			return response.InternalError(c, "failed to store image")
		}
	}

	if h.hub != nil {
		h.hub.BroadcastImageUploaded(&websocket.ImageUploadedPayload{
			ID:          image.ID,
			AlbumID:     image.AlbumID,
			DisplayName: image.DisplayName,
			CreatedAt:   image.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return response.Created(c, image)
}

// Update handles PUT /api/images/:id. Only metadata moves; the stored
// file stays where it is even when the image changes album.
func (h *ImageHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid image ID")
	}

	var req UpdateImageRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}

	if req.AlbumID != nil {
		if _, err := h.albumRepo.GetByID(c.Request().Context(), *req.AlbumID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return response.NotFound(c, "album not found")
			}
			return response.InternalError(c, "failed to verify album")
		}
	}

	upd := &models.ImageUpdate{
		Description: req.Description,
		AlbumID:     req.AlbumID,
	}
	if req.DisplayName != nil {
		name := validator.SanitizeFilename(*req.DisplayName)
		upd.DisplayName = &name
	}

	image, err := h.imageRepo.Update(c.Request().Context(), id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "image not found")
		}
		return response.InternalError(c, "failed to update image")
	}

	return response.Success(c, image)
}

// Delete handles DELETE /api/images/:id
func (h *ImageHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid image ID")
	}

	if err := h.catalog.DeleteImage(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "image not found")
		}
		return response.InternalError(c, "failed to delete image")
	}

	return response.NoContent(c)
}
