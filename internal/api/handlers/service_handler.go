package handlers

import (
	"errors"

	"github.com/kejingzs/kejing-backend/internal/api/response"
	"github.com/kejingzs/kejing-backend/internal/models"
	"github.com/kejingzs/kejing-backend/internal/repository"
	"github.com/kejingzs/kejing-backend/internal/validator"
	"github.com/labstack/echo/v4"
)

// ServiceHandler handles service offering HTTP requests
type ServiceHandler struct {
	serviceRepo repository.ServiceRepository
}

// NewServiceHandler creates a new ServiceHandler
func NewServiceHandler(serviceRepo repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{serviceRepo: serviceRepo}
}

// CreateServiceRequest represents the request body for creating a service
type CreateServiceRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	DisplayOrder int    `json:"order"`
}

// UpdateServiceRequest represents the request body for updating a service
type UpdateServiceRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	DisplayOrder *int    `json:"order"`
}

// List handles GET /api/services
func (h *ServiceHandler) List(c echo.Context) error {
	limit, offset := paginationParams(c)

	services, total, err := h.serviceRepo.List(c.Request().Context(), limit, offset)
	if err != nil {
		return response.InternalError(c, "failed to list services")
	}

	return response.Paginated(c, services, total, limit, offset)
}

// Get handles GET /api/services/:id
func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid service ID")
	}

	service, err := h.serviceRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "service not found")
		}
		return response.InternalError(c, "failed to get service")
	}

	return response.Success(c, service)
}

// Create handles POST /api/services
func (h *ServiceHandler) Create(c echo.Context) error {
	var req CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}

	if err := validator.ValidateRequired(req.Name); err != nil {
		return response.UnprocessableEntity(c, "name is required")
	}

	service := &models.Service{
		Name:         validator.SanitizeString(req.Name, 100),
		Description:  req.Description,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
	}

	if err := h.serviceRepo.Create(c.Request().Context(), service); err != nil {
		return response.InternalError(c, "failed to create service")
	}

	return response.Created(c, service)
}

// Update handles PUT /api/services/:id
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid service ID")
	}

	var req UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}

	upd := &models.ServiceUpdate{
		Description:  req.Description,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
	}
	if req.Name != nil {
		name := validator.SanitizeString(*req.Name, 100)
		if name == "" {
			return response.UnprocessableEntity(c, "name cannot be empty")
		}
		upd.Name = &name
	}

	service, err := h.serviceRepo.Update(c.Request().Context(), id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "service not found")
		}
		return response.InternalError(c, "failed to update service")
	}

	return response.Success(c, service)
}

// Delete handles DELETE /api/services/:id
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid service ID")
	}

	if err := h.serviceRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "service not found")
		}
		return response.InternalError(c, "failed to delete service")
	}

	return response.NoContent(c)
}
