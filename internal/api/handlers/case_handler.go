package handlers

import (
	"errors"

	"github.com/kejingzs/kejing-backend/internal/api/response"
	"github.com/kejingzs/kejing-backend/internal/models"
	"github.com/kejingzs/kejing-backend/internal/repository"
	"github.com/kejingzs/kejing-backend/internal/validator"
	"github.com/labstack/echo/v4"
)

// CaseHandler handles case study HTTP requests
type CaseHandler struct {
	caseRepo repository.CaseRepository
}

// NewCaseHandler creates a new CaseHandler
func NewCaseHandler(caseRepo repository.CaseRepository) *CaseHandler {
	return &CaseHandler{caseRepo: caseRepo}
}

// CreateCaseRequest represents the request body for creating a case study.
// Date is free-form display text ("2025-11", "Spring 2024"); it is
// stored verbatim.
type CreateCaseRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Date        string `json:"date"`
}

// UpdateCaseRequest represents the request body for updating a case study
type UpdateCaseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Date        *string `json:"date"`
}

// List handles GET /api/cases
func (h *CaseHandler) List(c echo.Context) error {
	limit, offset := paginationParams(c)

	cases, total, err := h.caseRepo.List(c.Request().Context(), limit, offset)
	if err != nil {
		return response.InternalError(c, "failed to list cases")
	}

	return response.Paginated(c, cases, total, limit, offset)
}

// Get handles GET /api/cases/:id
func (h *CaseHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid case ID")
	}

	result, err := h.caseRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "case not found")
		}
		return response.InternalError(c, "failed to get case")
	}

	return response.Success(c, result)
}

// Create handles POST /api/cases
func (h *CaseHandler) Create(c echo.Context) error {
	var req CreateCaseRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}

	if err := validator.ValidateRequired(req.Title); err != nil {
		return response.UnprocessableEntity(c, "title is required")
	}

	result := &models.Case{
		Title:       validator.SanitizeString(req.Title, 200),
		Description: req.Description,
		Image:       req.Image,
		Date:        req.Date,
	}

	if err := h.caseRepo.Create(c.Request().Context(), result); err != nil {
		return response.InternalError(c, "failed to create case")
	}

	return response.Created(c, result)
}

// Update handles PUT /api/cases/:id
func (h *CaseHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid case ID")
	}

	var req UpdateCaseRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}

	upd := &models.CaseUpdate{
		Description: req.Description,
		Image:       req.Image,
		Date:        req.Date,
	}
	if req.Title != nil {
		title := validator.SanitizeString(*req.Title, 200)
		if title == "" {
			return response.UnprocessableEntity(c, "title cannot be empty")
		}
		upd.Title = &title
	}

	result, err := h.caseRepo.Update(c.Request().Context(), id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "case not found")
		}
		return response.InternalError(c, "failed to update case")
	}

	return response.Success(c, result)
}

// Delete handles DELETE /api/cases/:id
func (h *CaseHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid case ID")
	}

	if err := h.caseRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "case not found")
		}
		return response.InternalError(c, "failed to delete case")
	}

	return response.NoContent(c)
}
