package handlers

import (
	"errors"
	"time"

	"github.com/kejingzs/kejing-backend/internal/api/response"
	"github.com/kejingzs/kejing-backend/internal/models"
	"github.com/kejingzs/kejing-backend/internal/repository"
	"github.com/kejingzs/kejing-backend/internal/validator"
	"github.com/kejingzs/kejing-backend/internal/websocket"
	"github.com/labstack/echo/v4"
)

// ContactHandler handles contact submission HTTP requests. Create is
// the only public operation; everything else lives behind admin auth.
type ContactHandler struct {
	contactRepo repository.ContactRepository
	hub         *websocket.Hub
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactRepo repository.ContactRepository, hub *websocket.Hub) *ContactHandler {
	return &ContactHandler{contactRepo: contactRepo, hub: hub}
}

// CreateContactRequest represents a visitor's contact form submission
type CreateContactRequest struct {
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// Create handles POST /api/contact (public)
func (h *ContactHandler) Create(c echo.Context) error {
	var req CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return response.UnprocessableEntity(c, "invalid request body")
	}

	if err := validator.ValidateRequired(req.Name); err != nil {
		return response.UnprocessableEntity(c, "name is required")
	}
	if err := validator.ValidateRequired(req.Phone); err != nil {
		return response.UnprocessableEntity(c, "phone is required")
	}
	if err := validator.ValidateEmail(req.Email); err != nil {
		if errors.Is(err, validator.ErrEmptyInput) {
			return response.UnprocessableEntity(c, "email is required")
		}
		return response.UnprocessableEntity(c, "invalid email address")
	}
	if err := validator.ValidateRequired(req.Message); err != nil {
		return response.UnprocessableEntity(c, "message is required")
	}

	contact := &models.Contact{
		Name:    validator.SanitizeString(req.Name, 100),
		Phone:   validator.SanitizeString(req.Phone, 20),
		Email:   validator.SanitizeString(req.Email, 100),
		Message: validator.SanitizeString(req.Message, 2000),
	}

	if err := h.contactRepo.Create(c.Request().Context(), contact); err != nil {
		return response.InternalError(c, "failed to save contact")
	}

	if h.hub != nil {
		h.hub.BroadcastContactCreated(&websocket.ContactCreatedPayload{
			ID:        contact.ID,
			Name:      contact.Name,
			Email:     contact.Email,
			CreatedAt: contact.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return response.Created(c, contact)
}

// List handles GET /api/admin/contacts
func (h *ContactHandler) List(c echo.Context) error {
	limit, offset := paginationParams(c)

	contacts, total, err := h.contactRepo.List(c.Request().Context(), limit, offset)
	if err != nil {
		return response.InternalError(c, "failed to list contacts")
	}

	return response.Paginated(c, contacts, total, limit, offset)
}

// Get handles GET /api/admin/contacts/:id
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid contact ID")
	}

	contact, err := h.contactRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "contact not found")
		}
		return response.InternalError(c, "failed to get contact")
	}

	return response.Success(c, contact)
}

// MarkRead handles PUT /api/admin/contacts/:id/read. The flag only
// moves one way; re-marking a read submission is a no-op.
func (h *ContactHandler) MarkRead(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid contact ID")
	}

	contact, err := h.contactRepo.MarkRead(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "contact not found")
		}
		return response.InternalError(c, "failed to mark contact read")
	}

	return response.Success(c, contact)
}

// Delete handles DELETE /api/admin/contacts/:id
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.UnprocessableEntity(c, "invalid contact ID")
	}

	if err := h.contactRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.NotFound(c, "contact not found")
		}
		return response.InternalError(c, "failed to delete contact")
	}

	return response.NoContent(c)
}
