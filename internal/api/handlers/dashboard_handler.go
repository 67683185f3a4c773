package handlers

import (
	"github.com/kejingzs/kejing-backend/internal/api/response"
	"github.com/kejingzs/kejing-backend/internal/models"
	"github.com/kejingzs/kejing-backend/internal/repository"
	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the admin dashboard summary
type DashboardHandler struct {
	statsRepo   repository.StatsRepository
	contactRepo repository.ContactRepository
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(statsRepo repository.StatsRepository, contactRepo repository.ContactRepository) *DashboardHandler {
	return &DashboardHandler{statsRepo: statsRepo, contactRepo: contactRepo}
}

// DashboardResponse bundles the statistics with the most recent
// contact submissions for the admin landing page.
type DashboardResponse struct {
	Statistics     *models.Statistics `json:"statistics"`
	RecentContacts []models.Contact   `json:"recent_contacts"`
}

// recentContactCount is how many submissions the dashboard shows
const recentContactCount = 5

// Get handles GET /api/admin/dashboard
func (h *DashboardHandler) Get(c echo.Context) error {
	stats, err := h.statsRepo.GetStatistics(c.Request().Context())
	if err != nil {
		return response.InternalError(c, "failed to compute statistics")
	}

	// Contacts list in insertion order; take the tail for the newest
	offset := 0
	if stats.ContactCount > recentContactCount {
		offset = int(stats.ContactCount) - recentContactCount
	}
	contacts, _, err := h.contactRepo.List(c.Request().Context(), recentContactCount, offset)
	if err != nil {
		return response.InternalError(c, "failed to list recent contacts")
	}

	return response.Success(c, DashboardResponse{
		Statistics:     stats,
		RecentContacts: contacts,
	})
}
