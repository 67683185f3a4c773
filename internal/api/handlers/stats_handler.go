package handlers

import (
	"github.com/kejingzs/kejing-backend/internal/api/response"
	"github.com/kejingzs/kejing-backend/internal/repository"
	"github.com/labstack/echo/v4"
)

// StatsHandler handles dashboard statistics HTTP requests
type StatsHandler struct {
	statsRepo repository.StatsRepository
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsRepo repository.StatsRepository) *StatsHandler {
	return &StatsHandler{statsRepo: statsRepo}
}

// Get handles GET /api/admin/statistics. Counts are computed live on
// every call.
func (h *StatsHandler) Get(c echo.Context) error {
	stats, err := h.statsRepo.GetStatistics(c.Request().Context())
	if err != nil {
		return response.InternalError(c, "failed to compute statistics")
	}

	return response.Success(c, stats)
}
