package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fielddisc/discstats-backend-go/internal/models"
	"github.com/fielddisc/discstats-backend-go/internal/service"
	"github.com/fielddisc/discstats-backend-go/pkg/response"
)

// AnalyticsHandler handles HTTP requests for filter analytics
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetFilterCounts handles GET /api/v1/games/:id/analytics/filter-counts
func (h *AnalyticsHandler) GetFilterCounts(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var fs models.FilterState
	if err := c.ShouldBindQuery(&fs); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	counts, err := h.service.FilterCounts(gameID, fs)
	if err != nil {
		response.InternalError(c, "Failed to compute filter counts", err)
		return
	}

	response.Success(c, counts)
}

// GetFilteredEvents handles GET /api/v1/games/:id/analytics/events
func (h *AnalyticsHandler) GetFilteredEvents(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var fs models.FilterState
	if err := c.ShouldBindQuery(&fs); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	events, err := h.service.FilteredEvents(gameID, fs)
	if err != nil {
		response.InternalError(c, "Failed to filter events", err)
		return
	}

	response.Success(c, models.EventsResponse{Data: events, Count: len(events)})
}
