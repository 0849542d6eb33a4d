package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fielddisc/discstats-backend-go/internal/models"
	"github.com/fielddisc/discstats-backend-go/internal/service"
	"github.com/fielddisc/discstats-backend-go/pkg/response"
)

// EventHandler handles HTTP requests for games and raw events
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(service *service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// CreateGame handles POST /api/v1/games
func (h *EventHandler) CreateGame(c *gin.Context) {
	var game models.Game
	if err := c.ShouldBindJSON(&game); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	id, err := h.service.CreateGame(&game)
	if err != nil {
		response.BadRequest(c, "Failed to create game", err)
		return
	}

	response.Success(c, gin.H{"id": id})
}

// ListGames handles GET /api/v1/games
func (h *EventHandler) ListGames(c *gin.Context) {
	games, err := h.service.ListGames()
	if err != nil {
		response.InternalError(c, "Failed to list games", err)
		return
	}

	response.Success(c, gin.H{
		"data":  games,
		"count": len(games),
	})
}

// IngestEvents handles POST /api/v1/games/:id/events
func (h *EventHandler) IngestEvents(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var events []models.Event
	if err := c.ShouldBindJSON(&events); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	if err := h.service.IngestEvents(gameID, events); err != nil {
		response.BadRequest(c, "Failed to ingest events", err)
		return
	}

	response.Success(c, gin.H{"ingested": len(events)})
}

// GetEvents handles GET /api/v1/games/:id/events
func (h *EventHandler) GetEvents(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	events, err := h.service.GetEvents(gameID, c.Query("side"))
	if err != nil {
		response.InternalError(c, "Failed to get events", err)
		return
	}

	response.Success(c, models.EventsResponse{Data: events, Count: len(events)})
}

// gameIDParam parses the :id path parameter, replying 400 on failure
func gameIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid game id", err)
		return 0, false
	}
	return id, true
}
