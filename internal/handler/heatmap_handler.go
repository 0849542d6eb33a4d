package handler

import (
	"bytes"
	"image/png"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fielddisc/discstats-backend-go/internal/models"
	"github.com/fielddisc/discstats-backend-go/internal/service"
	"github.com/fielddisc/discstats-backend-go/pkg/response"
)

// HeatmapHandler handles HTTP requests for density surfaces
type HeatmapHandler struct {
	service *service.HeatmapService
}

// NewHeatmapHandler creates a new heatmap handler
func NewHeatmapHandler(service *service.HeatmapService) *HeatmapHandler {
	return &HeatmapHandler{service: service}
}

// GetHeatmap handles GET /api/v1/games/:id/analytics/heatmap
func (h *HeatmapHandler) GetHeatmap(c *gin.Context) {
	gameID, ok := gameIDParam(c)
	if !ok {
		return
	}

	var hf models.HeatmapFilter
	if err := c.ShouldBindQuery(&hf); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	if hf.Surface == "" {
		hf.Surface = models.SurfaceOrigin
	}
	if hf.Surface != models.SurfaceOrigin && hf.Surface != models.SurfaceDestination {
		response.BadRequest(c, "surface must be origin or destination", nil)
		return
	}

	if hf.Format == "png" {
		h.servePNG(c, gameID, hf)
		return
	}

	grid, err := h.service.Grid(gameID, hf)
	if err != nil {
		response.InternalError(c, "Failed to compute heatmap", err)
		return
	}

	response.Success(c, grid)
}

// servePNG renders and streams the colored surface
func (h *HeatmapHandler) servePNG(c *gin.Context, gameID int64, hf models.HeatmapFilter) {
	img, err := h.service.Image(gameID, hf)
	if err != nil {
		response.InternalError(c, "Failed to render heatmap", err)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		response.InternalError(c, "Failed to encode heatmap", err)
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
