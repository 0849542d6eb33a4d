package service

import (
	"image"

	"github.com/golang/geo/r2"

	"github.com/fielddisc/discstats-backend-go/internal/density"
	"github.com/fielddisc/discstats-backend-go/internal/field"
	"github.com/fielddisc/discstats-backend-go/internal/models"
)

// HeatmapService derives density surfaces from filtered event sets
type HeatmapService struct {
	analytics *AnalyticsService
}

// NewHeatmapService creates a new heatmap service
func NewHeatmapService(analytics *AnalyticsService) *HeatmapService {
	return &HeatmapService{analytics: analytics}
}

// Grid computes the normalized intensity grid for the filtered point
// set. A degenerate point set returns an empty cell list, never an
// error.
func (s *HeatmapService) Grid(gameID int64, hf models.HeatmapFilter) (*models.HeatmapResponse, error) {
	points, err := s.points(gameID, hf)
	if err != nil {
		return nil, err
	}

	f := density.Accumulate(points)
	resp := &models.HeatmapResponse{
		Rows:       f.Rows(),
		Cols:       f.Cols(),
		CellSize:   density.CellSize,
		Surface:    hf.Surface,
		PointCount: len(points),
		Cells:      []models.HeatmapCell{},
	}

	intensities, ok := f.Intensities()
	if !ok {
		return resp, nil
	}

	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Cols(); c++ {
			if v := intensities[r][c]; v > 0 {
				resp.Cells = append(resp.Cells, models.HeatmapCell{Row: r, Col: c, Intensity: v})
			}
		}
	}
	return resp, nil
}

// Image renders the colored canvas-sized surface for PNG output
func (s *HeatmapService) Image(gameID int64, hf models.HeatmapFilter) (*image.NRGBA, error) {
	points, err := s.points(gameID, hf)
	if err != nil {
		return nil, err
	}
	return density.Render(points), nil
}

// points applies the filter state and projects the requested surface
// (event origins or destinations) into canvas coordinates. Events
// missing the requested endpoint contribute nothing.
func (s *HeatmapService) points(gameID int64, hf models.HeatmapFilter) ([]r2.Point, error) {
	events, err := s.analytics.FilteredEvents(gameID, hf.FilterState)
	if err != nil {
		return nil, err
	}

	var points []r2.Point
	for _, e := range events {
		var c *models.Coordinate
		if hf.Surface == models.SurfaceDestination {
			c = e.Destination
		} else {
			c = e.Origin
		}
		if c == nil {
			continue
		}
		points = append(points, field.ToCanvas(*c))
	}
	return points, nil
}
