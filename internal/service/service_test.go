package service

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/fielddisc/discstats-backend-go/internal/database"
	"github.com/fielddisc/discstats-backend-go/internal/field"
	"github.com/fielddisc/discstats-backend-go/internal/models"
	"github.com/fielddisc/discstats-backend-go/internal/repository"
)

func setup(t *testing.T) (*EventService, *AnalyticsService, *HeatmapService) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	repo := repository.NewEventRepository(db)
	events := NewEventService(repo)
	analytics := NewAnalyticsService(repo)
	heatmaps := NewHeatmapService(analytics)
	return events, analytics, heatmaps
}

func seedGame(t *testing.T, events *EventService) int64 {
	t.Helper()

	gameID, err := events.CreateGame(&models.Game{HomeTeam: "Flyers", AwayTeam: "Breeze"})
	require.NoError(t, err)

	coord := func(x, y float64) *models.Coordinate {
		return &models.Coordinate{X: x, Y: y}
	}
	err = events.IngestEvents(gameID, []models.Event{
		{TeamSide: models.SideHome, Kind: models.KindPass, Thrower: "alice", Receiver: "bob",
			Origin: coord(0, 10), Destination: coord(0, 55), Period: 1, LineState: models.LineOffenseStart, Seq: 1},
		{TeamSide: models.SideHome, Kind: models.KindThrowaway, Thrower: "bob",
			Origin: coord(0, 55), Destination: coord(15, 70), Period: 1, LineState: models.LineOffenseStart, Seq: 2},
		{TeamSide: models.SideAway, Kind: models.KindGoal, Thrower: "eve", Receiver: "frank",
			Origin: coord(0, 50), Destination: coord(0, 95), Period: 2, LineState: models.LineOffenseTurnover, Seq: 3},
	})
	require.NoError(t, err)
	return gameID
}

func TestEventService_ValidatesOnIngest(t *testing.T) {
	t.Parallel()

	events, _, _ := setup(t)
	gameID, err := events.CreateGame(&models.Game{HomeTeam: "Flyers", AwayTeam: "Breeze"})
	require.NoError(t, err)

	bad := []models.Event{
		{TeamSide: models.SideHome, Kind: "LAYOUT", Period: 1, LineState: models.LineOffenseStart},
	}
	err = events.IngestEvents(gameID, bad)
	assert.ErrorContains(t, err, "unknown kind")

	bad[0].Kind = models.KindPass
	bad[0].TeamSide = "NEUTRAL"
	err = events.IngestEvents(gameID, bad)
	assert.ErrorContains(t, err, "unknown team side")

	bad[0].TeamSide = models.SideHome
	bad[0].Period = 6
	err = events.IngestEvents(gameID, bad)
	assert.ErrorContains(t, err, "out of range")
}

func TestEventService_RejectsUnknownGame(t *testing.T) {
	t.Parallel()

	events, _, _ := setup(t)
	err := events.IngestEvents(99, []models.Event{
		{TeamSide: models.SideHome, Kind: models.KindPass, Period: 1, LineState: models.LineOffenseStart},
	})
	assert.ErrorContains(t, err, "not found")
}

func TestAnalyticsService_FilterCounts(t *testing.T) {
	t.Parallel()

	events, analytics, _ := setup(t)
	gameID := seedGame(t, events)

	counts, err := analytics.FilterCounts(gameID, models.FilterState{TeamSide: models.SideHome})
	require.NoError(t, err)

	assert.Equal(t, 2, counts.FilteredCount)

	var gainer int
	for _, row := range counts.PassTypes {
		if row.Value == field.PassGainer {
			gainer = row.Count
		}
	}
	assert.Equal(t, 1, gainer)

	// action weights: one pass (2) plus one throwaway (1)
	for _, row := range counts.LineStates {
		if row.Value == models.LineOffenseStart {
			assert.Equal(t, 3, row.Count)
		}
	}
}

func TestAnalyticsService_DefaultsToHomeSide(t *testing.T) {
	t.Parallel()

	events, analytics, _ := setup(t)
	gameID := seedGame(t, events)

	filtered, err := analytics.FilteredEvents(gameID, models.FilterState{})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	for _, e := range filtered {
		assert.Equal(t, models.SideHome, e.TeamSide)
	}
}

func TestHeatmapService_Grid(t *testing.T) {
	t.Parallel()

	events, _, heatmaps := setup(t)
	gameID := seedGame(t, events)

	resp, err := heatmaps.Grid(gameID, models.HeatmapFilter{
		FilterState: models.FilterState{TeamSide: models.SideHome},
		Surface:     models.SurfaceOrigin,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.PointCount)
	assert.NotEmpty(t, resp.Cells)
	for _, cell := range resp.Cells {
		assert.GreaterOrEqual(t, cell.Intensity, 0.0)
		assert.LessOrEqual(t, cell.Intensity, 1.0)
	}
}

func TestHeatmapService_EmptySideDegradesGracefully(t *testing.T) {
	t.Parallel()

	events, _, heatmaps := setup(t)
	gameID, err := events.CreateGame(&models.Game{HomeTeam: "Flyers", AwayTeam: "Breeze"})
	require.NoError(t, err)

	resp, err := heatmaps.Grid(gameID, models.HeatmapFilter{
		FilterState: models.FilterState{TeamSide: models.SideHome},
		Surface:     models.SurfaceDestination,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.PointCount)
	assert.Empty(t, resp.Cells)
}

func TestHeatmapService_Image(t *testing.T) {
	t.Parallel()

	events, _, heatmaps := setup(t)
	gameID := seedGame(t, events)

	img, err := heatmaps.Image(gameID, models.HeatmapFilter{
		FilterState: models.FilterState{TeamSide: models.SideHome},
		Surface:     models.SurfaceOrigin,
	})
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, field.CanvasWidth, bounds.Dx())
	assert.Equal(t, field.CanvasHeight, bounds.Dy())
}
