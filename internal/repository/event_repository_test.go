package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/fielddisc/discstats-backend-go/internal/database"
	"github.com/fielddisc/discstats-backend-go/internal/models"
)

// testDB opens an isolated in-memory database with the full schema
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// a second connection would see a different in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func coord(x, y float64) *models.Coordinate {
	return &models.Coordinate{X: x, Y: y}
}

func TestCreateGameAndList(t *testing.T) {
	t.Parallel()

	repo := NewEventRepository(testDB(t))

	id, err := repo.CreateGame(&models.Game{HomeTeam: "Flyers", AwayTeam: "Breeze", PlayedAt: "2026-05-02"})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	games, err := repo.ListGames()
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Flyers", games[0].HomeTeam)
	assert.Equal(t, "Breeze", games[0].AwayTeam)
	assert.Equal(t, "2026-05-02", games[0].PlayedAt)
}

func TestGetGameByID_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewEventRepository(testDB(t))

	game, err := repo.GetGameByID(42)
	require.NoError(t, err)
	assert.Nil(t, game)
}

func TestInsertAndGetEvents_RoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewEventRepository(testDB(t))

	gameID, err := repo.CreateGame(&models.Game{HomeTeam: "Flyers", AwayTeam: "Breeze"})
	require.NoError(t, err)

	events := []models.Event{
		{TeamSide: models.SideHome, Kind: models.KindPass, Thrower: "alice", Receiver: "bob",
			Origin: coord(0, 10), Destination: coord(0, 45), Period: 1, LineState: models.LineOffenseStart, Seq: 1},
		{TeamSide: models.SideHome, Kind: models.KindThrowaway, Thrower: "bob",
			Origin: coord(5, 45), Destination: coord(20, 70), Period: 1, LineState: models.LineOffenseStart, Seq: 2},
		// malformed source row: no coordinates at all
		{TeamSide: models.SideAway, Kind: models.KindPass, Thrower: "eve", Receiver: "frank",
			Period: 2, LineState: models.LineDefenseStart, Seq: 3},
	}

	require.NoError(t, repo.InsertEvents(gameID, events))

	got, err := repo.GetEvents(gameID, "")
	require.NoError(t, err)
	require.Len(t, got, 3)

	first := got[0]
	assert.Equal(t, models.KindPass, first.Kind)
	assert.Equal(t, "alice", first.Thrower)
	assert.Equal(t, "bob", first.Receiver)
	require.NotNil(t, first.Origin)
	require.NotNil(t, first.Destination)
	assert.Equal(t, 45.0, first.Destination.Y)

	// absent receiver and coordinates come back absent, not zeroed
	second := got[1]
	assert.Empty(t, second.Receiver)
	require.NotNil(t, second.Destination)

	third := got[2]
	assert.Nil(t, third.Origin)
	assert.Nil(t, third.Destination)
}

func TestGetEvents_FiltersBySide(t *testing.T) {
	t.Parallel()

	repo := NewEventRepository(testDB(t))

	gameID, err := repo.CreateGame(&models.Game{HomeTeam: "Flyers", AwayTeam: "Breeze"})
	require.NoError(t, err)

	events := []models.Event{
		{TeamSide: models.SideHome, Kind: models.KindPass, Thrower: "alice", Receiver: "bob",
			Origin: coord(0, 10), Destination: coord(0, 20), Period: 1, LineState: models.LineOffenseStart, Seq: 1},
		{TeamSide: models.SideAway, Kind: models.KindPass, Thrower: "eve", Receiver: "frank",
			Origin: coord(0, 30), Destination: coord(0, 40), Period: 1, LineState: models.LineOffenseStart, Seq: 2},
	}
	require.NoError(t, repo.InsertEvents(gameID, events))

	home, err := repo.GetEvents(gameID, models.SideHome)
	require.NoError(t, err)
	require.Len(t, home, 1)
	assert.Equal(t, "alice", home[0].Thrower)
}

func TestInsertEvents_EmptyIsNoOp(t *testing.T) {
	t.Parallel()

	repo := NewEventRepository(testDB(t))
	assert.NoError(t, repo.InsertEvents(1, nil))
}
