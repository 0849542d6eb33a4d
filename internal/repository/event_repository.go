package repository

import (
	"database/sql"
	"fmt"

	"github.com/fielddisc/discstats-backend-go/internal/models"
)

// EventRepository handles database operations for games and their
// play-by-play events
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// CreateGame inserts a game and returns its ID
func (r *EventRepository) CreateGame(g *models.Game) (int64, error) {
	res, err := r.db.Exec(
		"INSERT INTO games (home_team, away_team, played_at) VALUES (?, ?, ?)",
		g.HomeTeam, g.AwayTeam, g.PlayedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert game: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read game id: %w", err)
	}
	return id, nil
}

// GetGameByID retrieves a single game, nil when not found
func (r *EventRepository) GetGameByID(id int64) (*models.Game, error) {
	query := `SELECT id, home_team, away_team, played_at, created_at
		FROM games WHERE id = ?`

	var g models.Game
	var playedAt sql.NullString
	err := r.db.QueryRow(query, id).Scan(
		&g.ID, &g.HomeTeam, &g.AwayTeam, &playedAt, &g.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if playedAt.Valid {
		g.PlayedAt = playedAt.String
	}
	return &g, nil
}

// ListGames retrieves all games, newest first
func (r *EventRepository) ListGames() ([]models.Game, error) {
	query := `SELECT id, home_team, away_team, played_at, created_at
		FROM games ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var g models.Game
		var playedAt sql.NullString
		if err := rows.Scan(&g.ID, &g.HomeTeam, &g.AwayTeam, &playedAt, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		if playedAt.Valid {
			g.PlayedAt = playedAt.String
		}
		games = append(games, g)
	}

	return games, rows.Err()
}

// InsertEvents bulk-inserts a game's events in one transaction
func (r *EventRepository) InsertEvents(gameID int64, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO events (
			game_id, team_side, kind, thrower, receiver,
			origin_x, origin_y, dest_x, dest_y,
			period, line_state, seq
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stmt, err := tx.Prepare(insertQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, e := range events {
		ox, oy := coordArgs(e.Origin)
		dx, dy := coordArgs(e.Destination)

		_, err := stmt.Exec(
			gameID, e.TeamSide, e.Kind,
			nullString(e.Thrower), nullString(e.Receiver),
			ox, oy, dx, dy,
			e.Period, e.LineState, e.Seq,
		)
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetEvents retrieves a game's events in recorded order, optionally
// restricted to one team side
func (r *EventRepository) GetEvents(gameID int64, side string) ([]models.Event, error) {
	query := `SELECT id, game_id, team_side, kind, thrower, receiver,
		origin_x, origin_y, dest_x, dest_y, period, line_state, seq
		FROM events WHERE game_id = ?`
	args := []interface{}{gameID}

	if side != "" {
		query += " AND team_side = ?"
		args = append(args, side)
	}
	query += " ORDER BY seq"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		var thrower, receiver sql.NullString
		var ox, oy, dx, dy sql.NullFloat64

		err := rows.Scan(
			&e.ID, &e.GameID, &e.TeamSide, &e.Kind, &thrower, &receiver,
			&ox, &oy, &dx, &dy, &e.Period, &e.LineState, &e.Seq,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		if thrower.Valid {
			e.Thrower = thrower.String
		}
		if receiver.Valid {
			e.Receiver = receiver.String
		}
		if ox.Valid && oy.Valid {
			e.Origin = &models.Coordinate{X: ox.Float64, Y: oy.Float64}
		}
		if dx.Valid && dy.Valid {
			e.Destination = &models.Coordinate{X: dx.Float64, Y: dy.Float64}
		}

		events = append(events, e)
	}

	return events, rows.Err()
}

// coordArgs flattens an optional coordinate into nullable columns
func coordArgs(c *models.Coordinate) (interface{}, interface{}) {
	if c == nil {
		return nil, nil
	}
	return c.X, c.Y
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
