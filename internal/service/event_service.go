package service

import (
	"fmt"

	"github.com/fielddisc/discstats-backend-go/internal/models"
	"github.com/fielddisc/discstats-backend-go/internal/repository"
)

var validKinds = map[string]bool{
	models.KindPass:      true,
	models.KindGoal:      true,
	models.KindDrop:      true,
	models.KindThrowaway: true,
	models.KindStall:     true,
}

var validLineStates = map[string]bool{
	models.LineOffenseStart:    true,
	models.LineOffenseTurnover: true,
	models.LineDefenseStart:    true,
	models.LineDefenseTurnover: true,
}

// EventService handles business logic for games and event ingestion
type EventService struct {
	repo *repository.EventRepository
}

// NewEventService creates a new event service
func NewEventService(repo *repository.EventRepository) *EventService {
	return &EventService{repo: repo}
}

// CreateGame validates and stores a new game
func (s *EventService) CreateGame(g *models.Game) (int64, error) {
	if g.HomeTeam == "" || g.AwayTeam == "" {
		return 0, fmt.Errorf("home_team and away_team are required")
	}
	return s.repo.CreateGame(g)
}

// ListGames retrieves all games
func (s *EventService) ListGames() ([]models.Game, error) {
	return s.repo.ListGames()
}

// GetEvents retrieves a game's events, optionally for one side
func (s *EventService) GetEvents(gameID int64, side string) ([]models.Event, error) {
	return s.repo.GetEvents(gameID, side)
}

// IngestEvents validates and bulk-inserts a game's play-by-play
func (s *EventService) IngestEvents(gameID int64, events []models.Event) error {
	game, err := s.repo.GetGameByID(gameID)
	if err != nil {
		return err
	}
	if game == nil {
		return fmt.Errorf("game %d not found", gameID)
	}

	for i := range events {
		if err := validateEvent(&events[i]); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}

	return s.repo.InsertEvents(gameID, events)
}

// validateEvent rejects records the engines could never interpret.
// Missing coordinates are legal (they are excluded downstream); an
// unknown kind or line state is not.
func validateEvent(e *models.Event) error {
	if !validKinds[e.Kind] {
		return fmt.Errorf("unknown kind %q", e.Kind)
	}
	if e.TeamSide != models.SideHome && e.TeamSide != models.SideAway {
		return fmt.Errorf("unknown team side %q", e.TeamSide)
	}
	if !validLineStates[e.LineState] {
		return fmt.Errorf("unknown line state %q", e.LineState)
	}
	if e.Period < 1 || e.Period > 5 {
		return fmt.Errorf("period %d out of range", e.Period)
	}
	return nil
}
