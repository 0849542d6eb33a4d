package service

import (
	"fmt"

	"github.com/fielddisc/discstats-backend-go/internal/filtering"
	"github.com/fielddisc/discstats-backend-go/internal/models"
	"github.com/fielddisc/discstats-backend-go/internal/repository"
)

// AnalyticsService runs the filter/counting engine over stored games
type AnalyticsService struct {
	repo *repository.EventRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(repo *repository.EventRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// FilterCounts loads a game's events and computes the filtered subset
// size plus per-dimension candidate counts for the given filter state.
func (s *AnalyticsService) FilterCounts(gameID int64, fs models.FilterState) (*models.FilterCounts, error) {
	engine, err := s.engineFor(gameID)
	if err != nil {
		return nil, err
	}

	counts := engine.Counts(normalizeState(fs))
	return &counts, nil
}

// FilteredEvents returns the events matching every dimension
func (s *AnalyticsService) FilteredEvents(gameID int64, fs models.FilterState) ([]models.Event, error) {
	engine, err := s.engineFor(gameID)
	if err != nil {
		return nil, err
	}
	return engine.Apply(normalizeState(fs)), nil
}

// engineFor builds a fresh engine from the stored events. Engines are
// cheap relative to the query; recomputation per request keeps the
// analytics path stateless.
func (s *AnalyticsService) engineFor(gameID int64) (*filtering.Engine, error) {
	events, err := s.repo.GetEvents(gameID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load events for game %d: %w", gameID, err)
	}
	return filtering.NewEngine(events), nil
}

// normalizeState applies the default team side
func normalizeState(fs models.FilterState) models.FilterState {
	if fs.TeamSide == "" {
		fs.TeamSide = models.SideHome
	}
	return fs
}
