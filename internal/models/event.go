package models

import "time"

// EventKind is the raw play-by-play action type
const (
	KindPass      = "PASS"
	KindGoal      = "GOAL"
	KindDrop      = "DROP"
	KindThrowaway = "THROWAWAY"
	KindStall     = "STALL"
)

// TeamSide identifies which of the two sides recorded an event
const (
	SideHome = "HOME"
	SideAway = "AWAY"
)

// LineState combines offense/defense with whether the possession is the
// initial one of the point or follows a turnover within the same point
const (
	LineOffenseStart    = "OFFENSE_START"
	LineOffenseTurnover = "OFFENSE_TURNOVER"
	LineDefenseStart    = "DEFENSE_START"
	LineDefenseTurnover = "DEFENSE_TURNOVER"
)

// Coordinate is a position on the field in game-space units:
// 0-120 along the length axis, roughly -27..27 across the width axis.
// Absence of a coordinate is modeled as a nil pointer, never a sentinel.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Event is an immutable record of one play action.
// A pass/goal/drop carries thrower, receiver and both coordinates when
// the data is complete; a throwaway/stall uses Destination for the
// turnover point and has no receiver.
type Event struct {
	ID          int64       `json:"id" db:"id"`
	GameID      int64       `json:"game_id" db:"game_id"`
	TeamSide    string      `json:"team_side" db:"team_side"`
	Kind        string      `json:"kind" db:"kind"`
	Thrower     string      `json:"thrower,omitempty" db:"thrower"`
	Receiver    string      `json:"receiver,omitempty" db:"receiver"`
	Origin      *Coordinate `json:"origin,omitempty"`
	Destination *Coordinate `json:"destination,omitempty"`
	Period      int         `json:"period" db:"period"` // 1-4, 5 for overtime
	LineState   string      `json:"line_state" db:"line_state"`
	Seq         int         `json:"seq" db:"seq"`
}

// HasGeometry reports whether the event carries both endpoints and is
// therefore eligible for classification and density contribution.
func (e *Event) HasGeometry() bool {
	return e.Origin != nil && e.Destination != nil
}

// Game represents one recorded game/dataset
type Game struct {
	ID        int64     `json:"id" db:"id"`
	HomeTeam  string    `json:"home_team" db:"home_team"`
	AwayTeam  string    `json:"away_team" db:"away_team"`
	PlayedAt  string    `json:"played_at,omitempty" db:"played_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// EventsResponse represents the raw event list for one game and side
type EventsResponse struct {
	Data  []Event `json:"data"`
	Count int     `json:"count"`
}
