package filtering

import "github.com/fielddisc/discstats-backend-go/internal/models"

// Event-type group labels. The UI-facing event-type filter is a
// coarser grouping over the raw kind: a completed pass is both a throw
// and a catch, a goal both an assist and a goal.
const (
	GroupThrows     = "THROWS"
	GroupCatches    = "CATCHES"
	GroupAssists    = "ASSISTS"
	GroupGoals      = "GOALS"
	GroupThrowaways = "THROWAWAYS"
	GroupDrops      = "DROPS"
	GroupStalls     = "STALLS"
)

// EventTypeGroups lists every group label in display order
var EventTypeGroups = []string{
	GroupThrows, GroupCatches, GroupAssists, GroupGoals,
	GroupThrowaways, GroupDrops, GroupStalls,
}

// TeamSides lists the two side values in display order
var TeamSides = []string{models.SideHome, models.SideAway}

// LineStates lists the four line-state values in display order
var LineStates = []string{
	models.LineOffenseStart, models.LineOffenseTurnover,
	models.LineDefenseStart, models.LineDefenseTurnover,
}

// Periods lists the quarter indexes, 5 reserved for overtime
var Periods = []int{1, 2, 3, 4, 5}

// GroupsForKind maps a raw event kind to the group labels it belongs
// to. An event matches the event-type dimension if ANY of its groups
// is selected.
func GroupsForKind(kind string) []string {
	switch kind {
	case models.KindPass:
		return []string{GroupThrows, GroupCatches}
	case models.KindGoal:
		return []string{GroupAssists, GroupGoals}
	case models.KindThrowaway:
		return []string{GroupThrowaways}
	case models.KindDrop:
		return []string{GroupDrops}
	case models.KindStall:
		return []string{GroupStalls}
	}
	return nil
}

// ActionWeight returns the sport-specific accounting weight of an
// event: a completed pass, goal or drop involves two players (throw
// plus catch/drop attempt, assist plus goal) and counts as 2, a
// solitary turnover counts as 1. Applied ONLY to line-state and period
// aggregates; every other dimension tallies raw events.
func ActionWeight(kind string) int {
	switch kind {
	case models.KindPass, models.KindGoal, models.KindDrop:
		return 2
	case models.KindThrowaway, models.KindStall:
		return 1
	}
	return 0
}
