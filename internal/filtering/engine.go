package filtering

import (
	"strconv"

	"github.com/fielddisc/discstats-backend-go/internal/field"
	"github.com/fielddisc/discstats-backend-go/internal/models"
)

// dimension identifies one filter dimension for count-excluding-self
type dimension int

const (
	dimNone dimension = iota
	dimTeamSide
	dimThrower
	dimReceiver
	dimEventType
	dimLineState
	dimPeriod
	dimPassType
)

// Engine evaluates a FilterState against a fixed event set. The event
// set is read-only for the lifetime of the engine; every call takes
// the full filter state as input. The only internal state is the
// lazily built roster cache.
type Engine struct {
	events    []models.Event
	passTypes []string // precomputed classification per event, "" = unclassified
	rosters   map[string]*Roster
}

// NewEngine builds an engine over the event set. Events missing both
// coordinates carry no usable geometry and are dropped outright; pass
// classifications are precomputed once per event.
func NewEngine(events []models.Event) *Engine {
	kept := make([]models.Event, 0, len(events))
	types := make([]string, 0, len(events))

	for _, e := range events {
		if e.Origin == nil && e.Destination == nil {
			continue
		}
		pt, ok := field.ClassifyEvent(e)
		if !ok {
			pt = ""
		}
		kept = append(kept, e)
		types = append(types, pt)
	}

	return &Engine{
		events:    kept,
		passTypes: types,
		rosters:   make(map[string]*Roster),
	}
}

// Roster returns the master roster for a team side, building it on
// first use. The cache is keyed by side only, so changing any other
// dimension never rebuilds it.
func (en *Engine) Roster(side string) *Roster {
	if r, ok := en.rosters[side]; ok {
		return r
	}
	r := buildRoster(en.events, side)
	en.rosters[side] = r
	return r
}

// Apply returns the event subset matching every dimension: team side
// always applied, strict AND across dimensions, OR within each. The
// result is never nil, so an empty subset serializes as an empty list.
func (en *Engine) Apply(fs models.FilterState) []models.Event {
	out := make([]models.Event, 0)
	for i, e := range en.events {
		if en.matches(i, e, fs, dimNone) {
			out = append(out, e)
		}
	}
	return out
}

// Counts computes, for every dimension, the candidate counts that
// would result from the other dimensions' current selections with
// that one dimension excluded. Each dimension needs its own pass over
// the event set because each needs a different dimension left open;
// there is no shared intermediate subset.
func (en *Engine) Counts(fs models.FilterState) models.FilterCounts {
	roster := en.Roster(fs.TeamSide)

	return models.FilterCounts{
		FilteredCount: len(en.Apply(fs)),
		TeamSides:     en.teamSideCounts(fs),
		Throwers:      en.throwerCounts(fs, roster),
		Receivers:     en.receiverCounts(fs, roster),
		EventTypes:    en.eventTypeCounts(fs),
		LineStates:    en.lineStateCounts(fs),
		Periods:       en.periodCounts(fs),
		PassTypes:     en.passTypeCounts(fs),
	}
}

// matches evaluates every dimension except the excluded one. Unknown
// filter values simply never equal an event's value: they contribute
// zero matches rather than an error.
func (en *Engine) matches(i int, e models.Event, fs models.FilterState, exclude dimension) bool {
	if exclude != dimTeamSide && e.TeamSide != fs.TeamSide {
		return false
	}
	if exclude != dimThrower && !matchString(fs.Throwers, e.Thrower) {
		return false
	}
	if exclude != dimReceiver && !matchString(fs.Receivers, e.Receiver) {
		return false
	}
	if exclude != dimEventType && !matchGroups(fs.EventTypes, e.Kind) {
		return false
	}
	if exclude != dimLineState && !matchString(fs.LineStates, e.LineState) {
		return false
	}
	if exclude != dimPeriod && !matchInt(fs.Periods, e.Period) {
		return false
	}
	if exclude != dimPassType && !matchString(fs.PassTypes, en.passTypes[i]) {
		return false
	}
	return true
}

// matchString implements empty-set-means-open over one dimension
func matchString(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

func matchInt(selected []int, value int) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

func matchGroups(selected []string, kind string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, g := range GroupsForKind(kind) {
		for _, s := range selected {
			if s == g {
				return true
			}
		}
	}
	return false
}

// teamSideCounts tallies both sides with the side dimension open, so
// switching sides previews how many events the other side would yield
// under the current selections.
func (en *Engine) teamSideCounts(fs models.FilterState) []models.ValueCount {
	tally := make(map[string]int)
	for i, e := range en.events {
		if !en.matches(i, e, fs, dimTeamSide) {
			continue
		}
		tally[e.TeamSide]++
	}
	return rows(TeamSides, tally)
}

// throwerCounts tallies throwers over the subset with the thrower
// dimension open. Only pass/goal/throwaway events credit a thrower.
// Rows follow the master roster so membership stays stable.
func (en *Engine) throwerCounts(fs models.FilterState, roster *Roster) []models.ValueCount {
	tally := make(map[string]int)
	for i, e := range en.events {
		if !en.matches(i, e, fs, dimThrower) {
			continue
		}
		switch e.Kind {
		case models.KindPass, models.KindGoal, models.KindThrowaway:
			if e.Thrower != "" {
				tally[e.Thrower]++
			}
		}
	}
	return rows(roster.Throwers, tally)
}

// receiverCounts tallies receivers over pass/goal/drop events with the
// receiver dimension open.
func (en *Engine) receiverCounts(fs models.FilterState, roster *Roster) []models.ValueCount {
	tally := make(map[string]int)
	for i, e := range en.events {
		if !en.matches(i, e, fs, dimReceiver) {
			continue
		}
		switch e.Kind {
		case models.KindPass, models.KindGoal, models.KindDrop:
			if e.Receiver != "" {
				tally[e.Receiver]++
			}
		}
	}
	return rows(roster.Receivers, tally)
}

func (en *Engine) eventTypeCounts(fs models.FilterState) []models.ValueCount {
	tally := make(map[string]int)
	for i, e := range en.events {
		if !en.matches(i, e, fs, dimEventType) {
			continue
		}
		for _, g := range GroupsForKind(e.Kind) {
			tally[g]++
		}
	}
	return rows(EventTypeGroups, tally)
}

// lineStateCounts aggregates action counts, not raw events: completed
// actions weigh 2, solitary turnovers 1.
func (en *Engine) lineStateCounts(fs models.FilterState) []models.ValueCount {
	tally := make(map[string]int)
	for i, e := range en.events {
		if !en.matches(i, e, fs, dimLineState) {
			continue
		}
		tally[e.LineState] += ActionWeight(e.Kind)
	}
	return rows(LineStates, tally)
}

// periodCounts aggregates action counts per quarter/overtime
func (en *Engine) periodCounts(fs models.FilterState) []models.ValueCount {
	tally := make(map[int]int)
	for i, e := range en.events {
		if !en.matches(i, e, fs, dimPeriod) {
			continue
		}
		tally[e.Period] += ActionWeight(e.Kind)
	}

	out := make([]models.ValueCount, 0, len(Periods))
	for _, p := range Periods {
		out = append(out, models.ValueCount{Value: strconv.Itoa(p), Count: tally[p]})
	}
	return out
}

// passTypeCounts tallies classifications; unclassifiable throws are
// excluded from pass-type statistics entirely.
func (en *Engine) passTypeCounts(fs models.FilterState) []models.ValueCount {
	tally := make(map[string]int)
	for i, e := range en.events {
		if !en.matches(i, e, fs, dimPassType) {
			continue
		}
		if en.passTypes[i] != "" {
			tally[en.passTypes[i]]++
		}
	}
	return rows(field.PassTypes, tally)
}

func rows(order []string, tally map[string]int) []models.ValueCount {
	out := make([]models.ValueCount, 0, len(order))
	for _, v := range order {
		out = append(out, models.ValueCount{Value: v, Count: tally[v]})
	}
	return out
}
