package models

// ValueCount is one (value, count) row of a filter dimension, ready
// for direct display next to the value's checkbox.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FilterCounts carries, for every filter dimension, the candidate
// counts computed with that one dimension left open, plus the size of
// the fully filtered subset.
type FilterCounts struct {
	FilteredCount int          `json:"filtered_count"`
	TeamSides     []ValueCount `json:"team_sides"`
	Throwers      []ValueCount `json:"throwers"`
	Receivers     []ValueCount `json:"receivers"`
	EventTypes    []ValueCount `json:"event_types"`
	LineStates    []ValueCount `json:"line_states"`
	Periods       []ValueCount `json:"periods"`
	PassTypes     []ValueCount `json:"pass_types"`
}
