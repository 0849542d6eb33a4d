package models

// FilterState holds the multi-dimensional filter selection for one
// analytics request. Team side is exclusive and always applied; every
// other dimension is a set of allowed values where the EMPTY set means
// "open" (no restriction), not "nothing passes". The default/reset
// state is therefore the zero value plus a team side.
type FilterState struct {
	TeamSide   string   `form:"side"`      // HOME or AWAY
	Throwers   []string `form:"thrower"`
	Receivers  []string `form:"receiver"`
	EventTypes []string `form:"eventType"` // grouped labels, see filtering.EventTypeGroups
	LineStates []string `form:"lineState"`
	Periods    []int    `form:"period"`    // 1-4, 5 for overtime
	PassTypes  []string `form:"passType"`  // HUCK, DISH, DUMP, SWING, GAINER
}

// HeatmapFilter extends FilterState with rendering parameters
type HeatmapFilter struct {
	FilterState
	Surface string `form:"surface"` // origin or destination
	Format  string `form:"format"`  // json or png
}

// Surface values for heatmap requests
const (
	SurfaceOrigin      = "origin"
	SurfaceDestination = "destination"
)
