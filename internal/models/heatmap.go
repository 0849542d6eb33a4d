package models

// HeatmapCell represents one grid cell of the intensity surface
type HeatmapCell struct {
	Row       int     `json:"row"`
	Col       int     `json:"col"`
	Intensity float64 `json:"intensity"` // Normalized 0-1
}

// HeatmapResponse represents the heatmap API response in JSON form.
// Cells with zero intensity are omitted; they mean "no nearby events",
// not "low density".
type HeatmapResponse struct {
	Cells      []HeatmapCell `json:"cells"`
	Rows       int           `json:"rows"`
	Cols       int           `json:"cols"`
	CellSize   int           `json:"cell_size"` // canvas units per cell
	Surface    string        `json:"surface"`   // origin or destination
	PointCount int           `json:"point_count"`
}
