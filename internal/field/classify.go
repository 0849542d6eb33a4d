package field

import (
	"math"

	"github.com/fielddisc/discstats-backend-go/internal/models"
)

// PassType is the geometric classification of a throw
const (
	PassHuck   = "HUCK"
	PassDish   = "DISH"
	PassDump   = "DUMP"
	PassSwing  = "SWING"
	PassGainer = "GAINER"
)

// PassTypes lists every classification in display order
var PassTypes = []string{PassHuck, PassDish, PassDump, PassSwing, PassGainer}

// ClassifyPass classifies a throw from origin to destination (field
// coordinates) into a pass type. The branch order is load-bearing:
// the categories overlap geometrically and the first match wins. A
// long backward throw that is neither a short dump nor a lateral
// swing falls through unclassified, which is a legitimate outcome,
// not an error.
func ClassifyPass(origin, destination models.Coordinate) (string, bool) {
	vertical := destination.Y - origin.Y // positive = downfield gain
	horizontal := math.Abs(destination.X - origin.X)
	distance := math.Hypot(vertical, horizontal)

	switch {
	case vertical >= 40:
		return PassHuck, true
	case distance < 5:
		return PassDish, true
	case vertical < 0 && distance < 15:
		return PassDump, true
	case horizontal > math.Abs(vertical) || (vertical <= 0 && horizontal > 5):
		return PassSwing, true
	case vertical > 0 && vertical < 40:
		return PassGainer, true
	}
	return "", false
}

// ClassifyEvent classifies an event's throw, returning ok=false when
// either endpoint is missing or the event is not a throw. Callers must
// treat that as "excluded from pass-type filtering and statistics".
func ClassifyEvent(e models.Event) (string, bool) {
	if !e.HasGeometry() {
		return "", false
	}
	switch e.Kind {
	case models.KindPass, models.KindGoal, models.KindDrop, models.KindThrowaway:
		return ClassifyPass(*e.Origin, *e.Destination)
	}
	return "", false
}
