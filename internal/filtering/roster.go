package filtering

import (
	"sort"

	"github.com/fielddisc/discstats-backend-go/internal/models"
)

// Roster is the full, unfiltered set of distinct throwers and
// receivers for one team side. Filter lists are rendered from the
// roster so that membership stays stable while other filters change:
// a player's count drops to zero instead of the row disappearing.
type Roster struct {
	Throwers  []string
	Receivers []string
}

// buildRoster scans the unfiltered event set for one side. It is
// invoked only when the team-side selection changes, never on ordinary
// filter tweaks.
func buildRoster(events []models.Event, side string) *Roster {
	throwers := make(map[string]bool)
	receivers := make(map[string]bool)

	for _, e := range events {
		if e.TeamSide != side {
			continue
		}
		if e.Thrower != "" {
			throwers[e.Thrower] = true
		}
		if e.Receiver != "" {
			receivers[e.Receiver] = true
		}
	}

	return &Roster{
		Throwers:  sortedKeys(throwers),
		Receivers: sortedKeys(receivers),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
