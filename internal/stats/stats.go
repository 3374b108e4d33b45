// FilePath: internal/stats/stats.go
package stats

import (
	"math"

	"github.com/animalhaven/feederhub/internal/models"
)

// TotalCapacityKg is the fixed reference the percentage gauge is scaled
// against. It is a display constant, deliberately independent of the
// estimated physical hopper capacity.
const TotalCapacityKg = 10.0

// Compute summarizes a filtered event set. Only events classified
// Completed count toward the totals; Unknown rows appear in the log but
// never in the numbers.
func Compute(events []models.FeedingEvent) models.Stats {
	var s models.Stats
	for _, e := range events {
		if e.EventType.Status() != models.StatusCompleted {
			continue
		}
		s.CompletedCount++
		s.TotalDispensedG += e.AmountG
	}
	s.Percentage = percentage(s.TotalDispensedG)
	return s
}

// percentage scales dispensed kilograms against TotalCapacityKg, rounded
// and clamped to [0, 100].
func percentage(totalG int) int {
	kg := float64(totalG) / 1000.0
	p := int(math.Round(kg / TotalCapacityKg * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
