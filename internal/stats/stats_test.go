// FilePath: internal/stats/stats_test.go
package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/animalhaven/feederhub/internal/models"
)

func completed(amount int) models.FeedingEvent {
	return models.FeedingEvent{AmountG: amount, EventType: models.EventManualFeed}
}

func unknown(amount int) models.FeedingEvent {
	return models.FeedingEvent{AmountG: amount, EventType: models.EventType("SENSOR_GLITCH")}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		events   []models.FeedingEvent
		expected models.Stats
	}{
		{
			name:     "no events",
			events:   nil,
			expected: models.Stats{},
		},
		{
			name:     "single feeding",
			events:   []models.FeedingEvent{completed(150)},
			expected: models.Stats{CompletedCount: 1, TotalDispensedG: 150, Percentage: 2},
		},
		{
			name:     "half the reference capacity",
			events:   []models.FeedingEvent{completed(2500), completed(2500)},
			expected: models.Stats{CompletedCount: 2, TotalDispensedG: 5000, Percentage: 50},
		},
		{
			name:     "unknown events are listed but never counted",
			events:   []models.FeedingEvent{completed(200), unknown(9999), unknown(0)},
			expected: models.Stats{CompletedCount: 1, TotalDispensedG: 200, Percentage: 2},
		},
		{
			name:     "percentage clamps at 100",
			events:   []models.FeedingEvent{completed(8000), completed(8000)},
			expected: models.Stats{CompletedCount: 2, TotalDispensedG: 16000, Percentage: 100},
		},
		{
			name:     "percentage rounds half up",
			events:   []models.FeedingEvent{completed(450)},
			expected: models.Stats{CompletedCount: 1, TotalDispensedG: 450, Percentage: 5},
		},
		{
			name:     "small amounts round down to zero",
			events:   []models.FeedingEvent{completed(40)},
			expected: models.Stats{CompletedCount: 1, TotalDispensedG: 40, Percentage: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compute(tt.events))
		})
	}
}
