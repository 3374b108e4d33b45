// FilePath: internal/hubservice/hubservice.amount.go
package hubservice

import (
	"github.com/animalhaven/feederhub/internal/metrics"
)

// Amount returns the current dispense amount in grams.
func (s *HubService) Amount() int {
	return s.amount.Value()
}

// IncreaseAmount steps the dispense amount up and returns the new value.
func (s *HubService) IncreaseAmount() int {
	return s.amountChanged(s.amount.Increase())
}

// DecreaseAmount steps the dispense amount down and returns the new value.
func (s *HubService) DecreaseAmount() int {
	return s.amountChanged(s.amount.Decrease())
}

// SetAmount replaces the dispense amount, quantized and clamped, and
// returns the value actually in force.
func (s *HubService) SetAmount(grams int) int {
	return s.amountChanged(s.amount.Set(grams))
}

func (s *HubService) amountChanged(grams int) int {
	metrics.DispenseAmountGrams.Set(float64(grams))
	s.events.Emit(EventAmountChanged, grams)
	return grams
}
