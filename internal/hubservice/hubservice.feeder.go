// FilePath: internal/hubservice/hubservice.feeder.go
package hubservice

import (
	"context"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/animalhaven/feederhub/internal/amount"
	"github.com/animalhaven/feederhub/internal/errors"
	"github.com/animalhaven/feederhub/internal/metrics"
	"github.com/animalhaven/feederhub/internal/models"
)

const (
	// captures run 5s and 10s after a triggered feeding, late enough
	// for the dispensed food to be in the bowl
	captureDelay   = 5 * time.Second
	captureCount   = 2
	captureTimeout = 10 * time.Second
)

// TriggerFeeding dispatches one dispensing run to the device. A nil
// amount falls back to the current dispense amount; an explicit amount
// goes through the same quantization as every other mutation. On success
// the camera, when present, is scheduled for follow-up captures.
func (s *HubService) TriggerFeeding(ctx context.Context, amountG *int) (int, error) {
	grams := s.amount.Value()
	if amountG != nil {
		grams = amount.Quantize(*amountG)
	}

	if err := s.device.TriggerDispensing(ctx, grams); err != nil {
		return 0, errors.NewUpstreamError("could not trigger dispensing", err)
	}

	metrics.FeedTriggers.Inc()
	s.events.Emit(EventFeedingTriggered, grams)
	s.scheduleCaptures()
	nuts.L.Infof("[FeederService] Dispensing of %dg triggered", grams)
	return grams, nil
}

// SetSchedule validates one schedule slot and forwards it to the device.
func (s *HubService) SetSchedule(ctx context.Context, sched models.FeedingSchedule) error {
	if sched.Slot < 0 {
		return errors.NewValidationError("schedule slot must not be negative", nil)
	}
	if sched.Hour < 0 || sched.Hour > 23 {
		return errors.NewValidationError("schedule hour must be between 0 and 23", nil)
	}
	if sched.Minute < 0 || sched.Minute > 59 {
		return errors.NewValidationError("schedule minute must be between 0 and 59", nil)
	}
	sched.AmountG = amount.Quantize(sched.AmountG)

	if err := s.device.SetSchedule(ctx, sched); err != nil {
		return errors.NewUpstreamError("could not update the feeding schedule", err)
	}
	nuts.L.Infof("[FeederService] Schedule slot %d set to %02d:%02d, %dg, enabled=%v",
		sched.Slot, sched.Hour, sched.Minute, sched.AmountG, sched.Enabled)
	return nil
}

// scheduleCaptures pokes the camera a few seconds after dispensing so
// the pictures show the result rather than the running motor. Best
// effort and detached; shutdown cancels pending captures.
func (s *HubService) scheduleCaptures() {
	if s.camera == nil {
		return
	}
	go func(ctx context.Context) {
		for i := 1; i <= captureCount; i++ {
			select {
			case <-ctx.Done():
				return
			case <-time.After(captureDelay):
			}
			capCtx, cancel := context.WithTimeout(ctx, captureTimeout)
			if err := s.camera.TriggerCapture(capCtx); err != nil {
				nuts.L.Warnf("[FeederService] Post-feed capture %d/%d failed: %v", i, captureCount, err)
			}
			cancel()
		}
	}(s.lifecycle)
}
