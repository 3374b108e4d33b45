// FilePath: internal/capacity/capacity.go
package capacity

import (
	"context"
	"errors"
	"math"
	"sync"

	nuts "github.com/vaudience/go-nuts"

	"github.com/animalhaven/feederhub/internal/repository"
)

// SettingKey is the fixed name the estimate is persisted under.
const SettingKey = "max_capacity_g"

const (
	defaultRefillRatio     = 0.9
	defaultEmptyThresholdG = 30.0
)

// Options tunes the refill/empty heuristics. Zero values fall back to
// defaults.
type Options struct {
	RefillRatio     float64
	EmptyThresholdG float64
}

// Estimator derives the feeder's perceived full capacity from the live
// weight stream. A reading above RefillRatio of the known maximum counts
// as a refill and becomes the new maximum; a reading below
// EmptyThresholdG counts as empty. Everything in between leaves the
// estimate alone, so normal consumption never shrinks it.
type Estimator struct {
	store           repository.SettingsStore
	refillRatio     float64
	emptyThresholdG float64

	mu           sync.Mutex
	maxCapacityG int
}

// New creates an estimator and seeds it from the settings store. A
// missing or unreadable stored value simply starts the estimate at zero.
func New(ctx context.Context, store repository.SettingsStore, opts Options) *Estimator {
	if opts.RefillRatio <= 0 {
		opts.RefillRatio = defaultRefillRatio
	}
	if opts.EmptyThresholdG <= 0 {
		opts.EmptyThresholdG = defaultEmptyThresholdG
	}
	e := &Estimator{
		store:           store,
		refillRatio:     opts.RefillRatio,
		emptyThresholdG: opts.EmptyThresholdG,
	}

	stored, err := store.GetInt(ctx, SettingKey)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// first run, nothing to restore
	case err != nil:
		nuts.L.Warnf("[Capacity] Could not restore %s: %v", SettingKey, err)
	case stored < 0:
		nuts.L.Warnf("[Capacity] Ignoring negative stored capacity %d", stored)
	default:
		e.maxCapacityG = stored
		nuts.L.Infof("[Capacity] Restored max capacity %dg", stored)
	}
	return e
}

// Observe feeds one weight reading into the heuristics and returns the
// estimate in force afterwards. Persistence failures are logged and do
// not block the in-memory update.
func (e *Estimator) Observe(ctx context.Context, weightG float64) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	updated := e.maxCapacityG
	switch {
	case weightG > e.refillRatio*float64(e.maxCapacityG) && weightG > 0:
		updated = int(math.Round(weightG))
	case weightG < e.emptyThresholdG && e.maxCapacityG > 0:
		updated = 0
	}
	if updated == e.maxCapacityG {
		return e.maxCapacityG
	}

	e.maxCapacityG = updated
	nuts.L.Infof("[Capacity] Max capacity now %dg (weight %.1fg)", updated, weightG)
	if err := e.store.SetInt(ctx, SettingKey, updated); err != nil {
		nuts.L.Errorf("[Capacity] Failed to persist %s=%d: %v", SettingKey, updated, err)
	}
	return e.maxCapacityG
}

// MaxCapacityG returns the current estimate.
func (e *Estimator) MaxCapacityG() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.maxCapacityG
}
