// FilePath: internal/amount/amount.go
package amount

import (
	"context"
	"math"
	"sync"
	"time"

	nuts "github.com/vaudience/go-nuts"
)

const (
	// MinG, MaxG and StepG bound the dispense amount. Every mutation
	// quantizes into this grid; no code path can leave it.
	MinG  = 50
	MaxG  = 500
	StepG = 50

	// DefaultG seeds the controller when no persisted amount is available.
	DefaultG = 50

	propagateTimeout = 5 * time.Second
)

// ConfigSink mirrors the amount into the log service's persisted config.
type ConfigSink interface {
	SetDispenseAmount(ctx context.Context, grams int) error
	GetDispenseAmount(ctx context.Context) (int, error)
}

// DeviceSink mirrors the amount onto the device as its target weight.
type DeviceSink interface {
	SetTargetWeight(ctx context.Context, grams int) error
}

// Controller owns the process-wide dispense amount. Mutations quantize
// and clamp locally first, then fan out to both mirrors best-effort: the
// two calls are independent and unordered, failures are logged but never
// retried, and nothing rolls back the local value.
type Controller struct {
	config ConfigSink
	device DeviceSink

	mu    sync.Mutex
	value int
}

// New creates the controller and seeds it from the persisted amount. An
// unreachable config source falls back to the default without failing
// construction.
func New(ctx context.Context, config ConfigSink, device DeviceSink) *Controller {
	c := &Controller{config: config, device: device, value: DefaultG}
	stored, err := config.GetDispenseAmount(ctx)
	if err != nil {
		nuts.L.Warnf("[Amount] Could not read persisted dispense amount, using %dg: %v", DefaultG, err)
		return c
	}
	c.value = Quantize(stored)
	nuts.L.Infof("[Amount] Dispense amount restored to %dg", c.value)
	return c
}

// Quantize rounds to the nearest step and clamps into [MinG, MaxG].
func Quantize(grams int) int {
	q := int(math.Round(float64(grams)/StepG)) * StepG
	if q < MinG {
		return MinG
	}
	if q > MaxG {
		return MaxG
	}
	return q
}

// Value returns the current dispense amount.
func (c *Controller) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Increase steps the amount up by one increment, clamped at the top.
func (c *Controller) Increase() int {
	return c.apply(func(v int) int { return v + StepG })
}

// Decrease steps the amount down by one increment, clamped at the bottom.
func (c *Controller) Decrease() int {
	return c.apply(func(v int) int { return v - StepG })
}

// Set replaces the amount with the quantized, clamped value.
func (c *Controller) Set(grams int) int {
	return c.apply(func(int) int { return grams })
}

func (c *Controller) apply(f func(int) int) int {
	c.mu.Lock()
	next := Quantize(f(c.value))
	changed := next != c.value
	c.value = next
	c.mu.Unlock()

	if changed {
		nuts.L.Infof("[Amount] Dispense amount now %dg", next)
	}
	// re-propagate even when clamping left the value unchanged, so a
	// drifted mirror reconverges
	c.propagate(next)
	return next
}

// propagate fans the value out to both mirrors, detached from the caller
// so a slow remote never blocks the mutation. Each sink fails on its
// own, logged and forgotten.
func (c *Controller) propagate(grams int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), propagateTimeout)
		defer cancel()
		if err := c.config.SetDispenseAmount(ctx, grams); err != nil {
			nuts.L.Errorf("[Amount] Config sync of %dg failed: %v", grams, err)
		}
	}()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), propagateTimeout)
		defer cancel()
		if err := c.device.SetTargetWeight(ctx, grams); err != nil {
			nuts.L.Errorf("[Amount] Device sync of %dg failed: %v", grams, err)
		}
	}()
}
