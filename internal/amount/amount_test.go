// FilePath: internal/amount/amount_test.go
package amount

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// sink records every propagated value on a channel so tests can wait for
// the detached goroutines without sleeping.
type sink struct {
	calls  chan int
	seed   int
	getErr error
	setErr error
}

func newSink() *sink {
	return &sink{calls: make(chan int, 32)}
}

func (s *sink) SetDispenseAmount(ctx context.Context, grams int) error {
	s.calls <- grams
	return s.setErr
}

func (s *sink) GetDispenseAmount(ctx context.Context) (int, error) {
	if s.getErr != nil {
		return 0, s.getErr
	}
	return s.seed, nil
}

func (s *sink) SetTargetWeight(ctx context.Context, grams int) error {
	s.calls <- grams
	return s.setErr
}

func (s *sink) next(t *testing.T) int {
	t.Helper()
	select {
	case v := <-s.calls:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("no propagated value before timeout")
		return 0
	}
}

func (s *sink) assertQuiet(t *testing.T) {
	t.Helper()
	select {
	case v := <-s.calls:
		t.Fatalf("unexpected propagation of %d", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func newTestController(t *testing.T) (*Controller, *sink, *sink) {
	t.Helper()
	config := newSink()
	config.seed = 150
	device := newSink()
	return New(context.Background(), config, device), config, device
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		name     string
		in       int
		expected int
	}{
		{"far below range", -9999, 50},
		{"zero", 0, 50},
		{"below half step", 24, 50},
		{"rounds up from half step", 75, 100},
		{"rounds down", 74, 50},
		{"already on the grid", 250, 250},
		{"rounds to nearest step", 283, 300},
		{"just above range", 517, 500},
		{"far above range", 9999, 500},
		{"max", 500, 500},
		{"min", 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Quantize(tt.in))
		})
	}
}

func TestController_SeedsFromConfig(t *testing.T) {
	config := newSink()
	config.seed = 137 // off-grid persisted value
	c := New(context.Background(), config, newSink())
	assert.Equal(t, 150, c.Value(), "the persisted value is quantized on restore")
}

func TestController_SeedFallsBackToDefault(t *testing.T) {
	config := newSink()
	config.getErr = errors.New("log service down")
	c := New(context.Background(), config, newSink())
	assert.Equal(t, DefaultG, c.Value())
}

func TestController_SetQuantizesAndPropagates(t *testing.T) {
	c, config, device := newTestController(t)

	got := c.Set(283)

	assert.Equal(t, 300, got)
	assert.Equal(t, 300, c.Value())
	assert.Equal(t, 300, config.next(t))
	assert.Equal(t, 300, device.next(t))
}

func TestController_StepSequenceStaysOnGrid(t *testing.T) {
	c, _, _ := newTestController(t)

	c.Set(500)
	assert.Equal(t, 500, c.Increase(), "clamped at the top")
	assert.Equal(t, 450, c.Decrease())
	assert.Equal(t, 400, c.Decrease())

	c.Set(50)
	assert.Equal(t, 50, c.Decrease(), "clamped at the bottom")
	assert.Equal(t, 100, c.Increase())
}

func TestController_ClampedMutationStillPropagates(t *testing.T) {
	c, config, device := newTestController(t)
	c.Set(500)
	config.next(t)
	device.next(t)

	got := c.Increase()

	assert.Equal(t, 500, got)
	assert.Equal(t, 500, config.next(t), "even an unchanged value re-syncs a drifted mirror")
	assert.Equal(t, 500, device.next(t))
}

func TestController_SinkFailuresDoNotRollBack(t *testing.T) {
	c, config, device := newTestController(t)
	config.setErr = errors.New("log service down")
	device.setErr = errors.New("device down")

	got := c.Set(400)

	assert.Equal(t, 400, got)
	config.next(t)
	device.next(t)
	assert.Equal(t, 400, c.Value(), "local state keeps the value whatever the mirrors say")
}

func TestController_SeedingDoesNotPropagate(t *testing.T) {
	_, config, device := newTestController(t)
	config.assertQuiet(t)
	device.assertQuiet(t)
}
