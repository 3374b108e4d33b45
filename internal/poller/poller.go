// FilePath: internal/poller/poller.go
package poller

import (
	"context"
	"sync"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/animalhaven/feederhub/internal/models"
)

const (
	defaultInterval  = 3 * time.Second
	defaultTimeout   = 2 * time.Second
	defaultThreshold = 3
)

// StatusFetcher is the read side of the device client.
type StatusFetcher interface {
	FetchStatus(ctx context.Context) (*models.StatusSnapshot, error)
}

// State is a copy of the poller's current view of the device. Consumers
// always get their own copy, never shared pointers.
type State struct {
	Snapshot  *models.StatusSnapshot
	Available bool
	UpdatedAt time.Time
}

// Options tunes the polling loop. Zero values fall back to defaults.
type Options struct {
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold int
	Now              func() time.Time
}

// Poller drives the fixed-cadence status reconciliation loop. Failures
// are debounced: availability only drops after FailureThreshold misses in
// a row, while a single success restores it immediately. The failure
// count itself is not observable; the outside world sees two states.
type Poller struct {
	fetcher   StatusFetcher
	interval  time.Duration
	timeout   time.Duration
	threshold int
	now       func() time.Time

	mu         sync.Mutex
	snapshot   *models.StatusSnapshot
	available  bool
	failures   int
	updatedAt  time.Time
	issuedSeq  uint64
	appliedSeq uint64
	onUpdate   []func(State, error)
}

// New creates a poller reading from the given fetcher.
func New(fetcher StatusFetcher, opts Options) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.FailureThreshold <= 0 {
		opts.FailureThreshold = defaultThreshold
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Poller{
		fetcher:   fetcher,
		interval:  opts.Interval,
		timeout:   opts.Timeout,
		threshold: opts.FailureThreshold,
		now:       opts.Now,
	}
}

// OnUpdate registers a callback invoked after every applied poll with the
// resulting state and the poll's error, nil on success. Discarded stale
// responses do not fire it.
func (p *Poller) OnUpdate(fn func(State, error)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = append(p.onUpdate, fn)
}

// State returns the current availability and last-known snapshot.
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

// Run polls until ctx is cancelled. Cancelling tears down the loop and
// any in-flight request together.
func (p *Poller) Run(ctx context.Context) {
	nuts.L.Infof("[Poller] Started, polling every %v", p.interval)
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			nuts.L.Infof("[Poller] Stopped: %v", ctx.Err())
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// poll issues one fetch on its own goroutine so a hung request can never
// stall the cadence. Overlapping responses are serialized by sequence
// number in apply.
func (p *Poller) poll(ctx context.Context) {
	seq := p.nextSeq()
	go func() {
		reqCtx, cancel := context.WithTimeout(ctx, p.timeout)
		defer cancel()
		snapshot, err := p.fetcher.FetchStatus(reqCtx)
		p.apply(seq, snapshot, err)
	}()
}

func (p *Poller) nextSeq() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.issuedSeq++
	return p.issuedSeq
}

// apply folds one poll result into the state. Responses issued before the
// last applied one are dropped: last issued wins, not last resolved.
func (p *Poller) apply(seq uint64, snapshot *models.StatusSnapshot, err error) {
	p.mu.Lock()
	if seq <= p.appliedSeq {
		p.mu.Unlock()
		nuts.L.Debugf("[Poller] Discarded stale poll response (seq %d, applied %d)", seq, p.appliedSeq)
		return
	}
	p.appliedSeq = seq
	p.updatedAt = p.now()

	if err != nil {
		p.failures++
		if p.failures == p.threshold {
			p.available = false
			p.snapshot = nil
			nuts.L.Warnf("[Poller] Device offline after %d consecutive failures: %v", p.failures, err)
		} else {
			nuts.L.Debugf("[Poller] Poll failure %d (threshold %d): %v", p.failures, p.threshold, err)
		}
	} else {
		if p.failures >= p.threshold {
			nuts.L.Infof("[Poller] Device reachable again after %d failures", p.failures)
		}
		p.failures = 0
		p.snapshot = snapshot
		p.available = snapshot.Online
	}

	state := p.stateLocked()
	callbacks := make([]func(State, error), len(p.onUpdate))
	copy(callbacks, p.onUpdate)
	p.mu.Unlock()

	for _, fn := range callbacks {
		fn(state, err)
	}
}

func (p *Poller) stateLocked() State {
	state := State{Available: p.available, UpdatedAt: p.updatedAt}
	if p.snapshot != nil {
		snapshot := *p.snapshot
		state.Snapshot = &snapshot
	}
	return state
}
