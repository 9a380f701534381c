// Package animation provides the timing primitives that drive style
// transitions.
//
// # Core Components
//
//   - [Scheduler]: owns the set of active tickers and advances them when the
//     host calls [Scheduler.Step], typically once per frame.
//
//   - [Ticker]: invokes a callback with the time elapsed since it was started,
//     once per scheduler step, until stopped.
//
//   - Curves: easing functions that shape transition progress, such as
//     [LinearCurve], [EaseIn], [EaseOut] and [CubicBezier].
//
//   - Lerp helpers: [LerpFloat64], [LerpInt32] and [LerpColor] interpolate
//     between a start and an end value.
//
// Nothing runs in the background. Progress happens only inside Step, so every
// value read between two steps is stable.
//
//	sched := animation.NewScheduler(nil)
//	t := sched.NewTicker(func(elapsed time.Duration) { ... })
//	t.Start()
//	// each frame
//	sched.Step()
package animation

import (
	"slices"
	"sync"
	"time"
)

// Scheduler advances the tickers registered with it.
//
// Tickers are stepped in the order they were started. A ticker started or
// stopped from inside a callback takes effect on the next Step.
type Scheduler struct {
	mu     sync.Mutex
	clock  Clock
	active []*Ticker
}

// NewScheduler creates a scheduler reading time from clock.
// A nil clock uses the package clock (see [SetClock]).
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// DefaultScheduler backs [NewTicker] and [StepTickers].
var DefaultScheduler = NewScheduler(nil)

func (s *Scheduler) now() time.Time {
	if s.clock != nil {
		return s.clock.Now()
	}
	return Now()
}

// NewTicker creates a stopped ticker bound to this scheduler.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback, sched: s}
}

// Step advances all active tickers.
// This should be called once per frame by the host.
func (s *Scheduler) Step() {
	s.mu.Lock()
	if len(s.active) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy so callbacks can start or stop tickers without holding the lock.
	tickers := slices.Clone(s.active)
	s.mu.Unlock()

	now := s.now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// Active returns the number of running tickers.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Ticker calls a callback on each scheduler step while active.
//
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	callback func(elapsed time.Duration)
	sched    *Scheduler
	isActive bool
	start    time.Time
}

// NewTicker creates a ticker on the [DefaultScheduler].
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return DefaultScheduler.NewTicker(callback)
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.sched.now()
	t.sched.mu.Lock()
	t.sched.active = append(t.sched.active, t)
	t.sched.mu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.sched.mu.Lock()
	t.sched.active = slices.DeleteFunc(t.sched.active, func(other *Ticker) bool {
		return other == t
	})
	t.sched.mu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.sched.now().Sub(t.start)
}

// StepTickers advances all tickers of the [DefaultScheduler].
func StepTickers() {
	DefaultScheduler.Step()
}

// HasActiveTickers returns true if the [DefaultScheduler] has running tickers.
func HasActiveTickers() bool {
	return DefaultScheduler.Active() > 0
}
