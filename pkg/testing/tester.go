package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/cascade/pkg/animation"
	"github.com/go-drift/cascade/pkg/cascade"
	"github.com/go-drift/cascade/pkg/core"
	"github.com/go-drift/cascade/pkg/style"
)

// ErrSettleTimeout is returned by PumpAndSettle when transitions are still
// running at the deadline.
var ErrSettleTimeout = errors.New("pump and settle timed out")

// FrameDuration is the clock step of PumpAndSettle.
const FrameDuration = 16 * time.Millisecond

// StyleEvent is one OnStyleChanged call.
type StyleEvent struct {
	Widget cascade.Widget
	Part   style.PartSelector
	Prop   style.Prop
}

// StateEvent is one OnStateChanged call.
type StateEvent struct {
	Widget cascade.Widget
	Cmp    cascade.StateCmp
}

// DoneEvent is one OnTransitionDone call.
type DoneEvent struct {
	Widget cascade.Widget
	Part   style.Part
	Prop   style.Prop
}

// StyleTester wires an engine to a fake clock and records every hook call.
type StyleTester struct {
	clock  *FakeClock
	sched  *animation.Scheduler
	engine *cascade.Engine
	root   *core.Node

	StyleEvents []StyleEvent
	StateEvents []StateEvent
	DoneEvents  []DoneEvent
}

// NewStyleTester creates a tester with a mounted root node named "root".
func NewStyleTester(opts cascade.Options) *StyleTester {
	clk := NewFakeClock()
	t := &StyleTester{
		clock: clk,
		sched: animation.NewScheduler(clk),
		root:  core.NewNode("root"),
	}
	opts.Scheduler = t.sched
	t.engine = cascade.NewEngine(opts)
	t.engine.OnStyleChanged = func(w cascade.Widget, part style.PartSelector, prop style.Prop) {
		t.StyleEvents = append(t.StyleEvents, StyleEvent{w, part, prop})
	}
	t.engine.OnStateChanged = func(w cascade.Widget, cmp cascade.StateCmp) {
		t.StateEvents = append(t.StateEvents, StateEvent{w, cmp})
	}
	t.engine.OnTransitionDone = func(w cascade.Widget, part style.Part, prop style.Prop) {
		t.DoneEvents = append(t.DoneEvents, DoneEvent{w, part, prop})
	}
	t.engine.Mount(t.root)
	return t
}

// NewStyleTesterWithT creates a tester with default options and detaches
// the root when the test ends.
func NewStyleTesterWithT(tb testing.TB) *StyleTester {
	tester := NewStyleTester(cascade.Options{})
	tb.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup cancels every running transition.
func (t *StyleTester) Cleanup() {
	t.engine.Detach(t.root)
}

// Clock returns the fake clock.
func (t *StyleTester) Clock() *FakeClock {
	return t.clock
}

// Scheduler returns the scheduler driving transitions.
func (t *StyleTester) Scheduler() *animation.Scheduler {
	return t.sched
}

// Engine returns the engine under test.
func (t *StyleTester) Engine() *cascade.Engine {
	return t.engine
}

// Root returns the mounted root node.
func (t *StyleTester) Root() *core.Node {
	return t.root
}

// Pump advances the clock by d and steps the scheduler once.
func (t *StyleTester) Pump(d time.Duration) {
	t.clock.Advance(d)
	t.sched.Step()
}

// PumpAndSettle steps frames of FrameDuration until no transition is
// running or timeout elapses.
func (t *StyleTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.sched.Step()
		if t.sched.Active() == 0 {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// Reset clears the recorded events.
func (t *StyleTester) Reset() {
	t.StyleEvents = nil
	t.StateEvents = nil
	t.DoneEvents = nil
}

// EventsFor returns the style events recorded for w.
func (t *StyleTester) EventsFor(w cascade.Widget) []StyleEvent {
	var out []StyleEvent
	for _, ev := range t.StyleEvents {
		if ev.Widget == w {
			out = append(out, ev)
		}
	}
	return out
}

// Chain appends a chain of nodes named names below the root and returns
// them outermost first.
func (t *StyleTester) Chain(names ...string) []*core.Node {
	out := make([]*core.Node, len(names))
	parent := t.root
	for i, name := range names {
		parent = parent.AddChild(core.NewNode(name))
		out[i] = parent
	}
	return out
}
