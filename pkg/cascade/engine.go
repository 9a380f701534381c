package cascade

import (
	stderrors "errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/go-drift/cascade/pkg/animation"
	"github.com/go-drift/cascade/pkg/errors"
	"github.com/go-drift/cascade/pkg/style"
)

// Options configures an Engine. The zero value is valid.
type Options struct {
	// MaxBindings bounds the added and local bindings of each widget's
	// style list. A transition takes a slot only while the whole list is
	// below it. Zero means DefaultMaxBindings.
	MaxBindings int
	// Scheduler drives transitions. Nil means animation.DefaultScheduler.
	Scheduler *animation.Scheduler
	// Logger receives debug traces. Nil disables logging.
	Logger *zerolog.Logger
}

// Engine applies style mutations and propagates their effects.
//
// Hooks are optional and called synchronously. They must not mutate
// bindings of the widget they are called for.
type Engine struct {
	// OnStyleChanged is called for every widget whose cache was
	// invalidated by a refresh, descendants included.
	OnStyleChanged func(w Widget, part style.PartSelector, prop style.Prop)
	// OnStateChanged is called by SetState with the comparator verdict so
	// the host can schedule layout or redraw.
	OnStateChanged func(w Widget, cmp StateCmp)
	// OnTransitionDone is called when a transition runs to completion.
	// Cancelled transitions do not report.
	OnTransitionDone func(w Widget, part style.Part, prop style.Prop)

	maxBindings    int
	refreshEnabled bool
	scheduler      *animation.Scheduler
	log            zerolog.Logger

	transitions []*transition
	roots       []Widget
}

// NewEngine creates an engine with refreshing enabled.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		maxBindings:    opts.MaxBindings,
		refreshEnabled: true,
		scheduler:      opts.Scheduler,
		log:            zerolog.Nop(),
	}
	if e.maxBindings <= 0 {
		e.maxBindings = DefaultMaxBindings
	}
	if e.scheduler == nil {
		e.scheduler = animation.DefaultScheduler
	}
	if opts.Logger != nil {
		e.log = opts.Logger.With().Str("component", "cascade").Logger()
	}
	return e
}

// MaxBindings returns the per-widget binding capacity.
func (e *Engine) MaxBindings() int {
	return e.maxBindings
}

// Scheduler returns the scheduler driving transitions.
func (e *Engine) Scheduler() *animation.Scheduler {
	return e.scheduler
}

// EnableStyleRefresh turns automatic refreshing on or off.
//
// While off, mutations still change the binding lists but do not invalidate
// caches, call hooks or start transitions. Turning refresh back on does not
// refresh anything by itself; call RefreshStyle or ReportStyleChange.
func (e *Engine) EnableStyleRefresh(enabled bool) {
	e.refreshEnabled = enabled
}

// RefreshEnabled reports the state of the refresh switch.
func (e *Engine) RefreshEnabled() bool {
	return e.refreshEnabled
}

// Batch disables refreshing and returns a function restoring the previous
// setting. Use it with defer:
//
//	restore := eng.Batch()
//	defer restore()
func (e *Engine) Batch() (restore func()) {
	prev := e.refreshEnabled
	e.refreshEnabled = false
	done := false
	return func() {
		if done {
			return
		}
		done = true
		e.refreshEnabled = prev
	}
}

func (e *Engine) capacityError(op string, w Widget) *errors.CascadeError {
	return &errors.CascadeError{
		Op:     op,
		Kind:   errors.KindCapacity,
		Err:    fmt.Errorf("%w (max %d)", errors.ErrCapacityExceeded, e.maxBindings),
		Source: fmt.Sprintf("%T", w),
	}
}

// AddStyle binds s to part and state of w. The binding is appended, so it
// wins ties against bindings added earlier. Adding the same block twice
// creates two bindings.
//
// When the list is full the binding is rejected with an error wrapping
// errors.ErrCapacityExceeded and nothing changes. Running transitions do
// not count against the capacity.
func (e *Engine) AddStyle(w Widget, part style.PartSelector, state style.State, s *style.Style) error {
	l := w.StyleList()
	if l.settledLen() >= e.maxBindings {
		return e.capacityError("cascade.AddStyle", w)
	}
	l.append(Binding{Style: s, Part: part, State: state})
	e.log.Debug().Stringer("part", part).Stringer("state", state).Int("bindings", l.Len()).Msg("style added")
	e.RefreshStyle(w, part, style.PropAll)
	return nil
}

// RemoveStyle removes every added binding matching part, state and s.
// A nil s matches every block. Local and transition bindings are only
// removed when s is nil and the selectors match them.
//
// Running transitions whose property the removed blocks defined on the
// affected parts are cancelled.
func (e *Engine) RemoveStyle(w Widget, part style.PartSelector, state style.StateSelector, s *style.Style) {
	l := w.StyleList()
	removed := l.removeFunc(func(b *Binding) bool {
		if b.Transition {
			return false
		}
		if s != nil && b.Style != s {
			return false
		}
		if !part.IsAny() && b.Part != part {
			return false
		}
		return state.Matches(b.State)
	})
	if len(removed) == 0 {
		return
	}

	for _, b := range removed {
		b.Style.Range(func(prop style.Prop, _ style.Value) bool {
			e.cancelWhere(func(tr *transition) bool {
				return tr.widget == w && tr.prop == prop && b.Part.Matches(tr.part)
			})
			return true
		})
	}
	if s == nil && part.IsAny() && state.IsAny() {
		// Nothing is left for a transition to shadow.
		e.cancelWhere(func(tr *transition) bool { return tr.widget == w })
	}

	e.log.Debug().Stringer("part", part).Stringer("state", state).Int("removed", len(removed)).Msg("style removed")
	e.RefreshStyle(w, part, style.PropAll)
}

// SetLocalProp sets prop to v in the local block of (part, state),
// creating the block on first use. Local values outrank every added block.
func (e *Engine) SetLocalProp(w Widget, part style.Part, state style.State, prop style.Prop, v style.Value) error {
	l := w.StyleList()
	block := l.local(part, state)
	if block == nil {
		if l.settledLen() >= e.maxBindings {
			return e.capacityError("cascade.SetLocalProp", w)
		}
		block = style.New()
		l.append(Binding{Style: block, Part: style.OnPart(part), State: state, Local: true})
	}
	block.Set(prop, v)
	e.RefreshStyle(w, style.OnPart(part), prop)
	return nil
}

// RemoveLocalProp deletes prop from the local block of (part, state) and
// reports whether it was there. An emptied local block is released.
func (e *Engine) RemoveLocalProp(w Widget, part style.Part, state style.State, prop style.Prop) bool {
	l := w.StyleList()
	found := false
	if block := l.local(part, state); block != nil {
		found = block.Remove(prop)
		if block.Len() == 0 {
			l.removeBlock(block)
		}
	}
	e.RefreshStyle(w, style.OnPart(part), prop)
	return found
}

// RefreshStyle invalidates the cache of w and reports the change. When prop
// is inheritable or PropAll and the change can reach the main part, the
// refresh descends to every child. It does nothing while refreshing is
// disabled.
func (e *Engine) RefreshStyle(w Widget, part style.PartSelector, prop style.Prop) {
	if !e.refreshEnabled {
		return
	}
	e.notify(w, part, prop)
}

func (e *Engine) notify(w Widget, part style.PartSelector, prop style.Prop) {
	w.StyleList().invalidate()
	if e.OnStyleChanged != nil {
		e.OnStyleChanged(w, part, prop)
	}
	if !part.Matches(style.PartMain) {
		return
	}
	if prop != style.PropAll && !prop.Inherits() {
		return
	}
	w.VisitChildren(func(child Widget) bool {
		e.notify(child, style.AnyPart, prop)
		return true
	})
}

// ReportStyleChange tells the engine a shared block was modified. Every
// mounted widget binding s is refreshed with its descendants; a nil s
// refreshes every mounted tree.
func (e *Engine) ReportStyleChange(s *style.Style) {
	if !e.refreshEnabled {
		return
	}
	for _, root := range e.roots {
		if s == nil {
			e.notify(root, style.AnyPart, style.PropAll)
			continue
		}
		e.reportIn(root, s)
	}
}

func (e *Engine) reportIn(w Widget, s *style.Style) {
	if w.StyleList().References(s) {
		// Covers the whole subtree.
		e.notify(w, style.AnyPart, style.PropAll)
		return
	}
	w.VisitChildren(func(child Widget) bool {
		e.reportIn(child, s)
		return true
	})
}

// Mount registers a root so ReportStyleChange reaches its tree.
func (e *Engine) Mount(root Widget) {
	if !slices.Contains(e.roots, root) {
		e.roots = append(e.roots, root)
	}
}

// Unmount forgets a root registered with Mount.
func (e *Engine) Unmount(root Widget) {
	e.roots = slices.DeleteFunc(e.roots, func(r Widget) bool { return r == root })
}

// Roots returns the mounted roots.
func (e *Engine) Roots() []Widget {
	return slices.Clone(e.roots)
}

// Detach prepares w and its subtree for removal from the tree: running
// transitions are cancelled without completion hooks, local and transition
// bindings are released, and a mounted w is unmounted. Shared blocks are
// untouched.
func (e *Engine) Detach(w Widget) {
	walk(w, func(n Widget) bool {
		e.cancelWhere(func(tr *transition) bool { return tr.widget == n })
		n.StyleList().removeFunc(func(b *Binding) bool { return b.Local || b.Transition })
		n.StyleList().invalidate()
		return true
	})
	e.Unmount(w)
}

// SetState moves w to state. The verdict of CompareStates decides what is
// refreshed: a layout difference refreshes w and its descendants, anything
// less only invalidates the cache of w. Transitions described by the
// transition property of each part in the new state are started first.
func (e *Engine) SetState(w Stateful, state style.State) StateCmp {
	prev := w.State()
	if prev == state {
		return StateSame
	}
	cmp := CompareStates(w, prev, state)
	w.SetActiveState(state)
	if cmp == StateSame || !e.refreshEnabled {
		return cmp
	}

	if !w.StyleList().SkipTransitions() {
		for _, part := range w.StyleList().parts() {
			desc, _ := GetPropInState(w, part, style.PropTransition, state).Ref.(*style.TransitionDesc)
			if desc == nil {
				continue
			}
			spec := TransitionSpec{Duration: desc.Duration, Delay: desc.Delay, Path: desc.Path}
			for _, prop := range desc.Props {
				e.CreateTransition(w, prop, part, prev, state, spec)
			}
		}
	}

	e.log.Debug().Stringer("from", prev).Stringer("to", state).Stringer("cmp", cmp).Msg("state changed")
	if cmp == StateDiffLayout {
		e.notify(w, style.AnyPart, style.PropAll)
	} else {
		w.StyleList().invalidate()
	}
	if e.OnStateChanged != nil {
		e.OnStateChanged(w, cmp)
	}
	return cmp
}

// AddState sets the bits of state on w.
func (e *Engine) AddState(w Stateful, state style.State) StateCmp {
	return e.SetState(w, w.State()|state)
}

// ClearState clears the bits of state on w.
func (e *Engine) ClearState(w Stateful, state style.State) StateCmp {
	return e.SetState(w, w.State()&^state)
}

// report hands an error no caller can receive to the global error handler.
func report(op string, kind errors.ErrorKind, err error) {
	var ce *errors.CascadeError
	if !stderrors.As(err, &ce) {
		ce = errors.New(op, kind, err)
	}
	errors.Report(ce)
}
