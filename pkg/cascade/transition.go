package cascade

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/go-drift/cascade/pkg/animation"
	"github.com/go-drift/cascade/pkg/errors"
	"github.com/go-drift/cascade/pkg/style"
)

// TransitionSpec times one property transition.
type TransitionSpec struct {
	Duration time.Duration
	Delay    time.Duration
	// Path shapes progress; nil means animation.LinearCurve.
	Path func(float64) float64
}

// TransitionInfo describes a running transition.
type TransitionInfo struct {
	Widget  Widget
	Part    style.Part
	Prop    style.Prop
	Start   style.Value
	End     style.Value
	Current style.Value
	Spec    TransitionSpec
}

type transition struct {
	widget Widget
	part   style.Part
	prop   style.Prop
	start  style.Value
	end    style.Value
	cur    style.Value
	spec   TransitionSpec
	block  *style.Style
	ticker *animation.Ticker
}

// CreateTransition animates prop on part of w from its settled value in prev
// to its settled value in next. While running, the interpolated value
// outranks every other binding of (part, prop).
//
// A transition already running on the same (part, prop) is replaced and its
// current value becomes the new start. When w skips transitions or
// refreshing is disabled the new value applies immediately.
func (e *Engine) CreateTransition(w Widget, prop style.Prop, part style.Part, prev, next style.State, spec TransitionSpec) {
	if !prop.Valid() {
		return
	}
	start := GetPropInState(w, part, prop, prev)
	end := GetPropInState(w, part, prop, next)
	e.startTransition(w, part, prop, start, end, spec)
}

func (e *Engine) startTransition(w Widget, part style.Part, prop style.Prop, start, end style.Value, spec TransitionSpec) {
	if old := e.find(w, part, prop); old != nil {
		start = old.cur
		e.cancel(old)
	}
	if !e.refreshEnabled || w.StyleList().SkipTransitions() {
		e.RefreshStyle(w, style.OnPart(part), prop)
		return
	}
	if start.Equal(end) || (spec.Duration <= 0 && spec.Delay <= 0) {
		e.notify(w, style.OnPart(part), prop)
		return
	}
	l := w.StyleList()
	if l.Len() >= e.maxBindings {
		err := fmt.Errorf("%s on %s applied without transition: %w (max %d)",
			prop, part, errors.ErrCapacityExceeded, e.maxBindings)
		report("cascade.transition", errors.KindTransition, err)
		e.notify(w, style.OnPart(part), prop)
		return
	}
	if spec.Path == nil {
		spec.Path = animation.LinearCurve
	}

	tr := &transition{
		widget: w,
		part:   part,
		prop:   prop,
		start:  start,
		end:    end,
		cur:    start,
		spec:   spec,
		block:  style.New(),
	}
	tr.block.Set(prop, start)
	l.append(Binding{Style: tr.block, Part: style.OnPart(part), State: style.StateDefault, Transition: true})
	tr.ticker = e.scheduler.NewTicker(func(elapsed time.Duration) {
		defer errors.Recover("cascade.transition")
		e.step(tr, elapsed)
	})
	e.transitions = append(e.transitions, tr)
	tr.ticker.Start()

	e.log.Debug().Stringer("prop", prop).Stringer("part", part).
		Str("from", start.Format(prop)).Str("to", end.Format(prop)).
		Dur("duration", spec.Duration).Dur("delay", spec.Delay).Msg("transition started")
	e.notify(w, style.OnPart(part), prop)
}

func (e *Engine) step(tr *transition, elapsed time.Duration) {
	run := elapsed - tr.spec.Delay
	if run < 0 {
		return
	}
	if tr.spec.Duration <= 0 || run >= tr.spec.Duration {
		e.finish(tr)
		return
	}
	p := tr.spec.Path(float64(run) / float64(tr.spec.Duration))
	v := interpolate(tr.prop.Kind(), tr.start, tr.end, p)
	if v.Equal(tr.cur) {
		return
	}
	tr.cur = v
	tr.block.Set(tr.prop, v)
	e.notify(tr.widget, style.OnPart(tr.part), tr.prop)
}

func interpolate(kind style.Kind, a, b style.Value, p float64) style.Value {
	switch kind {
	case style.KindNum:
		return style.Num(int32(math.Floor(animation.LerpFloat64(float64(a.Num), float64(b.Num), p))))
	case style.KindColor:
		return style.ColorValue(animation.LerpColor(a.Color, b.Color, p))
	default:
		if p >= 1 {
			return b
		}
		return a
	}
}

func (e *Engine) finish(tr *transition) {
	e.drop(tr)
	e.log.Debug().Stringer("prop", tr.prop).Stringer("part", tr.part).Msg("transition done")
	e.notify(tr.widget, style.OnPart(tr.part), tr.prop)
	if e.OnTransitionDone != nil {
		e.OnTransitionDone(tr.widget, tr.part, tr.prop)
	}
}

// cancel stops tr without completion hooks.
func (e *Engine) cancel(tr *transition) {
	e.drop(tr)
	tr.widget.StyleList().invalidate()
}

func (e *Engine) drop(tr *transition) {
	tr.ticker.Stop()
	e.transitions = slices.DeleteFunc(e.transitions, func(o *transition) bool { return o == tr })
	tr.widget.StyleList().removeBlock(tr.block)
}

func (e *Engine) cancelWhere(match func(*transition) bool) {
	for _, tr := range slices.Clone(e.transitions) {
		if match(tr) {
			e.cancel(tr)
		}
	}
}

func (e *Engine) find(w Widget, part style.Part, prop style.Prop) *transition {
	for _, tr := range e.transitions {
		if tr.widget == w && tr.part == part && tr.prop == prop {
			return tr
		}
	}
	return nil
}

// ActiveTransitions returns the running transitions in start order.
func (e *Engine) ActiveTransitions() []TransitionInfo {
	out := make([]TransitionInfo, len(e.transitions))
	for i, tr := range e.transitions {
		out[i] = TransitionInfo{
			Widget:  tr.widget,
			Part:    tr.part,
			Prop:    tr.prop,
			Start:   tr.start,
			End:     tr.end,
			Current: tr.cur,
			Spec:    tr.spec,
		}
	}
	return out
}
