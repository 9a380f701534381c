package cascade

import (
	"time"

	"github.com/go-drift/cascade/pkg/errors"
	"github.com/go-drift/cascade/pkg/graphics"
	"github.com/go-drift/cascade/pkg/style"
)

// FadeIn animates the opacity of w and every descendant from transparent to
// opaque. The final opacity is kept as a local value of the main part.
func (e *Engine) FadeIn(w Widget, duration, delay time.Duration) {
	e.fade(w, graphics.OpaTransp, graphics.OpaCover, duration, delay)
}

// FadeOut animates the opacity of w and every descendant from its current
// value to transparent.
func (e *Engine) FadeOut(w Widget, duration, delay time.Duration) {
	e.fade(w, -1, graphics.OpaTransp, duration, delay)
}

// fade starts from the current opacity of each widget when from is negative.
func (e *Engine) fade(w Widget, from, to int32, duration, delay time.Duration) {
	spec := TransitionSpec{Duration: duration, Delay: delay}
	target := style.Num(to)
	walk(w, func(n Widget) bool {
		start := style.Num(from)
		if from < 0 {
			start = GetProp(n, style.PartMain, style.PropOpa)
		}
		if err := e.SetLocalProp(n, style.PartMain, style.StateDefault, style.PropOpa, target); err != nil {
			report("cascade.fade", errors.KindCapacity, err)
			return true
		}
		e.startTransition(n, style.PartMain, style.PropOpa, start, target, spec)
		return true
	})
}
