package cascade

import (
	"fmt"

	"github.com/go-drift/cascade/pkg/style"
)

// StateCmp is the cost of moving a widget between two states, from cheapest
// to most expensive.
type StateCmp uint8

const (
	// StateSame: every property resolves identically.
	StateSame StateCmp = iota
	// StateDiffRedraw: only in-bounds visuals differ.
	StateDiffRedraw
	// StateDiffDrawPad: the drawn area around the widget changes.
	StateDiffDrawPad
	// StateDiffLayout: size or position can change.
	StateDiffLayout
)

func (c StateCmp) String() string {
	switch c {
	case StateSame:
		return "same"
	case StateDiffRedraw:
		return "redraw"
	case StateDiffDrawPad:
		return "draw_pad"
	case StateDiffLayout:
		return "layout"
	default:
		return fmt.Sprintf("StateCmp(%d)", int(c))
	}
}

type partProp struct {
	part style.Part
	prop style.Prop
}

// CompareStates reports how differently w resolves in s1 and s2. Only
// properties defined by a binding of w that applies in either state are
// examined, on every part that binding reaches; the most severe tier is
// checked first and returned on the first difference.
func CompareStates(w Widget, s1, s2 style.State) StateCmp {
	if s1 == s2 {
		return StateSame
	}
	l := w.StyleList()
	parts := l.wildcardParts()

	var layout, drawPad, redraw []partProp
	seen := make(map[partProp]bool)
	add := func(pp partProp) {
		if seen[pp] {
			return
		}
		seen[pp] = true
		switch {
		case pp.prop.AffectsLayout():
			layout = append(layout, pp)
		case pp.prop.AffectsDrawPad():
			drawPad = append(drawPad, pp)
		default:
			redraw = append(redraw, pp)
		}
	}
	for i := range l.bindings {
		b := &l.bindings[i]
		if b.Transition || (!b.State.Applies(s1) && !b.State.Applies(s2)) {
			continue
		}
		b.Style.Range(func(prop style.Prop, _ style.Value) bool {
			if p, ok := b.Part.Part(); ok {
				add(partProp{p, prop})
				return true
			}
			for _, p := range parts {
				add(partProp{p, prop})
			}
			return true
		})
	}

	differs := func(set []partProp) bool {
		for _, pp := range set {
			if !GetPropInState(w, pp.part, pp.prop, s1).Equal(GetPropInState(w, pp.part, pp.prop, s2)) {
				return true
			}
		}
		return false
	}
	switch {
	case differs(layout):
		return StateDiffLayout
	case differs(drawPad):
		return StateDiffDrawPad
	case differs(redraw):
		return StateDiffRedraw
	default:
		return StateSame
	}
}
