package cascade

import "github.com/go-drift/cascade/pkg/style"

// GetProp returns the effective value of prop on part of w in its active
// state. Inheritable properties fall back to the parent's main part; when
// nothing defines prop the property default is returned.
func GetProp(w Widget, part style.Part, prop style.Prop) style.Value {
	return resolve(w, part, prop, w.State(), true)
}

// GetPropInState resolves prop as if w were in state. Running transitions
// are ignored so the result is the settled value of that state. Inherited
// values come from ancestors in their own active state.
func GetPropInState(w Widget, part style.Part, prop style.Prop, state style.State) style.Value {
	return resolve(w, part, prop, state, false)
}

func resolve(w Widget, part style.Part, prop style.Prop, state style.State, withTrans bool) style.Value {
	if !prop.Valid() {
		return style.Value{}
	}
	for cur := w; cur != nil; {
		if v, ok := cur.StyleList().lookup(part, prop, state, withTrans); ok {
			return v
		}
		if !prop.Inherits() {
			break
		}
		cur = cur.Parent()
		if cur == nil {
			break
		}
		part = style.PartMain
		state = cur.State()
		withTrans = true
	}
	return prop.Default()
}

type rank struct {
	local       bool
	specificity int
}

// outranks is strict so the reverse scan keeps the most recent binding on
// a tie.
func (r rank) outranks(o rank) bool {
	if r.local != o.local {
		return r.local
	}
	return r.specificity > o.specificity
}

// lookup finds prop among the widget's own bindings.
func (l *StyleList) lookup(part style.Part, prop style.Prop, state style.State, withTrans bool) (style.Value, bool) {
	if l == nil {
		return style.Value{}, false
	}
	var (
		best  style.Value
		found bool
		top   rank
	)
	for i := len(l.bindings) - 1; i >= 0; i-- {
		b := &l.bindings[i]
		if !b.Part.Matches(part) {
			continue
		}
		if b.Transition {
			if !withTrans {
				continue
			}
			if v, ok := b.Style.Get(prop); ok {
				return v, true
			}
			continue
		}
		if !b.State.Applies(state) {
			continue
		}
		v, ok := b.Style.Get(prop)
		if !ok {
			continue
		}
		r := rank{local: b.Local, specificity: b.State.Specificity(state)}
		if !found || r.outranks(top) {
			best, top, found = v, r, true
		}
	}
	return best, found
}
