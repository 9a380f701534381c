package cascade

import (
	"math"
	"slices"

	"github.com/go-drift/cascade/pkg/style"
)

// DefaultMaxBindings is the binding capacity of a style list unless
// [Options.MaxBindings] says otherwise.
const DefaultMaxBindings = 31

// Binding attaches a style block to a part and a state mask.
type Binding struct {
	Style *style.Style
	Part  style.PartSelector
	State style.State
	// Local bindings carry values set with SetLocalProp. The engine owns
	// their block.
	Local bool
	// Transition bindings carry the interpolated value of one running
	// transition. The engine owns their block.
	Transition bool
}

// StyleList is the ordered binding list of one widget together with its
// cached flags. The zero value is an empty list.
//
// Insertion order matters: among equally specific bindings of the same
// class, the one added last wins.
type StyleList struct {
	bindings  []Binding
	skipTrans bool

	cacheState style.State
	cacheValid bool
	flags      CacheFlags
}

// Len returns the number of bindings, transitions included.
func (l *StyleList) Len() int {
	return len(l.bindings)
}

// Bindings returns a copy of the bindings in insertion order.
func (l *StyleList) Bindings() []Binding {
	return slices.Clone(l.bindings)
}

// SkipTransitions reports whether state changes apply instantly.
func (l *StyleList) SkipTransitions() bool {
	return l.skipTrans
}

// SetSkipTransitions makes state changes apply without interpolation.
func (l *StyleList) SetSkipTransitions(skip bool) {
	l.skipTrans = skip
}

// CacheValid reports whether the cached flags were computed and not
// invalidated since.
func (l *StyleList) CacheValid() bool {
	return l.cacheValid
}

// CacheState returns the state the cached flags were computed for; ok is
// false when the cache is invalid.
func (l *StyleList) CacheState() (s style.State, ok bool) {
	return l.cacheState, l.cacheValid
}

// References reports whether any binding uses s.
func (l *StyleList) References(s *style.Style) bool {
	for i := range l.bindings {
		if l.bindings[i].Style == s {
			return true
		}
	}
	return false
}

// settledLen counts the bindings that are not running transitions.
func (l *StyleList) settledLen() int {
	n := 0
	for i := range l.bindings {
		if !l.bindings[i].Transition {
			n++
		}
	}
	return n
}

func (l *StyleList) invalidate() {
	l.cacheValid = false
}

func (l *StyleList) append(b Binding) {
	l.bindings = append(l.bindings, b)
}

// local returns the local block for (part, state), or nil.
func (l *StyleList) local(part style.Part, state style.State) *style.Style {
	for i := range l.bindings {
		b := &l.bindings[i]
		if !b.Local || b.State != state {
			continue
		}
		if p, ok := b.Part.Part(); ok && p == part {
			return b.Style
		}
	}
	return nil
}

// removeFunc drops every binding for which match returns true and returns
// the removed ones.
func (l *StyleList) removeFunc(match func(*Binding) bool) []Binding {
	var removed []Binding
	kept := l.bindings[:0]
	for _, b := range l.bindings {
		if match(&b) {
			removed = append(removed, b)
			continue
		}
		kept = append(kept, b)
	}
	clear(l.bindings[len(kept):])
	l.bindings = kept
	return removed
}

// removeBlock drops the binding that carries exactly block.
func (l *StyleList) removeBlock(block *style.Style) {
	l.removeFunc(func(b *Binding) bool { return b.Style == block })
}

// parts returns the concrete parts named by bindings, always including
// PartMain, in first-seen order.
func (l *StyleList) parts() []style.Part {
	out := []style.Part{style.PartMain}
	for i := range l.bindings {
		if p, ok := l.bindings[i].Part.Part(); ok && !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

// wildcardParts returns parts() plus one part no binding names. Every
// unnamed part resolves through wildcard bindings only, so one stands in
// for all of them.
func (l *StyleList) wildcardParts() []style.Part {
	out := l.parts()
	for p := style.PartScrollbar; p < math.MaxUint8; p++ {
		if !slices.Contains(out, p) {
			return append(out, p)
		}
	}
	return out
}
