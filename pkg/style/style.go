// Package style defines style properties and the blocks that carry them.
//
// A [Style] is a plain property→value block. Blocks are shared: the same
// block may be bound to many widgets, parts and states at once, and the
// cascade engine only ever reads them. Widgets that need private values use
// local properties, which live in blocks the engine owns.
//
// Parts and states select where a block applies. [PartSelector] and
// [StateSelector] add an explicit "any" variant for matching and removal so
// wildcards never hide inside reserved numbers.
package style

import (
	"github.com/go-drift/cascade/pkg/graphics"
)

type entry struct {
	prop  Prop
	value Value
}

// Style is an ordered mapping from property to value.
//
// The zero value is an empty block ready to use. Mutating a shared block
// notifies nobody; report the change to the engine afterwards so widget
// caches are refreshed.
type Style struct {
	entries []entry
}

// New creates an empty style block.
func New() *Style {
	return &Style{}
}

// Set adds prop or overwrites its value.
func (s *Style) Set(prop Prop, v Value) {
	for i := range s.entries {
		if s.entries[i].prop == prop {
			s.entries[i].value = v
			return
		}
	}
	s.entries = append(s.entries, entry{prop: prop, value: v})
}

// Get returns the value of prop and whether the block defines it.
func (s *Style) Get(prop Prop) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	for i := range s.entries {
		if s.entries[i].prop == prop {
			return s.entries[i].value, true
		}
	}
	return Value{}, false
}

// Has reports whether the block defines prop.
func (s *Style) Has(prop Prop) bool {
	_, ok := s.Get(prop)
	return ok
}

// Remove deletes prop and reports whether it was present.
func (s *Style) Remove(prop Prop) bool {
	if s == nil {
		return false
	}
	for i := range s.entries {
		if s.entries[i].prop == prop {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of properties in the block.
func (s *Style) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Range calls fn for each property in insertion order until fn returns false.
func (s *Style) Range(fn func(Prop, Value) bool) {
	if s == nil {
		return
	}
	for _, e := range s.entries {
		if !fn(e.prop, e.value) {
			return
		}
	}
}

// Props returns the defined properties in insertion order.
func (s *Style) Props() []Prop {
	out := make([]Prop, 0, s.Len())
	s.Range(func(p Prop, _ Value) bool {
		out = append(out, p)
		return true
	})
	return out
}

// Reset removes every property.
func (s *Style) Reset() {
	s.entries = s.entries[:0]
}

// Typed setters for the properties hosts touch most. They return the block
// so a style can be built in one expression.

func (s *Style) SetNum(prop Prop, v int32) *Style {
	s.Set(prop, Num(v))
	return s
}

func (s *Style) SetColor(prop Prop, c graphics.Color) *Style {
	s.Set(prop, ColorValue(c))
	return s
}

func (s *Style) SetRef(prop Prop, v any) *Style {
	s.Set(prop, Ref(v))
	return s
}

func (s *Style) SetBgColor(c graphics.Color) *Style { return s.SetColor(PropBgColor, c) }

func (s *Style) SetBgOpa(v int32) *Style { return s.SetNum(PropBgOpa, v) }

func (s *Style) SetOpa(v int32) *Style { return s.SetNum(PropOpa, v) }

func (s *Style) SetRadius(v int32) *Style { return s.SetNum(PropRadius, v) }

func (s *Style) SetBorderWidth(v int32) *Style { return s.SetNum(PropBorderWidth, v) }

func (s *Style) SetTextColor(c graphics.Color) *Style { return s.SetColor(PropTextColor, c) }

// SetPadAll sets the four outer paddings to v.
func (s *Style) SetPadAll(v int32) *Style {
	s.SetNum(PropPadTop, v)
	s.SetNum(PropPadBottom, v)
	s.SetNum(PropPadLeft, v)
	return s.SetNum(PropPadRight, v)
}

// SetTransition attaches a transition descriptor.
func (s *Style) SetTransition(d *TransitionDesc) *Style {
	return s.SetRef(PropTransition, d)
}

// Equal reports whether both blocks define the same properties with equal
// values, in any order.
func (s *Style) Equal(o *Style) bool {
	if s.Len() != o.Len() {
		return false
	}
	same := true
	s.Range(func(p Prop, v Value) bool {
		ov, ok := o.Get(p)
		same = ok && v.Equal(ov)
		return same
	})
	return same
}

// CopyFrom replaces the contents of s with those of o.
func (s *Style) CopyFrom(o *Style) {
	s.Reset()
	o.Range(func(p Prop, v Value) bool {
		s.Set(p, v)
		return true
	})
}
