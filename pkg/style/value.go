package style

import (
	"fmt"
	"reflect"

	"github.com/go-drift/cascade/pkg/graphics"
)

// Value holds a property value. Which field is meaningful depends on the
// property's [Kind]; the others stay zero.
type Value struct {
	Num   int32
	Color graphics.Color
	// Ref carries pointers and strings: fonts, image sources, content text,
	// transition descriptors.
	Ref any
}

// Num returns a numeric value.
func Num(v int32) Value {
	return Value{Num: v}
}

// ColorValue returns a color value.
func ColorValue(c graphics.Color) Value {
	return Value{Color: c}
}

// Ref returns a reference value.
func Ref(v any) Value {
	return Value{Ref: v}
}

// IsZero reports whether every field is unset.
func (v Value) IsZero() bool {
	return v.Num == 0 && v.Color == 0 && v.Ref == nil
}

// Equal compares two values field by field. Refs of non-comparable dynamic
// types are compared by identity of their type and deep equality.
func (v Value) Equal(o Value) bool {
	if v.Num != o.Num || v.Color != o.Color {
		return false
	}
	return refEqual(v.Ref, o.Ref)
}

func refEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// Format renders v the way prop interprets it.
func (v Value) Format(prop Prop) string {
	switch prop.Kind() {
	case KindColor:
		return v.Color.Hex()
	case KindRef:
		switch r := v.Ref.(type) {
		case nil:
			return "none"
		case string:
			return fmt.Sprintf("%q", r)
		case fmt.Stringer:
			return r.String()
		default:
			return fmt.Sprintf("%T", r)
		}
	default:
		return fmt.Sprint(v.Num)
	}
}
