package cascade

import "github.com/go-drift/cascade/pkg/style"

// Widget is what the engine needs from a node of the host tree.
//
// Parent must return an untyped nil for the root, not a typed nil pointer.
type Widget interface {
	// State returns the active state mask.
	State() style.State
	// Parent returns the parent widget or nil.
	Parent() Widget
	// StyleList returns the widget's binding list. It must return the same
	// list for the lifetime of the widget.
	StyleList() *StyleList
	// VisitChildren calls visitor for each child until it returns false.
	VisitChildren(visitor func(Widget) bool)
}

// Stateful is a widget whose state the engine can change.
type Stateful interface {
	Widget
	// SetActiveState stores the new mask. It must not call back into the
	// engine.
	SetActiveState(style.State)
}

// walk visits w and its descendants depth first until fn returns false.
func walk(w Widget, fn func(Widget) bool) bool {
	if !fn(w) {
		return false
	}
	cont := true
	w.VisitChildren(func(child Widget) bool {
		cont = walk(child, fn)
		return cont
	})
	return cont
}
