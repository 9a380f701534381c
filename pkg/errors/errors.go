// Package errors provides structured error handling for the cascade engine.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrCapacityExceeded is wrapped by errors returned when a widget's style
// list is full.
var ErrCapacityExceeded = stderrors.New("style list capacity exceeded")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindCapacity indicates a binding was rejected because the list is full.
	KindCapacity
	// KindSheet indicates a style sheet could not be read or decoded.
	KindSheet
	// KindConfig indicates invalid configuration.
	KindConfig
	// KindTransition indicates a transition could not be started.
	KindTransition
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindCapacity:
		return "capacity"
	case KindSheet:
		return "sheet"
	case KindConfig:
		return "config"
	case KindTransition:
		return "transition"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// CascadeError represents a structured error raised by the engine or its
// loaders.
type CascadeError struct {
	// Op is the operation that failed (e.g., "cascade.AddStyle").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Source names the file or widget involved, if any.
	Source string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *CascadeError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s [%s] %s: %v", e.Op, e.Kind, e.Source, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *CascadeError) Unwrap() error {
	return e.Err
}

// New returns a CascadeError stamped with the current time.
func New(op string, kind ErrorKind, err error) *CascadeError {
	return &CascadeError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// IsKind reports whether err wraps a CascadeError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ce *CascadeError
	return stderrors.As(err, &ce) && ce.Kind == kind
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cascade.transition").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported outside a normal return path, such
// as failures inside scheduler callbacks.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *CascadeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
