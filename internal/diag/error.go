package diag

import (
	"errors"
	"fmt"

	"scooter/internal/source"
)

// Error is a compiler failure carried through Go error returns.
// Passes that abort (lowering, IR construction) and passes that accumulate
// (type checking) both produce it; the driver turns it into a Diagnostic.
type Error struct {
	Code    Code
	Reason  string
	Span    source.Span
	HasSpan bool
	Notes   []Note
}

// Errorf builds an Error without a source location.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// ErrorAt builds an Error anchored to sp.
func ErrorAt(code Code, sp source.Span, format string, args ...any) *Error {
	return &Error{Code: code, Reason: fmt.Sprintf(format, args...), Span: sp, HasSpan: true}
}

// WithNote attaches a secondary location; it returns e for chaining.
func (e *Error) WithNote(sp source.Span, format string, args ...any) *Error {
	e.Notes = append(e.Notes, Note{Span: sp, Msg: fmt.Sprintf(format, args...)})
	return e
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Reason)
}

// Is matches any *Error with the same code, so errors.Is(err, diag.Kind(c)) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Diagnostic converts the error to a SevError diagnostic.
func (e *Error) Diagnostic() Diagnostic {
	d := NewError(e.Code, e.Span, e.Reason)
	d.Notes = append(d.Notes, e.Notes...)
	return d
}

// Kind returns a sentinel for errors.Is comparisons by code.
func Kind(code Code) error {
	return &Error{Code: code}
}

// CodeOf returns the code of the first *Error in err's tree.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return UnknownCode, false
}

// Errors flattens joined and wrapped errors into the list of *Error leaves.
// Leaves that are not *Error are dropped.
func Errors(err error) []*Error {
	if err == nil {
		return nil
	}
	var out []*Error
	var walk func(error)
	walk = func(e error) {
		if e == nil {
			return
		}
		if de, ok := e.(*Error); ok {
			out = append(out, de)
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)
	return out
}

// ReportErrors forwards every *Error in err to r. Returns the number reported.
func ReportErrors(r Reporter, err error) int {
	errs := Errors(err)
	for _, e := range errs {
		b := ReportError(r, e.Code, e.Span, e.Reason)
		for _, n := range e.Notes {
			b.WithNote(n.Span, n.Msg)
		}
		b.Emit()
	}
	return len(errs)
}
