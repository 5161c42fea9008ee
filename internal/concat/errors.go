package concat

import (
	"concatident/internal/diag"
	"concatident/internal/source"
)

// Error is a failed expansion. It is reported as a diagnostic anchored at Span.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
	Hint string
}

func (e *Error) Error() string {
	return e.Code.ID() + ": " + e.Msg
}

// Is matches the sentinel of the same code, so errors.Is(err, ErrEmptyIdentifier) works.
func (e *Error) Is(target error) bool {
	s, ok := target.(sentinel)
	return ok && diag.Code(s) == e.Code
}

// Report sends e to r; the hint, if any, becomes a note on the same span.
func (e *Error) Report(r diag.Reporter) {
	b := diag.ReportError(r, e.Code, e.Span, e.Msg)
	if e.Hint != "" {
		b.WithNote(e.Span, "help: "+e.Hint)
	}
	b.Emit()
}

type sentinel diag.Code

func (s sentinel) Error() string { return diag.Code(s).Title() }

var (
	ErrExpectedFragment            error = sentinel(diag.MacExpectedFragment)
	ErrUnsupportedFragmentKind     error = sentinel(diag.MacUnsupportedFragmentKind)
	ErrInvalidFragmentCharacters   error = sentinel(diag.MacInvalidFragmentCharacters)
	ErrEmptyIdentifier             error = sentinel(diag.MacEmptyIdentifier)
	ErrIdentifierIsSingleBoolean   error = sentinel(diag.MacIdentifierIsSingleBoolean)
	ErrIdentifierIsOnlyInteger     error = sentinel(diag.MacIdentifierIsOnlyInteger)
	ErrIdentifierStartsWithInteger error = sentinel(diag.MacIdentifierStartsWithInteger)
	ErrMalformed                   error = sentinel(diag.MacMalformed)
)

func newError(code diag.Code, sp source.Span, msg string) *Error {
	return &Error{Code: code, Span: sp, Msg: msg}
}
