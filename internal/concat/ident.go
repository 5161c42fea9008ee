package concat

import (
	"strings"

	"concatident/internal/diag"
	"concatident/internal/source"
	"concatident/internal/token"
	"concatident/internal/tree"
)

// Ident is a built identifier. Span is the span of the first fragment and is
// only used for diagnostics.
type Ident struct {
	Text string
	Span source.Span
}

// ParseIdent reads a comma separated fragment list up to the brace block and
// builds an identifier from it. A trailing comma is allowed.
func ParseIdent(c *tree.Cursor) (Ident, *Error) {
	var frags []Fragment
	for !c.PeekGroup(tree.Brace) {
		frag, err := ParseFragment(c)
		if err != nil {
			return Ident{}, err
		}
		frags = append(frags, frag)
		if !c.PeekKind(token.Comma) {
			break
		}
		c.Next()
	}
	if len(frags) == 0 {
		return Ident{}, newError(diag.MacEmptyIdentifier, c.Span(),
			"expected at least one identifier fragment")
	}
	return Concat(frags)
}

// Concat checks a fragment sequence and joins the fragment texts.
func Concat(frags []Fragment) (Ident, *Error) {
	if len(frags) == 0 {
		return Ident{}, newError(diag.MacEmptyIdentifier, source.Span{},
			"expected at least one identifier fragment")
	}
	first := frags[0]
	switch {
	case first.Kind == FragBoolean && len(frags) == 1:
		return Ident{}, newError(diag.MacIdentifierIsSingleBoolean, first.Span,
			"identifiers cannot consist of only one bool")
	case first.Kind == FragInteger && len(frags) == 1:
		return Ident{}, newError(diag.MacIdentifierIsOnlyInteger, first.Span,
			"identifiers cannot consist only of an integer")
	case first.Kind == FragInteger:
		return Ident{}, newError(diag.MacIdentifierStartsWithInteger, first.Span,
			"identifiers cannot start with an integer")
	}

	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.Text)
	}
	// пустые строковые фрагменты допустимы, но не все сразу
	if b.Len() == 0 {
		return Ident{}, newError(diag.MacEmptyIdentifier, first.Span,
			"fragments concatenate to an empty identifier")
	}
	if ch := b.String()[0]; '0' <= ch && ch <= '9' {
		return Ident{}, newError(diag.MacIdentifierStartsWithInteger, first.Span,
			"identifiers cannot start with a digit")
	}
	return Ident{Text: b.String(), Span: first.Span}, nil
}
