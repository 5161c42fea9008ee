package concat

import (
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"concatident/internal/diag"
	"concatident/internal/source"
	"concatident/internal/token"
	"concatident/internal/tree"
)

// FragmentKind tells which literal form a fragment was written in.
type FragmentKind uint8

const (
	FragName FragmentKind = iota + 1
	FragUnderscore
	FragInteger
	FragBoolean
	FragQuoted
	FragChar
)

func (k FragmentKind) String() string {
	switch k {
	case FragName:
		return "name"
	case FragUnderscore:
		return "underscore"
	case FragInteger:
		return "integer"
	case FragBoolean:
		return "boolean"
	case FragQuoted:
		return "quoted"
	case FragChar:
		return "char"
	}
	return "invalid"
}

// Fragment is one piece of a built identifier. Text is what it contributes:
// the escape marker of a name is stripped, quotes are removed and escapes decoded.
type Fragment struct {
	Kind FragmentKind
	Text string
	Span source.Span
}

const expectedFragmentHint = "to build an identifier from a reserved word like `struct` or `return`, " +
	"quote it (`\"struct\"`) or escape it (`r#struct`)"

// ParseFragment consumes one fragment from c.
func ParseFragment(c *tree.Cursor) (Fragment, *Error) {
	tok, ok := c.PeekToken()
	if !ok {
		err := newError(diag.MacExpectedFragment, c.Span(),
			"expected an identifier, `_`, an integer, a bool, a string literal or a character literal")
		err.Hint = expectedFragmentHint
		return Fragment{}, err
	}

	frag := Fragment{Span: tok.Span}
	switch tok.Kind {
	case token.Ident, token.RawIdent:
		frag.Kind, frag.Text = FragName, norm.NFC.String(tok.IdentName())
	case token.Underscore:
		frag.Kind, frag.Text = FragUnderscore, "_"
	case token.IntLit:
		frag.Kind, frag.Text = FragInteger, tok.Text
	case token.BoolLit:
		frag.Kind, frag.Text = FragBoolean, tok.Text
	case token.StringLit, token.RawStringLit:
		s, err := strconv.Unquote(tok.Text)
		if err != nil || !identChars(s) {
			return Fragment{}, newError(diag.MacInvalidFragmentCharacters, tok.Span,
				"string literals can only contain [a-zA-Z0-9_]")
		}
		frag.Kind, frag.Text = FragQuoted, s
	case token.CharLit:
		s, err := strconv.Unquote(tok.Text)
		if err != nil || utf8.RuneCountInString(s) != 1 || !identChars(s) {
			return Fragment{}, newError(diag.MacInvalidFragmentCharacters, tok.Span,
				"character literals can only contain [a-zA-Z0-9_]")
		}
		frag.Kind, frag.Text = FragChar, s
	case token.ByteStringLit:
		return Fragment{}, unsupported(tok, "byte strings")
	case token.ByteLit:
		return Fragment{}, unsupported(tok, "bytes")
	case token.FloatLit:
		return Fragment{}, unsupported(tok, "floats")
	case token.ImagLit:
		return Fragment{}, unsupported(tok, "imaginary numbers")
	default:
		msg := "expected an identifier, `_`, an integer, a bool, a string literal or a character literal"
		if tok.IsKeyword() {
			msg = "`" + tok.Text + "` is a reserved word and cannot be used as a fragment"
		}
		err := newError(diag.MacExpectedFragment, tok.Span, msg)
		err.Hint = expectedFragmentHint
		return Fragment{}, err
	}
	c.Next()
	return frag, nil
}

func unsupported(tok token.Token, what string) *Error {
	return newError(diag.MacUnsupportedFragmentKind, tok.Span, "identifiers cannot contain "+what)
}

// identChars reports whether s is made of [A-Za-z0-9_] only.
func identChars(s string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9', ch == '_':
		default:
			return false
		}
	}
	return true
}
