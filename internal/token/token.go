package token

import (
	"concatident/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a literal of any kind.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, ImagLit, BoolLit, StringLit, RawStringLit, CharLit, ByteLit, ByteStringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a Go keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwBreak && t.Kind <= KwVar
}

// IsIdent reports whether the token is a plain or escaped identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident || t.Kind == RawIdent }

// IsPunct reports whether the token is an operator or punctuation.
func (t Token) IsPunct() bool { return t.Kind >= Plus && t.Kind < kindCount }

// IsOpen reports whether the token opens a delimited group.
func (t Token) IsOpen() bool {
	return t.Kind == LParen || t.Kind == LBracket || t.Kind == LBrace
}

// IsClose reports whether the token closes a delimited group.
func (t Token) IsClose() bool {
	return t.Kind == RParen || t.Kind == RBracket || t.Kind == RBrace
}

// RawIdentPrefix marks an escaped identifier.
const RawIdentPrefix = "r#"

// IdentName returns the identifier text with the escape marker stripped.
func (t Token) IdentName() string {
	if t.Kind == RawIdent && len(t.Text) > len(RawIdentPrefix) {
		return t.Text[len(RawIdentPrefix):]
	}
	return t.Text
}
