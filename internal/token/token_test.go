package token_test

import (
	"testing"

	"concatident/internal/source"
	"concatident/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.IntLit, token.FloatLit, token.ImagLit, token.BoolLit,
		token.StringLit, token.RawStringLit, token.CharLit, token.ByteLit, token.ByteStringLit,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwFunc, token.Plus, token.LParen, token.Underscore}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	for _, word := range []string{"func", "struct", "return", "var", "fallthrough"} {
		k, ok := token.LookupKeyword(word)
		if !ok || !tok(k).IsKeyword() {
			t.Errorf("%q should be a keyword, got %v", word, k)
		}
	}
	if k, ok := token.LookupKeyword("true"); !ok || k != token.BoolLit {
		t.Errorf("true should be BoolLit, got %v", k)
	}
	for _, word := range []string{"Func", "int", "string", "nil", "fn"} {
		if _, ok := token.LookupKeyword(word); ok {
			t.Errorf("%q must not be a keyword", word)
		}
	}
}

func TestIdentName(t *testing.T) {
	raw := token.Token{Kind: token.RawIdent, Text: "r#struct"}
	if got := raw.IdentName(); got != "struct" {
		t.Errorf("IdentName() = %q, want struct", got)
	}
	plain := token.Token{Kind: token.Ident, Text: "r"}
	if got := plain.IdentName(); got != "r" {
		t.Errorf("IdentName() = %q, want r", got)
	}
}

func TestKindString(t *testing.T) {
	if token.KwStruct.String() != "KwStruct" {
		t.Errorf("unexpected name %q", token.KwStruct.String())
	}
	if token.Question.String() != "Question" {
		t.Errorf("unexpected name %q", token.Question.String())
	}
}
