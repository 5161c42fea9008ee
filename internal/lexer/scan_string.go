package lexer

import (
	"concatident/internal/diag"
	"concatident/internal/token"
)

// scanString scans "..." with backslash escapes. Escapes are validated later by
// whoever needs the decoded value; the lexer only keeps them from closing the literal.
func (lx *Lexer) scanString(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanRawString scans a backquoted literal; it may span lines.
func (lx *Lexer) scanRawString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '`'
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '`' {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.RawStringLit, Span: sp, Text: lx.text(sp)}
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated raw string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanChar scans '...'. The content is not checked to be a single rune here.
func (lx *Lexer) scanChar(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case '\'':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			if sp.Len() == 2 {
				lx.errLex(diag.LexUnterminatedChar, sp, "empty character literal")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
		case '\\':
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		case '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedChar, sp, "newline in character literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
