package lexer

import (
	"concatident/internal/diag"
	"concatident/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword сканирует [Ident] и проверяет через LookupKeyword.
// Token.Text: ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	if !lx.bumpIdentBody() {
		return lx.scanOperatorOrPunct()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if text == "_" {
		return token.Token{Kind: token.Underscore, Span: sp, Text: text}
	}
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// bumpIdentBody consumes [_\pL][_\pL\pN]*. It reports false when the cursor is
// not at an identifier start.
func (lx *Lexer) bumpIdentBody() bool {
	r, sz := lx.peekRune()
	if sz == 0 {
		return false
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return false
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return false
		}
		lx.bumpRune()
	}
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				return true
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			return true
		}
		lx.bumpRune()
	}
}

// r#ident: "r#" сразу за которым начало идентификатора.
func (lx *Lexer) isRawIdentStart() bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != 'r' || b1 != '#' {
		return false
	}
	return isIdentStartByte(b2) || b2 >= utf8RuneSelf
}

func (lx *Lexer) scanRawIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // r
	lx.cursor.Bump() // #
	if !lx.bumpIdentBody() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "expected identifier after r#")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if text == token.RawIdentPrefix+"_" {
		lx.errLex(diag.LexUnknownChar, sp, "`_` cannot be a raw identifier")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: token.RawIdent, Span: sp, Text: text}
}

// b'x' и b"...": байтовые литералы; в Go их нет, но макрос должен их распознать,
// чтобы отвергнуть с понятной ошибкой.
func (lx *Lexer) isBytePrefix() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == 'b' && (b1 == '\'' || b1 == '"')
}

func (lx *Lexer) scanByteLiteral() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // b
	var tok token.Token
	if lx.cursor.Peek() == '\'' {
		tok = lx.scanChar(token.ByteLit)
	} else {
		tok = lx.scanString(token.ByteStringLit)
	}
	sp := lx.cursor.SpanFrom(start)
	tok.Span = sp
	tok.Text = lx.text(sp)
	return tok
}
