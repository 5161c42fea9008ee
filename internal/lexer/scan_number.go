package lexer

import (
	"concatident/internal/diag"
	"concatident/internal/token"
)

// Go numeric literals: 0, 123, 1_000, 0b..., 0o..., 0x..., 017, 1.5, .5, 1e-3,
// 0x1p-2 and an optional imaginary suffix i. Invalid forms are reported and the
// token is still finished so lexing can go on.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit
	hex := false

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		lx.bumpDigits(isDec)
		goto exponent
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			if !lx.bumpDigits(func(b byte) bool { return b == '0' || b == '1' }) {
				return lx.badNumber(start, "binary literal has no digits")
			}
			goto imag
		case 'o', 'O':
			lx.cursor.Bump()
			if !lx.bumpDigits(func(b byte) bool { return b >= '0' && b <= '7' }) {
				return lx.badNumber(start, "octal literal has no digits")
			}
			goto imag
		case 'x', 'X':
			lx.cursor.Bump()
			hex = true
			seen := lx.bumpDigits(isHex)
			if lx.cursor.Peek() == '.' {
				lx.cursor.Bump()
				kind = token.FloatLit
				if lx.bumpDigits(isHex) {
					seen = true
				}
			}
			if !seen {
				return lx.badNumber(start, "hexadecimal literal has no digits")
			}
			goto exponent
		}
	}

	lx.bumpDigits(isDec)
	if lx.cursor.Peek() == '.' {
		b0, b1, ok := lx.cursor.Peek2()
		if !(ok && b0 == '.' && b1 == '.') {
			lx.cursor.Bump()
			kind = token.FloatLit
			lx.bumpDigits(isDec)
		}
	}

exponent:
	if b := lx.cursor.Peek(); (!hex && (b == 'e' || b == 'E')) || (hex && (b == 'p' || b == 'P')) {
		kind = token.FloatLit
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !lx.bumpDigits(isDec) {
			return lx.badNumber(start, "exponent has no digits")
		}
	} else if hex && kind == token.FloatLit {
		return lx.badNumber(start, "hexadecimal mantissa requires a 'p' exponent")
	}

imag:
	if lx.cursor.Peek() == 'i' {
		lx.cursor.Bump()
		kind = token.ImagLit
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// bumpDigits consumes digits accepted by ok together with '_' separators.
// It reports whether at least one digit was consumed.
func (lx *Lexer) bumpDigits(ok func(byte) bool) bool {
	seen := false
	for {
		b := lx.cursor.Peek()
		switch {
		case ok(b):
			seen = true
		case b == '_':
		default:
			return seen
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexBadNumber, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
