package lexer

import (
	"unicode"
	"unicode/utf8"

	"concatident/internal/diag"
	"concatident/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	switch {
	case lx.try3('<', '<', '='):
		return emit(token.ShlAssign)
	case lx.try3('>', '>', '='):
		return emit(token.ShrAssign)
	case lx.try3('&', '^', '='):
		return emit(token.AndNotAssign)
	case lx.try3('.', '.', '.'):
		return emit(token.Ellipsis)
	case lx.try2('<', '<'):
		return emit(token.Shl)
	case lx.try2('>', '>'):
		return emit(token.Shr)
	case lx.try2('&', '^'):
		return emit(token.AndNot)
	case lx.try2('+', '='):
		return emit(token.PlusAssign)
	case lx.try2('-', '='):
		return emit(token.MinusAssign)
	case lx.try2('*', '='):
		return emit(token.StarAssign)
	case lx.try2('/', '='):
		return emit(token.SlashAssign)
	case lx.try2('%', '='):
		return emit(token.PercentAssign)
	case lx.try2('&', '='):
		return emit(token.AmpAssign)
	case lx.try2('|', '='):
		return emit(token.PipeAssign)
	case lx.try2('^', '='):
		return emit(token.CaretAssign)
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	case lx.try2('|', '|'):
		return emit(token.OrOr)
	case lx.try2('<', '-'):
		return emit(token.Arrow)
	case lx.try2('+', '+'):
		return emit(token.Inc)
	case lx.try2('-', '-'):
		return emit(token.Dec)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2(':', '='):
		return emit(token.Define)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '&':
		return emit(token.Amp)
	case '|':
		return emit(token.Pipe)
	case '^':
		return emit(token.Caret)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '=':
		return emit(token.Assign)
	case '!':
		return emit(token.Bang)
	case '~':
		return emit(token.Tilde)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case ',':
		return emit(token.Comma)
	case ';':
		return emit(token.Semicolon)
	case '.':
		return emit(token.Dot)
	case ':':
		return emit(token.Colon)
	case '_':
		return emit(token.Underscore)
	case '#':
		return emit(token.Hash)
	case '@':
		return emit(token.At)
	case '?':
		return emit(token.Question)
	default:
		// неизвестный символ: съедаем всю руну, а не один байт
		if ch >= utf8RuneSelf {
			lx.cursor.Reset(start)
			lx.bumpRune()
		}
		sp := lx.cursor.SpanFrom(start)
		msg := "unknown character"
		if r, _ := utf8.DecodeRune(lx.file.Content[sp.Start:sp.End]); unicode.Is(unicode.Mn, r) {
			msg = "combining mark is not allowed in Go identifiers; save the file in NFC form"
		}
		lx.errLex(diag.LexUnknownChar, sp, msg)
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
}
