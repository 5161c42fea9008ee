package tree

import (
	"concatident/internal/source"
	"concatident/internal/token"
)

// Splice prepares out to replace the node at. The first output node takes the
// leading trivia of at, followed by its own comments; its own blank space is
// dropped so the output sits where the invocation started.
func Splice(at Node, out []Node) []Node {
	lead := First(at).Leading
	if len(out) == 0 {
		if len(lead) == 0 {
			return nil
		}
		return []Node{TriviaLeaf(at.Span(), lead)}
	}

	own := First(out[0]).Leading
	for len(own) > 0 && (own[0].Kind == token.TriviaSpace || own[0].Kind == token.TriviaNewline) {
		own = own[1:]
	}
	combined := make([]token.Trivia, 0, len(lead)+len(own))
	combined = append(combined, lead...)
	combined = append(combined, own...)

	spliced := make([]Node, len(out))
	copy(spliced, out)
	spliced[0] = WithLeading(out[0], combined)
	return spliced
}

// Terminate ends a spliced statement list with a newline unless its trailing
// trivia already has one. Without its braces the last statement of a one-line
// block would run into whatever follows the invocation.
func Terminate(out []Node, at source.Span) []Node {
	if len(out) == 0 {
		return out
	}
	if l, ok := out[len(out)-1].(*Leaf); ok && l.Tok.Kind == token.Invalid && l.Tok.Text == "" {
		for _, tv := range l.Tok.Leading {
			if tv.Kind == token.TriviaNewline {
				return out
			}
		}
	}
	end := source.Span{File: at.File, Start: at.End, End: at.End}
	nl := token.Trivia{Kind: token.TriviaNewline, Span: end, Text: "\n"}
	return append(out, TriviaLeaf(end, []token.Trivia{nl}))
}
