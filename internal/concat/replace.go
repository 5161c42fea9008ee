package concat

import (
	"golang.org/x/text/unicode/norm"

	"concatident/internal/token"
	"concatident/internal/tree"
)

// replacer swaps every identifier equal to the placeholder for the built one.
// Names are compared in NFC, so a placeholder matches however it was encoded.
// The replacement keeps the leading trivia of the occurrence so layout survives,
// but takes the span of the built identifier.
type replacer struct {
	placeholder string
	ident       Ident
	count       int
}

func (r *replacer) VisitLeaf(l *tree.Leaf) {
	if !l.Tok.IsIdent() || norm.NFC.String(l.Tok.Text) != r.placeholder {
		return
	}
	l.Tok = token.Token{
		Kind:    token.Ident,
		Span:    r.ident.Span,
		Text:    r.ident.Text,
		Leading: l.Tok.Leading,
	}
	r.count++
}

func (r *replacer) VisitGroup(g *tree.Group) { tree.WalkGroup(r, g) }

// VisitInvocation substitutes inside a nested invocation, the name included,
// without expanding it.
func (r *replacer) VisitInvocation(inv *tree.Invocation) { tree.WalkInvocation(r, inv) }

// Replace returns a copy of block with every occurrence of placeholder replaced
// by ident, and the number of replacements. block is not modified.
func Replace(block *tree.Group, placeholder token.Token, ident Ident) (*tree.Group, int) {
	out := tree.CloneGroup(block)
	r := &replacer{placeholder: norm.NFC.String(placeholder.Text), ident: ident}
	r.VisitGroup(out)
	return out, r.count
}
