package tree

import (
	"fmt"

	"concatident/internal/diag"
	"concatident/internal/token"
)

type frame struct {
	group *Group
	nodes []Node
}

// Build groups tokens into a tree. The last token must be EOF. Unbalanced
// delimiters are reported and recovered from: a stray closer becomes a leaf,
// an unclosed group is closed at EOF with an empty Close token.
func Build(tokens []token.Token, r diag.Reporter) *File {
	if r == nil {
		r = diag.NopReporter{}
	}
	stack := []frame{{}}

	var eof token.Token
	for _, tok := range tokens {
		top := &stack[len(stack)-1]
		switch {
		case tok.Kind == token.EOF:
			eof = tok

		case tok.IsOpen():
			d, _ := delimOf(tok.Kind)
			stack = append(stack, frame{group: &Group{Delim: d, Open: tok}})

		case tok.IsClose():
			d, _ := delimOf(tok.Kind)
			if top.group == nil || top.group.Delim != d {
				msg := fmt.Sprintf("unexpected closing delimiter %q", tok.Text)
				b := diag.ReportError(r, diag.SynUnexpectedCloser, tok.Span, msg)
				if top.group != nil {
					b.WithNote(top.group.Open.Span, "unclosed delimiter opened here")
				}
				b.Emit()
				top.nodes = append(top.nodes, &Leaf{Tok: tok})
				continue
			}
			g := top.group
			g.Close = tok
			g.Nodes = groupInvocations(top.nodes)
			stack = stack[:len(stack)-1]
			parent := &stack[len(stack)-1]
			parent.nodes = append(parent.nodes, g)

		default:
			top.nodes = append(top.nodes, &Leaf{Tok: tok})
		}
	}

	for len(stack) > 1 {
		top := stack[len(stack)-1]
		g := top.group
		diag.ReportError(r, diag.SynUnclosedDelimiter, g.Open.Span,
			fmt.Sprintf("unclosed delimiter %q", g.Open.Text)).Emit()
		g.Close = token.Token{Kind: closerOf(g.Delim), Span: eof.Span}
		g.Nodes = groupInvocations(top.nodes)
		stack = stack[:len(stack)-1]
		parent := &stack[len(stack)-1]
		parent.nodes = append(parent.nodes, g)
	}

	return &File{Nodes: groupInvocations(stack[0].nodes), EOF: eof}
}

// groupInvocations folds `name ! group` into Invocation nodes. Trivia may sit
// between the three tokens: an identifier is never followed by unary `!` in Go.
func groupInvocations(nodes []Node) []Node {
	out := nodes[:0:0]
	for i := 0; i < len(nodes); i++ {
		if i+2 < len(nodes) {
			name, okName := nodes[i].(*Leaf)
			bang, okBang := nodes[i+1].(*Leaf)
			args, okArgs := nodes[i+2].(*Group)
			if okName && okBang && okArgs &&
				name.Tok.IsIdent() &&
				bang.Tok.Kind == token.Bang {
				out = append(out, &Invocation{Name: name, Bang: bang, Args: args})
				i += 2
				continue
			}
		}
		out = append(out, nodes[i])
	}
	return out
}

func closerOf(d Delim) token.Kind {
	switch d {
	case Paren:
		return token.RParen
	case Bracket:
		return token.RBracket
	default:
		return token.RBrace
	}
}
