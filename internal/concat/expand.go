package concat

import (
	"concatident/internal/diag"
	"concatident/internal/tree"
)

// Name is the name the macro is registered under by default.
const Name = "concat_idents"

// Expand expands one concat_idents! invocation. On error nothing is produced.
func Expand(inv *tree.Invocation) ([]tree.Node, *Error) {
	in, err := ParseInput(inv.Args)
	if err != nil {
		return nil, err
	}
	block, _ := Replace(in.Block, in.Placeholder, in.Ident)
	return Statements(block), nil
}

// Statements returns the children of a block without its braces. Trivia in
// front of the closing brace is kept as a trailing trivia-only leaf.
func Statements(block *tree.Group) []tree.Node {
	out := make([]tree.Node, 0, len(block.Nodes)+1)
	out = append(out, block.Nodes...)
	if len(block.Close.Leading) > 0 {
		out = append(out, tree.TriviaLeaf(block.Close.Span, block.Close.Leading))
	}
	return out
}

// Expander adapts Expand to the macro registry.
type Expander struct{}

func (Expander) Expand(inv *tree.Invocation, r diag.Reporter) ([]tree.Node, bool) {
	nodes, err := Expand(inv)
	if err != nil {
		err.Report(r)
		return nil, false
	}
	return nodes, true
}
