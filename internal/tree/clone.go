package tree

import "concatident/internal/token"

// Clone returns a deep copy of n. Trivia slices are shared: they are never
// mutated after lexing.
func Clone(n Node) Node {
	switch n := n.(type) {
	case *Leaf:
		return &Leaf{Tok: n.Tok}
	case *Group:
		return CloneGroup(n)
	case *Invocation:
		return &Invocation{
			Name: &Leaf{Tok: n.Name.Tok},
			Bang: &Leaf{Tok: n.Bang.Tok},
			Args: CloneGroup(n.Args),
		}
	}
	return nil
}

// CloneGroup returns a deep copy of g.
func CloneGroup(g *Group) *Group {
	return &Group{
		Delim: g.Delim,
		Open:  g.Open,
		Close: g.Close,
		Nodes: CloneNodes(g.Nodes),
	}
}

// CloneNodes deep-copies a node slice.
func CloneNodes(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = Clone(n)
	}
	return out
}

// First returns the first token of n.
func First(n Node) token.Token {
	switch n := n.(type) {
	case *Leaf:
		return n.Tok
	case *Group:
		return n.Open
	case *Invocation:
		return n.Name.Tok
	}
	return token.Token{}
}

// WithLeading returns a copy of n whose first token carries leading instead of
// its own trivia. Used when spliced output replaces a node that had trivia.
func WithLeading(n Node, leading []token.Trivia) Node {
	switch n := n.(type) {
	case *Leaf:
		tok := n.Tok
		tok.Leading = leading
		return &Leaf{Tok: tok}
	case *Group:
		g := *n
		g.Open.Leading = leading
		return &g
	case *Invocation:
		inv := *n
		name := *inv.Name
		name.Tok.Leading = leading
		inv.Name = &name
		return &inv
	}
	return n
}
