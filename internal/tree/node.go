package tree

import (
	"concatident/internal/source"
	"concatident/internal/token"
)

// Delim is the kind of bracket around a Group.
type Delim uint8

const (
	Paren Delim = iota + 1
	Bracket
	Brace
)

func (d Delim) String() string {
	switch d {
	case Paren:
		return "()"
	case Bracket:
		return "[]"
	case Brace:
		return "{}"
	}
	return "??"
}

func delimOf(k token.Kind) (Delim, bool) {
	switch k {
	case token.LParen, token.RParen:
		return Paren, true
	case token.LBracket, token.RBracket:
		return Bracket, true
	case token.LBrace, token.RBrace:
		return Brace, true
	}
	return 0, false
}

// Node is one of *Leaf, *Group or *Invocation.
type Node interface {
	Span() source.Span
	node()
}

// Leaf is a single non-delimiter token.
type Leaf struct {
	Tok token.Token
}

// Group is a delimited sequence of nodes. Close has an empty Text when the
// group was never closed in the source.
type Group struct {
	Delim Delim
	Open  token.Token
	Close token.Token
	Nodes []Node
}

// Invocation is a macro call name!(...). Args may use any delimiter.
type Invocation struct {
	Name *Leaf
	Bang *Leaf
	Args *Group
}

// File is the root of a tree; EOF keeps the trailing trivia.
type File struct {
	Nodes []Node
	EOF   token.Token
}

func (*Leaf) node()       {}
func (*Group) node()      {}
func (*Invocation) node() {}

func (l *Leaf) Span() source.Span { return l.Tok.Span }

func (g *Group) Span() source.Span {
	if g.Close.Text == "" {
		sp := g.Open.Span
		for _, n := range g.Nodes {
			sp = sp.Cover(n.Span())
		}
		return sp
	}
	return g.Open.Span.Cover(g.Close.Span)
}

func (inv *Invocation) Span() source.Span {
	return inv.Name.Span().Cover(inv.Args.Span())
}

// MacroName returns the invocation name without escape marker.
func (inv *Invocation) MacroName() string {
	return inv.Name.Tok.IdentName()
}

// Cursor is a one-token-lookahead reader over a node slice. Groups and
// invocations are single items: a parser sees a brace group as one node.
type Cursor struct {
	nodes []Node
	pos   int
	// end is reported once the nodes are exhausted.
	end source.Span
}

// NewCursor creates a cursor over nodes; end is the span reported at the end
// of input (usually the closing delimiter of the enclosing group).
func NewCursor(nodes []Node, end source.Span) *Cursor {
	return &Cursor{nodes: nodes, end: end}
}

// Peek returns the next node without consuming it, or nil at the end.
func (c *Cursor) Peek() Node {
	if c.pos >= len(c.nodes) {
		return nil
	}
	return c.nodes[c.pos]
}

// PeekToken returns the next node's token if it is a leaf.
func (c *Cursor) PeekToken() (token.Token, bool) {
	if l, ok := c.Peek().(*Leaf); ok {
		return l.Tok, true
	}
	return token.Token{}, false
}

// PeekKind reports whether the next node is a leaf of kind k.
func (c *Cursor) PeekKind(k token.Kind) bool {
	tok, ok := c.PeekToken()
	return ok && tok.Kind == k
}

// PeekGroup reports whether the next node is a group with delimiter d.
func (c *Cursor) PeekGroup(d Delim) bool {
	g, ok := c.Peek().(*Group)
	return ok && g.Delim == d
}

// Next consumes and returns the next node, or nil at the end.
func (c *Cursor) Next() Node {
	n := c.Peek()
	if n != nil {
		c.pos++
	}
	return n
}

// Done reports whether all nodes were consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.nodes)
}

// Span returns the span of the next node, or the end span.
func (c *Cursor) Span() source.Span {
	if n := c.Peek(); n != nil {
		return n.Span()
	}
	return c.end
}

// TriviaLeaf returns a textless leaf at the start of sp that only carries trivia.
func TriviaLeaf(sp source.Span, leading []token.Trivia) *Leaf {
	sp.End = sp.Start
	return &Leaf{Tok: token.Token{Kind: token.Invalid, Span: sp, Leading: leading}}
}
