package tree

import (
	"io"
	"strings"

	"concatident/internal/token"
)

// Print writes nodes back as source text, trivia included.
func Print(w io.Writer, nodes []Node) error {
	p := printer{w: w}
	p.nodes(nodes)
	return p.err
}

// PrintFile writes a whole file including its trailing trivia.
func PrintFile(w io.Writer, f *File) error {
	p := printer{w: w}
	p.nodes(f.Nodes)
	p.token(f.EOF)
	return p.err
}

// String renders nodes to a string.
func String(nodes []Node) string {
	var b strings.Builder
	_ = Print(&b, nodes)
	return b.String()
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) write(s string) {
	if p.err != nil || s == "" {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) token(tok token.Token) {
	for _, tv := range tok.Leading {
		p.write(tv.Text)
	}
	p.write(tok.Text)
}

func (p *printer) nodes(nodes []Node) {
	for _, n := range nodes {
		p.node(n)
	}
}

func (p *printer) node(n Node) {
	switch n := n.(type) {
	case *Leaf:
		p.token(n.Tok)
	case *Group:
		p.token(n.Open)
		p.nodes(n.Nodes)
		p.token(n.Close)
	case *Invocation:
		p.token(n.Name.Tok)
		p.token(n.Bang.Tok)
		p.node(n.Args)
	}
}
