package tree

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented outline of the tree, one node per line.
func Dump(w io.Writer, nodes []Node) error {
	return dump(w, nodes, 0)
}

func dump(w io.Writer, nodes []Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		var err error
		switch n := n.(type) {
		case *Leaf:
			_, err = fmt.Fprintf(w, "%s%-12s %q @%s\n", indent, n.Tok.Kind, n.Tok.Text, n.Tok.Span)
		case *Group:
			if _, err = fmt.Fprintf(w, "%sGroup%s @%s\n", indent, n.Delim, n.Span()); err == nil {
				err = dump(w, n.Nodes, depth+1)
			}
		case *Invocation:
			if _, err = fmt.Fprintf(w, "%sInvocation %s! @%s\n", indent, n.MacroName(), n.Span()); err == nil {
				err = dump(w, []Node{n.Args}, depth+1)
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
