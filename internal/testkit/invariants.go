package testkit

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"concatident/internal/source"
	"concatident/internal/tree"
)

// CheckTreeInvariants runs a minimal set of invariants on a token tree built
// from sf:
// 1) every node span lies within the file content
// 2) sibling spans do not overlap and come in source order
// 3) a group span covers the spans of its children
// 4) printing the tree reproduces the file byte for byte
func CheckTreeInvariants(f *tree.File, sf *source.File) error {
	if f == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if err := checkNodes(f.Nodes, sf.ID, lenContent); err != nil {
		return err
	}
	if f.EOF.Span.End > lenContent {
		return fmt.Errorf("EOF span beyond content: %v", f.EOF.Span)
	}

	var buf bytes.Buffer
	if err := tree.PrintFile(&buf, f); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	if !bytes.Equal(buf.Bytes(), sf.Content) {
		return fmt.Errorf("printed tree differs from source: got %q, want %q", buf.Bytes(), sf.Content)
	}
	return nil
}

func checkNodes(nodes []tree.Node, id source.FileID, limit uint32) error {
	var prevEnd uint32
	for i, n := range nodes {
		sp := n.Span()
		if sp.File != id {
			return fmt.Errorf("node %d points to file %d, want %d", i, sp.File, id)
		}
		if sp.Start > sp.End || sp.End > limit {
			return fmt.Errorf("node %d span out of bounds: %v", i, sp)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("node %d overlaps its predecessor: %v starts before %d", i, sp, prevEnd)
		}
		prevEnd = sp.End

		var children []tree.Node
		switch n := n.(type) {
		case *tree.Group:
			children = n.Nodes
		case *tree.Invocation:
			children = n.Args.Nodes
		}
		for _, c := range children {
			if !sp.Contains(c.Span()) {
				return fmt.Errorf("node %d span %v does not cover child %v", i, sp, c.Span())
			}
		}
		if err := checkNodes(children, id, limit); err != nil {
			return err
		}
	}
	return nil
}
