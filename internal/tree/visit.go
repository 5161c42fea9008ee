package tree

// Visitor is a mutating visitor over the closed set of node kinds. An
// implementation overrides what it needs and calls WalkGroup / WalkInvocation
// to keep descending; a method that does not call them prunes the subtree.
type Visitor interface {
	VisitLeaf(l *Leaf)
	VisitGroup(g *Group)
	VisitInvocation(inv *Invocation)
}

// Walk dispatches n to the matching Visitor method.
func Walk(v Visitor, n Node) {
	switch n := n.(type) {
	case *Leaf:
		v.VisitLeaf(n)
	case *Group:
		v.VisitGroup(n)
	case *Invocation:
		v.VisitInvocation(n)
	}
}

// WalkNodes walks every node of a slice, depth-first, left to right.
func WalkNodes(v Visitor, nodes []Node) {
	for _, n := range nodes {
		Walk(v, n)
	}
}

// WalkGroup visits the children of g.
func WalkGroup(v Visitor, g *Group) {
	WalkNodes(v, g.Nodes)
}

// WalkInvocation visits the name, the bang and the argument group of inv.
// Visiting is not expanding: the invocation stays in the tree as is.
func WalkInvocation(v Visitor, inv *Invocation) {
	v.VisitLeaf(inv.Name)
	v.VisitLeaf(inv.Bang)
	v.VisitGroup(inv.Args)
}

// Inspect traverses nodes in depth-first order like go/ast.Inspect: f is
// called for each node, and children are visited only if f returns true.
func Inspect(nodes []Node, f func(Node) bool) {
	for _, n := range nodes {
		if !f(n) {
			continue
		}
		switch n := n.(type) {
		case *Group:
			Inspect(n.Nodes, f)
		case *Invocation:
			Inspect([]Node{n.Name, n.Bang, n.Args}, f)
		}
	}
}
