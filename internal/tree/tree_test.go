package tree_test

import (
	"strings"
	"testing"

	"concatident/internal/diag"
	"concatident/internal/lexer"
	"concatident/internal/source"
	"concatident/internal/token"
	"concatident/internal/tree"
)

func build(t *testing.T, input string) (*tree.File, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.go.in", []byte(input)))
	bag := diag.NewBag(32)
	r := diag.BagReporter{Bag: bag}
	tokens := lexer.New(file, lexer.Options{Reporter: r}).All()
	return tree.Build(tokens, r), bag
}

func TestPrintRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"package p\n",
		"// lead\nfunc f() { return x[1] } // tail\n",
		"concat_idents!(fn_name = foo, _, bar {\n\tfn fn_name() {}\n})\n",
		"a := map[string]int{\"k\": 1} /* c */\n\n",
	}
	for _, in := range inputs {
		f, bag := build(t, in)
		if bag.HasErrors() {
			t.Fatalf("input %q: unexpected diagnostics %v", in, bag.Items())
		}
		var b strings.Builder
		if err := tree.PrintFile(&b, f); err != nil {
			t.Fatal(err)
		}
		if b.String() != in {
			t.Errorf("round trip mismatch:\n got %q\nwant %q", b.String(), in)
		}
	}
}

func TestBuildGroups(t *testing.T) {
	f, _ := build(t, "f(a, [b], {c})")
	if len(f.Nodes) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(f.Nodes))
	}
	g, ok := f.Nodes[1].(*tree.Group)
	if !ok || g.Delim != tree.Paren {
		t.Fatalf("expected paren group, got %T", f.Nodes[1])
	}
	if len(g.Nodes) != 5 {
		t.Fatalf("expected 5 children, got %d", len(g.Nodes))
	}
	if inner, ok := g.Nodes[2].(*tree.Group); !ok || inner.Delim != tree.Bracket {
		t.Errorf("expected bracket group at 2, got %T", g.Nodes[2])
	}
	if inner, ok := g.Nodes[4].(*tree.Group); !ok || inner.Delim != tree.Brace {
		t.Errorf("expected brace group at 4, got %T", g.Nodes[4])
	}
}

func TestBuildInvocation(t *testing.T) {
	tests := []struct {
		input string
		name  string
		want  bool
	}{
		{"concat_idents!(x = a { })", "concat_idents", true},
		{"m![1]", "m", true},
		{"r#m!{}", "m", true},
		{"x != (y)", "", false},
		{"m !(a)", "m", true},
		{"m! (a)", "m", true},
		{"m /* c */ !\n\t(a)", "m", true},
		{"!(a)", "", false},
	}
	for _, tt := range tests {
		f, _ := build(t, tt.input)
		var got *tree.Invocation
		tree.Inspect(f.Nodes, func(n tree.Node) bool {
			if inv, ok := n.(*tree.Invocation); ok && got == nil {
				got = inv
			}
			return true
		})
		if (got != nil) != tt.want {
			t.Errorf("%q: invocation found = %v, want %v", tt.input, got != nil, tt.want)
			continue
		}
		if got != nil && got.MacroName() != tt.name {
			t.Errorf("%q: name = %q, want %q", tt.input, got.MacroName(), tt.name)
		}
	}
}

func TestBuildNestedInvocation(t *testing.T) {
	f, _ := build(t, "a!(b!(c))")
	outer, ok := f.Nodes[0].(*tree.Invocation)
	if !ok {
		t.Fatalf("expected invocation, got %T", f.Nodes[0])
	}
	if _, ok := outer.Args.Nodes[0].(*tree.Invocation); !ok {
		t.Fatalf("expected nested invocation, got %T", outer.Args.Nodes[0])
	}
}

func TestBuildUnbalanced(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"f(a", diag.SynUnclosedDelimiter},
		{"{ [ }", diag.SynUnexpectedCloser},
		{"a)", diag.SynUnexpectedCloser},
	}
	for _, tt := range tests {
		f, bag := build(t, tt.input)
		found := false
		for _, d := range bag.Items() {
			if d.Code == tt.code {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: expected %v, got %v", tt.input, tt.code, bag.Items())
		}
		// восстановление не теряет текст
		var b strings.Builder
		_ = tree.PrintFile(&b, f)
		if b.String() != tt.input {
			t.Errorf("%q: printed %q after recovery", tt.input, b.String())
		}
	}
}

type renamer struct {
	from, to string
	seen     int
}

func (r *renamer) VisitLeaf(l *tree.Leaf) {
	if l.Tok.Kind == token.Ident && l.Tok.Text == r.from {
		l.Tok.Text = r.to
		r.seen++
	}
}
func (r *renamer) VisitGroup(g *tree.Group)             { tree.WalkGroup(r, g) }
func (r *renamer) VisitInvocation(inv *tree.Invocation) { tree.WalkInvocation(r, inv) }

func TestVisitorAndClone(t *testing.T) {
	f, _ := build(t, "x + (x * [x]) + m!(x)")
	cloned := tree.CloneNodes(f.Nodes)
	r := &renamer{from: "x", to: "y"}
	tree.WalkNodes(r, cloned)
	if r.seen != 4 {
		t.Fatalf("expected 4 renames, got %d", r.seen)
	}
	if got := tree.String(cloned); got != "y + (y * [y]) + m!(y)" {
		t.Errorf("rewritten = %q", got)
	}
	if got := tree.String(f.Nodes); got != "x + (x * [x]) + m!(x)" {
		t.Errorf("original mutated: %q", got)
	}
}

func TestCursor(t *testing.T) {
	f, _ := build(t, "a = b {}")
	c := tree.NewCursor(f.Nodes, source.Span{})
	if !c.PeekKind(token.Ident) {
		t.Fatal("expected ident first")
	}
	c.Next()
	if !c.PeekKind(token.Assign) {
		t.Fatal("expected '='")
	}
	c.Next()
	c.Next()
	if !c.PeekGroup(tree.Brace) {
		t.Fatal("expected brace group")
	}
	c.Next()
	if !c.Done() || c.Next() != nil {
		t.Error("expected cursor to be exhausted")
	}
}

func TestDump(t *testing.T) {
	f, _ := build(t, "m!(a)")
	var b strings.Builder
	if err := tree.Dump(&b, f.Nodes); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "Invocation m!") || !strings.Contains(b.String(), `"a"`) {
		t.Errorf("unexpected dump:\n%s", b.String())
	}
}

func TestTerminate(t *testing.T) {
	at := source.Span{Start: 3, End: 9}
	nl := token.Trivia{Kind: token.TriviaNewline, Text: "\n"}
	sp := token.Trivia{Kind: token.TriviaSpace, Text: " "}
	stmt := &tree.Leaf{Tok: token.Token{Kind: token.Ident, Text: "x"}}

	tests := []struct {
		name string
		out  []tree.Node
		want string
	}{
		{"empty", nil, ""},
		{"one line", []tree.Node{stmt, tree.TriviaLeaf(at, []token.Trivia{sp})}, "x \n"},
		{"no trailing trivia", []tree.Node{stmt}, "x\n"},
		{"already ends a line", []tree.Node{stmt, tree.TriviaLeaf(at, []token.Trivia{nl})}, "x\n"},
	}
	for _, tt := range tests {
		got := tree.String(tree.Terminate(tt.out, at))
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}
