package testkit_test

import (
	"strings"
	"testing"

	"concatident/internal/diag"
	"concatident/internal/lexer"
	"concatident/internal/source"
	"concatident/internal/testkit"
	"concatident/internal/tree"
)

func build(src string) (*tree.File, *source.File) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.go.in", []byte(src)))
	toks := lexer.New(file, lexer.Options{}).All()
	return tree.Build(toks, diag.NopReporter{}), file
}

func TestCheckTreeInvariantsAccepts(t *testing.T) {
	for _, src := range []string{
		"",
		"package p\n",
		"concat_idents!(a = b, c {\n\tfunc a() {}\n})\n",
		"f(x [y] {z}) // tail\n",
		"unclosed ( [ {",
		"stray ) ] }",
	} {
		root, file := build(src)
		if err := testkit.CheckTreeInvariants(root, file); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}

func TestCheckTreeInvariantsRejectsEdits(t *testing.T) {
	root, file := build("f(a)\n")
	root.Nodes = root.Nodes[1:]
	err := testkit.CheckTreeInvariants(root, file)
	if err == nil || !strings.Contains(err.Error(), "differs from source") {
		t.Fatalf("expected a round-trip error, got %v", err)
	}
}
