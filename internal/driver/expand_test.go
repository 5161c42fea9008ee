package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"concatident/internal/diag"
	"concatident/internal/driver"
	"concatident/internal/source"
)

func expandString(t *testing.T, input string, opts driver.Options) *driver.Result {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.go.in", []byte(input))
	res, err := driver.ExpandSource(context.Background(), fs, id, opts)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestExpandSourceRaw(t *testing.T) {
	res := expandString(t, "package p\n\nconcat_idents!(x = foo, _, bar {\n\tfunc x() {}\n})\n", driver.Options{})
	if !res.OK() {
		t.Fatalf("diagnostics: %v", res.Bag.Items())
	}
	want := "package p\n\nfunc foo_bar() {}\n\n"
	if string(res.Output) != want {
		t.Errorf("output %q, want %q", res.Output, want)
	}
	if res.Rounds != 1 || res.Expanded != 1 {
		t.Errorf("rounds=%d expanded=%d", res.Rounds, res.Expanded)
	}
}

func TestExpandSourceGofmtAndHeader(t *testing.T) {
	res := expandString(t, "package p\n\nconcat_idents!(x = foo, _, bar {\n\tfunc x() {}\n})\n",
		driver.Options{Gofmt: true, Header: true})
	want := "// Code generated by concatident from t.go.in. DO NOT EDIT.\n\npackage p\n\nfunc foo_bar() {}\n"
	if string(res.Output) != want {
		t.Errorf("output %q, want %q", res.Output, want)
	}
}

const passTemplate = `package pass

concat_idents!(struct_name = Foo, Bar {
	type struct_name struct{}
})

concat_idents!(fn_name = foo, bar, {
	func fn_name() {}
})

concat_idents!(fn_name = _, foo, _, bar {
	func fn_name() {}
})

concat_idents!(fn_name = foo, 1, bar, 2 {
	func fn_name() {}
})

concat_idents!(fn_name = false, true {
	func fn_name() {}
})

concat_idents!(fn_name = "works_with_", string, _, literals {
	func fn_name() {}
})

concat_idents!(fn_name = 'w', orks_with, '_', chars {
	func fn_name() {}
})

func use() {
	_ = FooBar{}
	foobar()
	_foo_bar()
	foo1bar2()
	falsetrue()
	works_with_string_literals()
	works_with_chars()
}
`

func TestExpandPassTemplate(t *testing.T) {
	res := expandString(t, passTemplate, driver.Options{Gofmt: true})
	if !res.OK() || hasCode(res.Bag, diag.ExpFormatFailed) {
		t.Fatalf("diagnostics: %v", res.Bag.Items())
	}
	out := string(res.Output)
	for _, want := range []string{
		"type FooBar struct{}",
		"func foobar() {}",
		"func _foo_bar() {}",
		"func foo1bar2() {}",
		"func falsetrue() {}",
		"func works_with_string_literals() {}",
		"func works_with_chars() {}",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "concat_idents") {
		t.Errorf("unexpanded invocation left:\n%s", out)
	}
	if res.Expanded != 7 || res.Rounds != 1 {
		t.Errorf("expanded=%d rounds=%d", res.Expanded, res.Rounds)
	}
}

const nestedTemplate = "package p\n\nconcat_idents!(a = x {\n\tconcat_idents!(b = a, y {\n\t\tfunc b() {}\n\t})\n})\n"

func TestNestedInvocationExpandsInLaterRound(t *testing.T) {
	res := expandString(t, nestedTemplate, driver.Options{Gofmt: true})
	if !res.OK() {
		t.Fatalf("diagnostics: %v", res.Bag.Items())
	}
	if !strings.Contains(string(res.Output), "func xy() {}") {
		t.Errorf("output:\n%s", res.Output)
	}
	if res.Rounds != 2 || res.Expanded != 2 {
		t.Errorf("rounds=%d expanded=%d", res.Rounds, res.Expanded)
	}
}

func TestRecursionLimit(t *testing.T) {
	res := expandString(t, nestedTemplate, driver.Options{MaxDepth: 1})
	if res.OK() || res.Output != nil {
		t.Fatal("expected failure")
	}
	if !hasCode(res.Bag, diag.ExpRecursionLimit) {
		t.Errorf("diagnostics: %v", res.Bag.Items())
	}
}

func TestFailedInvocationProducesNoOutput(t *testing.T) {
	res := expandString(t, "package p\n\nconcat_idents!(x = 1 { func x() {} })\n\nconcat_idents!(y = a, b { func y() {} })\n", driver.Options{})
	if res.OK() || res.Output != nil {
		t.Fatal("expected failure without output")
	}
	if !hasCode(res.Bag, diag.MacIdentifierIsOnlyInteger) {
		t.Errorf("diagnostics: %v", res.Bag.Items())
	}
	if res.Expanded != 1 {
		t.Errorf("the valid invocation should still expand, expanded=%d", res.Expanded)
	}
}

func TestUnknownMacroIsSearched(t *testing.T) {
	res := expandString(t, "var _ = other!(concat_idents!(v = a, b { ab }))\n", driver.Options{})
	if !res.OK() {
		t.Fatalf("diagnostics: %v", res.Bag.Items())
	}
	if !strings.Contains(string(res.Output), "other!(ab") {
		t.Errorf("output %q", res.Output)
	}
}

func TestSpacedInvocation(t *testing.T) {
	res := expandString(t, "package p\n\nconcat_idents !(a = x {\n\tfunc a() {}\n})\n\nconcat_idents! (b = y {\n\tfunc b() {}\n})\n",
		driver.Options{Gofmt: true})
	if !res.OK() || res.Bag.Len() != 0 {
		t.Fatalf("diagnostics: %v", res.Bag.Items())
	}
	if res.Expanded != 2 {
		t.Errorf("expanded = %d, want 2", res.Expanded)
	}
	want := "package p\n\nfunc x() {}\n\nfunc y() {}\n"
	if string(res.Output) != want {
		t.Errorf("output %q, want %q", res.Output, want)
	}
}

func TestOneLineInvocationsStaySeparate(t *testing.T) {
	input := "package p\n\nconcat_idents!(a = x, y { var a, b = 1, 2 }) concat_idents!(b = q { var b = 3 })\n"
	res := expandString(t, input, driver.Options{Gofmt: true})
	if !res.OK() || hasCode(res.Bag, diag.ExpFormatFailed) {
		t.Fatalf("diagnostics: %v", res.Bag.Items())
	}
	for _, want := range []string{"var xy, b = 1, 2\n", "var q = 3\n"} {
		if !strings.Contains(string(res.Output), want) {
			t.Errorf("missing %q in:\n%s", want, res.Output)
		}
	}

	// inside braces a one-line block gets its own line too
	res = expandString(t, "package p\n\nfunc f() { concat_idents!(v = a, b { ab := 1; _ = ab }) }\n", driver.Options{})
	if !res.OK() {
		t.Fatalf("diagnostics: %v", res.Bag.Items())
	}
	if !strings.Contains(string(res.Output), "ab := 1; _ = ab \n }") {
		t.Errorf("output %q", res.Output)
	}
}

func TestAliasFromConfig(t *testing.T) {
	opts, err := driver.OptionsFromConfig(withAliases("cat"))
	if err != nil {
		t.Fatal(err)
	}
	opts.Gofmt, opts.Header = false, false
	res := expandString(t, "cat!(x = a, b { x })", opts)
	if !res.OK() || strings.TrimSpace(string(res.Output)) != "ab" {
		t.Errorf("output %q, diagnostics %v", res.Output, res.Bag.Items())
	}
}

func TestFormatFailureIsWarning(t *testing.T) {
	res := expandString(t, "package p\n\nconcat_idents!(x = a { x x x })\n", driver.Options{Gofmt: true})
	if !res.OK() || res.Output == nil {
		t.Fatalf("format failure must not fail expansion: %v", res.Bag.Items())
	}
	if !hasCode(res.Bag, diag.ExpFormatFailed) {
		t.Errorf("expected format warning, got %v", res.Bag.Items())
	}
}

func TestLexErrorStopsExpansion(t *testing.T) {
	res := expandString(t, "package p\n\nvar s = \"unterminated\n", driver.Options{})
	if res.OK() || res.Output != nil || !hasCode(res.Bag, diag.LexUnterminatedString) {
		t.Errorf("diagnostics: %v", res.Bag.Items())
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.go.in", []byte("package p\n"))
	if _, err := driver.ExpandSource(ctx, fs, id, driver.Options{}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestDiskCache(t *testing.T) {
	cache, err := driver.OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	opts := driver.Options{Gofmt: true, Cache: cache}
	input := "package p\n\nconcat_idents!(x = a { x x x })\n"

	first := expandString(t, input, opts)
	second := expandString(t, input, opts)
	if first.Cached || !second.Cached {
		t.Fatalf("cached: first=%v second=%v", first.Cached, second.Cached)
	}
	if string(first.Output) != string(second.Output) || first.Expanded != second.Expanded {
		t.Error("cached result differs")
	}
	if !hasCode(second.Bag, diag.ExpFormatFailed) {
		t.Error("cached diagnostics lost")
	}

	opts.Gofmt = false
	if third := expandString(t, input, opts); third.Cached {
		t.Error("different options must miss the cache")
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	opts.Gofmt = true
	if fourth := expandString(t, input, opts); fourth.Cached {
		t.Error("cache was not dropped")
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []driver.Event
}

func (s *recordingSink) OnEvent(ev driver.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func writeTemplate(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestExpandDir(t *testing.T) {
	dir := t.TempDir()
	ok := "package p\n\nconcat_idents!(x = a, b { func x() {} })\n"
	writeTemplate(t, filepath.Join(dir, "a.go.in"), ok)
	writeTemplate(t, filepath.Join(dir, "sub", "b.go.in"), "package sub\n\nconcat_idents!(x = 1 { })\n")
	writeTemplate(t, filepath.Join(dir, ".hidden", "c.go.in"), ok)
	writeTemplate(t, filepath.Join(dir, "testdata", "d.go.in"), ok)
	writeTemplate(t, filepath.Join(dir, "e.go"), "package p\n")

	sink := &recordingSink{}
	_, results, err := driver.ExpandDir(context.Background(), dir, driver.Options{Gofmt: true, Jobs: 2, Progress: sink})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if filepath.Base(results[0].Path) != "a.go.in" || !results[0].OK() {
		t.Errorf("results[0] = %s ok=%v", results[0].Path, results[0].OK())
	}
	if filepath.Base(results[1].Path) != "b.go.in" || results[1].OK() {
		t.Errorf("results[1] = %s ok=%v", results[1].Path, results[1].OK())
	}

	var statuses []driver.Status
	for _, ev := range sink.events {
		if ev.Stage == driver.StageExpand && ev.Status != driver.StatusWorking {
			statuses = append(statuses, ev.Status)
		}
	}
	slices.Sort(statuses)
	if !slices.Equal(statuses, []driver.Status{driver.StatusDone, driver.StatusError}) {
		t.Errorf("final statuses = %v", statuses)
	}

	// only the file that expanded cleanly reaches gofmt
	var formatted []string
	for _, ev := range sink.events {
		if ev.Stage == driver.StageFormat {
			formatted = append(formatted, filepath.Base(ev.File)+":"+string(ev.Status))
		}
	}
	if !slices.Equal(formatted, []string{"a.go.in:working", "a.go.in:done"}) {
		t.Errorf("format events = %v", formatted)
	}
}

func TestWriteAndCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "w.go.in")
	writeTemplate(t, path, "package p\n\nconcat_idents!(x = a, b { func x() {} })\n")

	opts := driver.Options{Gofmt: true, Header: true}
	_, res, err := driver.ExpandFile(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if fresh, err := driver.CheckResult(res, ".go.in"); err != nil || fresh {
		t.Fatalf("missing output must be stale: fresh=%v err=%v", fresh, err)
	}
	if !hasCode(res.Bag, diag.ExpStaleOutput) {
		t.Error("expected stale diagnostic")
	}

	_, res, err = driver.ExpandFile(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	target, err := driver.WriteResult(res, ".go.in")
	if err != nil {
		t.Fatal(err)
	}
	if target != filepath.Join(dir, "w.go") {
		t.Errorf("target = %q", target)
	}
	if fresh, err := driver.CheckResult(res, ".go.in"); err != nil || !fresh {
		t.Errorf("fresh=%v err=%v", fresh, err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "// Code generated by concatident from w.go.in. DO NOT EDIT.") {
		t.Errorf("missing header:\n%s", data)
	}
}

func TestOutputPath(t *testing.T) {
	if got := driver.OutputPath("a/b/foo.go.in", ".go.in"); got != "a/b/foo.go" {
		t.Errorf("got %q", got)
	}
	if got := driver.OutputPath("foo_test.tmpl", ".tmpl"); got != "foo_test.go" {
		t.Errorf("got %q", got)
	}
}

func TestTokenizeAndTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.go.in")
	writeTemplate(t, path, "m!(a)\n")
	res, err := driver.BuildTree(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tokens) != 6 || res.Bag.Len() != 0 || len(res.Tree.Nodes) != 1 {
		t.Errorf("tokens=%d diags=%d nodes=%d", len(res.Tokens), res.Bag.Len(), len(res.Tree.Nodes))
	}
}
