package trace_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"concatident/internal/trace"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "ERROR", "Phase", "detail", "debug"} {
		if _, err := trace.ParseLevel(s); err != nil {
			t.Errorf("ParseLevel(%q): %v", s, err)
		}
	}
	if _, err := trace.ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLevelScopes(t *testing.T) {
	if !trace.LevelPhase.ShouldEmit(trace.ScopeFile) || trace.LevelPhase.ShouldEmit(trace.ScopeRound) {
		t.Error("phase must stop at files")
	}
	if !trace.LevelDetail.ShouldEmit(trace.ScopeRound) || trace.LevelDetail.ShouldEmit(trace.ScopeMacro) {
		t.Error("detail must stop at rounds")
	}
	if !trace.LevelDebug.ShouldEmit(trace.ScopeMacro) {
		t.Error("debug must emit everything")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr, err := trace.New(trace.Config{Level: trace.LevelDetail, Output: &buf, Format: trace.FormatText})
	if err != nil {
		t.Fatal(err)
	}
	root := trace.Begin(tr, trace.ScopeFile, "expand", 0)
	round := trace.Begin(tr, trace.ScopeRound, "round", root.ID())
	trace.Begin(tr, trace.ScopeMacro, "macro:concat_idents", round.ID()).End("")
	round.End("1 invocation")
	root.WithExtra("rounds", "1").End("")

	out := buf.String()
	if strings.Count(out, "\n") != 4 {
		t.Fatalf("expected 4 lines, got:\n%s", out)
	}
	if strings.Contains(out, "macro:") {
		t.Error("macro scope leaked at detail level")
	}
	if !strings.Contains(out, "(1 invocation)") || !strings.Contains(out, "{rounds=1}") {
		t.Errorf("missing detail or extra:\n%s", out)
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelPhase, trace.FormatNDJSON)
	trace.Point(tr, trace.ScopeDriver, "start", "x", 0)

	var ev map[string]any
	if err := json.Unmarshal(buf.Bytes(), &ev); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if ev["name"] != "start" || ev["kind"] != "point" || ev["scope"] != "driver" {
		t.Errorf("unexpected event %v", ev)
	}
}

func TestRingWrapsAround(t *testing.T) {
	r := trace.NewRingTracer(3, trace.LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		trace.Point(r, trace.ScopeFile, name, "", 0)
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len = %d", len(snap))
	}
	for i, want := range []string{"c", "d", "e"} {
		if snap[i].Name != want {
			t.Errorf("snap[%d] = %q, want %q", i, snap[i].Name, want)
		}
	}
}

func TestDumpRingFromMulti(t *testing.T) {
	var stream, dump bytes.Buffer
	tr, err := trace.New(trace.Config{Level: trace.LevelPhase, Mode: trace.ModeBoth, Output: &stream})
	if err != nil {
		t.Fatal(err)
	}
	trace.Begin(tr, trace.ScopeDriver, "expand", 0).End("")
	if err := trace.DumpRing(tr, &dump, trace.FormatText); err != nil {
		t.Fatal(err)
	}
	if stream.String() == "" || strings.Count(dump.String(), "\n") != 2 {
		t.Errorf("stream %q, dump %q", stream.String(), dump.String())
	}
}

func TestDisabledSpanIsSafe(t *testing.T) {
	tr, err := trace.New(trace.Config{Level: trace.LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	sp := trace.Begin(tr, trace.ScopeDriver, "x", 0)
	if sp.ID() != 0 || sp.WithExtra("k", "v").End("") != 0 {
		t.Error("disabled span must be inert")
	}
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	if trace.FromContext(ctx) != trace.Nop {
		t.Error("expected Nop by default")
	}
	r := trace.NewRingTracer(1, trace.LevelPhase)
	ctx = trace.WithSpan(trace.WithTracer(ctx, r), 42)
	if trace.FromContext(ctx) != trace.Tracer(r) || trace.SpanFromContext(ctx) != 42 {
		t.Error("context round trip failed")
	}
}
