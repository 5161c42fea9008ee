package diag

import (
	"testing"

	"concatident/internal/source"
)

func TestBagLimitAndSort(t *testing.T) {
	bag := NewBag(3)
	r := BagReporter{Bag: bag}

	r.Report(MacEmptyIdentifier, SevError, source.Span{File: 0, Start: 9, End: 10}, "b", nil)
	r.Report(ExpFormatFailed, SevWarning, source.Span{File: 0, Start: 1, End: 2}, "a", nil)
	r.Report(MacMalformed, SevError, source.Span{File: 0, Start: 1, End: 2}, "c", nil)
	if bag.Add(NewError(MacMalformed, source.Span{}, "dropped")) {
		t.Fatal("bag must refuse diagnostics over its limit")
	}

	bag.Sort()
	got := []string{}
	for _, d := range bag.Items() {
		got = append(got, d.Message)
	}
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted order = %v, want %v", got, want)
		}
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Error("bag should report errors and warnings")
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{File: 0, Start: 3, End: 5}

	r.Report(MacExpectedFragment, SevError, sp, "same", nil)
	r.Report(MacExpectedFragment, SevError, sp, "same", nil)
	ReportError(r, MacExpectedFragment, sp, "other").WithNote(sp, "note").Emit()

	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", bag.Len())
	}
	if len(bag.Items()[1].Notes) != 1 {
		t.Error("note was not carried through the builder")
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexBadNumber:                   "LEX1004",
		SynUnclosedDelimiter:           "SYN2002",
		MacIdentifierStartsWithInteger: "MAC3007",
		ExpRecursionLimit:              "EXP4001",
		UnknownCode:                    "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %s, want %s", code, got, want)
		}
	}
}

func TestSeverityNames(t *testing.T) {
	tests := []struct {
		sev          Severity
		upper, lower string
	}{
		{SevNote, "NOTE", "note"},
		{SevWarning, "WARNING", "warning"},
		{SevError, "ERROR", "error"},
		{Severity(9), "UNKNOWN", "unknown"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.upper {
			t.Errorf("String(%d) = %q, want %q", tt.sev, got, tt.upper)
		}
		if got := tt.sev.Label(); got != tt.lower {
			t.Errorf("Label(%d) = %q, want %q", tt.sev, got, tt.lower)
		}
	}
}
