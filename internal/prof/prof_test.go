package prof_test

import (
	"os"
	"path/filepath"
	"testing"

	"concatident/internal/prof"
)

func TestSessionWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	cfg := prof.Config{
		CPUPath:   filepath.Join(dir, "cpu.pprof"),
		MemPath:   filepath.Join(dir, "mem.pprof"),
		TracePath: filepath.Join(dir, "trace.out"),
	}
	s, err := prof.Start(cfg)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !s.Active() {
		t.Fatal("session should be active")
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	for _, p := range []string{cfg.CPUPath, cfg.MemPath, cfg.TracePath} {
		st, err := os.Stat(p)
		if err != nil {
			t.Fatalf("missing %s: %v", p, err)
		}
		if st.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}

func TestEmptyConfig(t *testing.T) {
	s, err := prof.Start(prof.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if s.Active() {
		t.Error("empty config should not be active")
	}
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
}

func TestStartFailsCleanly(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "cpu.pprof")
	if _, err := prof.Start(prof.Config{CPUPath: missing}); err == nil {
		t.Fatal("expected an error for an unwritable path")
	}
	// a failed Start must not leave the CPU profiler running
	s, err := prof.Start(prof.Config{CPUPath: filepath.Join(t.TempDir(), "cpu.pprof")})
	if err != nil {
		t.Fatalf("second Start: %v", err)
	}
	_ = s.Stop()
}
