package project_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"concatident/internal/project"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, project.ManifestName), "[expand]\nmax_depth = 8\n[macros]\naliases = [\"cat\"]\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := project.LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if m.Root != root {
		t.Errorf("root = %q, want %q", m.Root, root)
	}
	cfg := m.Config
	if cfg.Expand.MaxDepth != 8 || cfg.Expand.Suffix != project.DefaultSuffix || !cfg.Expand.Gofmt {
		t.Errorf("unexpected expand config %+v", cfg.Expand)
	}
	if len(cfg.Macros.Aliases) != 1 || cfg.Macros.Aliases[0] != "cat" {
		t.Errorf("aliases = %v", cfg.Macros.Aliases)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	// t.TempDir lives under the system temp dir, which has no manifest above it
	_, ok, err := project.LoadManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Skip("a concatident.toml exists above the temp dir")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"[expand\n", "failed to parse TOML"},
		{"[expand]\nsuffix = \"\"\n", "must not be empty"},
		{"[expand]\nsuffix = \"in\"\n", "must start with '.'"},
		{"[expand]\nmax_depth = 0\n", "max_depth must be positive"},
		{"[macros]\naliases = [\"no-dash\"]\n", "not a valid macro name"},
		{"[expand]\ncolour = true\n", "unknown keys: expand.colour"},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), project.ManifestName)
		writeFile(t, path, tt.content)
		_, err := project.LoadConfig(path)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%q: err = %v, want %q", tt.content, err, tt.want)
		}
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path, err := project.WriteDefault(dir)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := project.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Digest() != project.DefaultConfig().Digest() {
		t.Error("default manifest does not round-trip")
	}
	if _, err := project.WriteDefault(dir); err == nil {
		t.Error("expected refusal to overwrite")
	}
}

func TestDigestTracksOptions(t *testing.T) {
	a := project.DefaultConfig()
	b := project.DefaultConfig()
	b.Expand.Gofmt = false
	if a.Digest() == b.Digest() {
		t.Error("gofmt must change the digest")
	}
	c := project.DefaultConfig()
	c.Expand.Suffix = ".tmpl"
	if a.Digest() != c.Digest() {
		t.Error("suffix does not change output and must not change the digest")
	}
}
