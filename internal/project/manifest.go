package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultSuffix   = ".go.in"
	DefaultMaxDepth = 64
)

// Manifest is a loaded concatident.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the manifest layout.
type Config struct {
	Expand ExpandConfig `toml:"expand"`
	Macros MacrosConfig `toml:"macros"`
}

type ExpandConfig struct {
	Suffix   string `toml:"suffix"`
	Gofmt    bool   `toml:"gofmt"`
	MaxDepth int    `toml:"max_depth"`
}

type MacrosConfig struct {
	Aliases []string `toml:"aliases"`
}

// DefaultConfig is used when there is no manifest and for keys the manifest omits.
func DefaultConfig() Config {
	return Config{
		Expand: ExpandConfig{Suffix: DefaultSuffix, Gofmt: true, MaxDepth: DefaultMaxDepth},
		Macros: MacrosConfig{Aliases: []string{}},
	}
}

// LoadManifest finds and loads the manifest above startDir. ok is false when
// there is none; the caller then falls back to DefaultConfig.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// LoadConfig decodes path on top of DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("expand", "suffix") && strings.TrimSpace(cfg.Expand.Suffix) == "" {
		return Config{}, fmt.Errorf("%s: [expand].suffix must not be empty", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var macroName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks values a manifest or flags may have broken.
func (c Config) Validate() error {
	var errs []error
	if !strings.HasPrefix(c.Expand.Suffix, ".") {
		errs = append(errs, fmt.Errorf("[expand].suffix %q must start with '.'", c.Expand.Suffix))
	}
	if c.Expand.Suffix == ".go" {
		errs = append(errs, errors.New("[expand].suffix must differ from .go"))
	}
	if c.Expand.MaxDepth < 1 {
		errs = append(errs, fmt.Errorf("[expand].max_depth must be positive, got %d", c.Expand.MaxDepth))
	}
	for _, alias := range c.Macros.Aliases {
		if !macroName.MatchString(alias) {
			errs = append(errs, fmt.Errorf("[macros].aliases: %q is not a valid macro name", alias))
		}
	}
	return errors.Join(errs...)
}

// Digest fingerprints every option that changes expansion output. It is part
// of the disk cache key.
func (c Config) Digest() Digest {
	var b strings.Builder
	fmt.Fprintf(&b, "gofmt=%t;max_depth=%d;aliases=%s", c.Expand.Gofmt, c.Expand.MaxDepth,
		strings.Join(c.Macros.Aliases, ","))
	return HashString(b.String())
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDefault creates dir/concatident.toml with the default configuration.
// It refuses to overwrite an existing manifest.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%s already exists", path)
	}
	data, err := DefaultConfig().Encode()
	if err != nil {
		return "", fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}
