package driver

import (
	"fmt"
	"runtime"

	"concatident/internal/macro"
	"concatident/internal/observ"
	"concatident/internal/project"
)

// Options controls expansion of one file or a directory.
type Options struct {
	Registry       *macro.Registry
	Suffix         string // template suffix, ".go.in"
	MaxDepth       int    // expansion rounds per file
	Gofmt          bool
	Header         bool // prepend the "Code generated" line
	MaxDiagnostics int
	Jobs           int

	Cache    *DiskCache     // nil disables caching
	Digest   project.Digest // fingerprint of the options above, part of cache keys
	Timer    *observ.Timer
	Progress ProgressSink
}

// OptionsFromConfig builds Options from a manifest configuration.
func OptionsFromConfig(cfg project.Config) (Options, error) {
	if err := cfg.Validate(); err != nil {
		return Options{}, err
	}
	reg, err := macro.Default(cfg.Macros.Aliases...)
	if err != nil {
		return Options{}, fmt.Errorf("build macro registry: %w", err)
	}
	return Options{
		Registry: reg,
		Suffix:   cfg.Expand.Suffix,
		MaxDepth: cfg.Expand.MaxDepth,
		Gofmt:    cfg.Expand.Gofmt,
		Header:   true,
		Digest:   cfg.Digest(),
	}, nil
}

func (o Options) withDefaults() Options {
	if o.Registry == nil {
		o.Registry, _ = macro.Default()
	}
	if o.Suffix == "" {
		o.Suffix = project.DefaultSuffix
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = project.DefaultMaxDepth
	}
	if o.Jobs <= 0 {
		o.Jobs = runtime.GOMAXPROCS(0)
	}
	if o.Progress == nil {
		o.Progress = nopSink{}
	}
	return o
}

// cacheDigest mixes the in-process options into the manifest digest so that a
// cached result from a run with a different header or gofmt flag is not reused.
func (o Options) cacheDigest() project.Digest {
	return project.Combine(o.Digest, project.HashString(fmt.Sprintf("header=%t;gofmt=%t;depth=%d",
		o.Header, o.Gofmt, o.MaxDepth)))
}
