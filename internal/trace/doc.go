// Package trace records what the expander is doing: which files it expands,
// how many rounds each file takes and which invocations are expanded.
//
// Enable it from the command line:
//
//	concatident expand --trace=- --trace-level=detail ./gen
//
// Tracers:
//
//   - Nop: disabled tracing, costs a nil check
//   - StreamTracer: writes each event as it happens
//   - RingTracer: keeps the last events in memory and dumps them on failure
//   - MultiTracer: fans out to several tracers
//
// Levels map onto scopes: phase shows the driver and per-file spans, detail adds
// expansion rounds, debug adds every macro invocation.
//
// The tracer travels in the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	sp := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "expand", parent)
//	defer sp.End("")
package trace
