// Package trace records what the compiler driver is doing.
//
// Every pass over a unit opens a span; spans nest through the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopePass, "parse")
//	defer span.End("")
//
// Tracers either write events as they happen (StreamTracer), keep the last N
// in memory for a dump after a failure (RingTracer), or both (MultiTracer).
// When tracing is off the Nop tracer is used and Begin returns an inert span.
//
// Levels select how much is emitted:
//
//   - off: nothing
//   - error: only the ring dump on failure
//   - phase: driver and pass boundaries
//   - detail: per-unit events
//   - debug: per-function events too
package trace
