// Package analysis post-processes completed drain traces. Everything
// here is a pure function of its input: traces are read-only and
// repeated invocations yield identical results.
package analysis
