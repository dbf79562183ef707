// Package drain advances the water height in a frustum tank over time.
//
// The drainage obeys a single first-order ODE:
//
//	dh/dt = -Q(h) / A(h)
//
// where Q is the outlet flow rate ([flow.Model]) and A the tank
// cross-section at the water line ([tank.Frustum]). The loop is a
// fixed-step explicit Euler scheme; each step depends on the previous
// one, so a single run is strictly sequential. The scheme is
// deterministic: identical inputs always reproduce the same trace.
//
// A run terminates either [Drained], once the height falls to the
// near-zero threshold, or [TimedOut], once simulated time passes the
// hard safety cap. The cap is a deliberate guard against pathological
// inputs (a vanishingly small outlet, a timestep too coarse to
// converge) that would otherwise iterate forever; the two outcomes are
// never conflated.
//
// Independent runs share no mutable state and may execute
// concurrently; [Pair] runs an idealized and a realistic drainage of
// the same tank side by side and joins before comparison.
package drain
