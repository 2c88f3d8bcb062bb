// Package poisson implements blue-noise point generation by Poisson-disk
// sampling: dart throwing driven by an active frontier, accelerated by a
// uniform spatial grid.
//
// What:
//
//   - Generate draws points in the unit domain (the inscribed unit circle
//     or the unit square) such that no two accepted points lie closer than
//     a minimum distance, while remaining statistically uniform otherwise.
//   - A frontier of not-yet-expanded points spawns polar candidates at
//     radius [minDist, 2·minDist); a dense cell grid answers "any accepted
//     point within minDist?" by scanning a fixed window instead of the
//     whole output.
//
// Why:
//
//   - Blue noise: low-frequency-free distributions for procedural
//     texturing, dithering and stratified sampling.
//   - Sub-linear rejection: the grid makes each candidate test O(1)
//     instead of O(n).
//
// Count semantics:
//
//	The requested count is doubled internally to compensate for rejection
//	near the domain boundary (and additionally scaled by π/4 in square
//	mode, since the spacing estimator assumes circular packing). The
//	returned sequence is NOT trimmed back to the request: callers should
//	expect up to ~2× (π/2× for squares) the nominal count, or clip
//	downstream. This is long-standing observable behavior; changing it
//	would silently break determinism expectations.
//
// Complexity:
//
//   - Generate: O(n·k) expected for n emitted points and k attempts per
//     frontier expansion; Memory: O(n + cells).
//
// Errors:
//
//	None. Every input — zero count, negative spacing sentinel, zero seed —
//	maps to a well-defined, possibly degenerate, output.
package poisson
