// Package bluenoise generates bounded 2D point distributions with
// statistical spacing guarantees — blue-noise (Poisson-disk) sampling
// plus a family of deterministic companions.
//
// 🚀 What is bluenoise?
//
//	A small, deterministic library for procedural texturing, dithering
//	and stratified sampling that brings together:
//		• Poisson-disk sampling: dart throwing with an active frontier and
//		  a spatial grid for sub-linear neighbor rejection
//		• Vogel spirals: golden-angle phyllotaxis placement, closed form
//		• Jittered grids: stratified cells with small random perturbations
//		• Hammersley sets: bit-reversal low-discrepancy sequences
//		• Spacing diagnostics: nearest-neighbor statistics over any output
//
// ✨ Why choose bluenoise?
//
//   - Deterministic – same seed ⇒ identical point sequence, every platform
//   - Total functions – every input maps to a well-defined output; the
//     generators never error and never panic
//   - Swappable randomness – samplers accept any prng.Source, from the
//     reference LCG stream to PCG32
//   - Unit-domain contract – every point lands in [0,1]² (square mode) or
//     the inscribed unit circle (disk mode) before caller scaling
//
// Under the hood, everything is organized under seven subpackages:
//
//	point/      — the 2D Point type, unit-square/circle predicates, distances
//	prng/       — the Source contract, the reference LCG, and PCG32
//	poisson/    — the core sampler: spatial grid + dart-throwing frontier
//	vogel/      — golden-angle spiral sampler (deterministic)
//	jitter/     — jittered-grid sampler
//	hammersley/ — low-discrepancy sampler (deterministic)
//	pointstat/  — nearest-neighbor spacing statistics
//
// Quick ASCII example:
//
//	 · ·  ·   ·
//	·   ·   ·  ·
//	  ·   ·   ·
//	 ·  ·   ·  ·
//
//	blue noise: no two points closer than the minimum distance,
//	otherwise statistically uniform.
//
// Rendering, file I/O and CLI surfaces are deliberately absent: the
// library's only contract is an ordered []point.Point in the unit domain,
// consumed however the caller sees fit.
//
//	go get github.com/katalvlaran/bluenoise/poisson
package bluenoise
