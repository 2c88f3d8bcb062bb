// Package prng centralizes deterministic random generation for all
// bluenoise samplers.
//
// What:
//
//   - Source — the capability contract every randomized sampler draws from:
//     floats in [0,1) and bounded integers. Samplers are generic over any
//     implementation, so the generator can be swapped without touching the
//     algorithms.
//   - LCG — the reference stream: a single mutable 32-bit seed advanced by
//     multiplication, remapped to [0,1) through float mantissa bits.
//     Seed-for-seed reproducible; this stream defines the library's
//     determinism guarantees.
//   - PCG32 — a statistically stronger drop-in Source (PCG-XSH-RR) for
//     callers who want better equidistribution and accept a different
//     stream for the same seed.
//
// Why:
//
//   - Determinism: same seed ⇒ identical point sequences across platforms.
//   - Encapsulation: one RNG home; no time-based sources hidden anywhere.
//   - Safety: no panics, no errors; every 32-bit seed is valid, including
//     zero (the LCG then degenerates to a constant stream — documented
//     behavior, not a defect).
//
// Concurrency:
//
//   - A Source owns a single mutable state and is NOT goroutine-safe.
//     Each generation call should own its Source exclusively; reusing one
//     across sequential calls continues the stream.
package prng
