// Package compensated implements a double-double extended-precision real
// number type built from error-free floating-point transformations.
//
// A Double represents a real number as the unevaluated sum of two IEEE 754
// float64 values, hi + lo, where lo carries the rounding error that a plain
// float64 would have discarded. This yields roughly 106 bits of significand
// (about 31 decimal digits) — effectively twice the working precision of a
// float64 — at a small constant cost per operation and without any heap
// allocation.
//
// The arithmetic kernels follow the classic error-free transformations:
//
//   - TwoSum (Knuth): exact sum of two floats as a rounded result plus exact
//     error, valid for any operand order. 6 flops.
//   - Split (Veltkamp): exact split of a 53-bit significand into two 26-bit
//     halves, the prerequisite for exact multiplication. 4 flops.
//   - TwoProduct (Dekker): exact product as a rounded result plus exact
//     error. 17 flops.
//
// as described by S. M. Rump, "High precision evaluation of nonlinear
// functions" (2005).
//
// Values are immutable: every method returns a new Double. Comparisons and
// equality always go through the float64 projection (hi + lo), so two values
// that differ only in how the error is split between the components compare
// equal.
//
// This is not arbitrary precision. If you need more than ~106 bits, reach for
// math/big instead; if you need hardware speed on well-conditioned sums,
// plain float64 remains faster.
package compensated
