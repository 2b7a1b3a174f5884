// Package scatter provides a high-precision sparse accumulation structure
// for one-dimensional scatter/gather arithmetic.
//
// An Accumulator keeps two synchronized views of the same logical vector:
//
//   - a dense slice of compensated.Double values, giving O(1) random access
//     and full-precision in-place accumulation, and
//   - an explicit list of active ("non-zero") indices, giving O(nnz)
//     iteration regardless of dimension.
//
// It is the classic pivot-column accumulation pattern from simplex-style
// solvers: many adds land on a small subset of positions, sums of wildly
// varying magnitude must not lose digits, and resetting between iterations
// must cost O(nnz) rather than O(dimension) when the structure is sparse.
//
// # Sentinel zero
//
// When an accumulated sum cancels to exactly zero, the slot is not removed:
// it is overwritten with the smallest positive normal float64 so the index
// stays in the active list. This distinguishes "was touched and cancelled"
// from "never touched" — a later Add on that index must recognize the slot as
// tracked instead of appending it a second time. Callers that need true
// zeros use Cleanup with their own predicate.
//
// # Contract
//
// Indices must lie in [0, Dimension()). Out-of-range indices are a
// programming error and panic. Direct writes through Set bypass the active
// list on purpose; callers doing so own the consistency of the structure.
// An Accumulator is not safe for concurrent use.
package scatter
