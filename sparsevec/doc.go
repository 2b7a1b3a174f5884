// Package sparsevec provides a generic hyper-sparse vector for
// high-performance linear algebra.
//
// A Vector[T] maintains both a dense slice of values (O(1) random access)
// and an explicit list of non-zero indices (O(nnz) iteration). On top of the
// dual representation it layers the bulk operations iterative solvers need:
//
//   - Clear with a sparse-vs-dense cost heuristic
//   - PruneSmallValues against a caller-supplied tolerance
//   - packed (contiguous) snapshots of the active entries behind a dirty flag
//   - index-list rebuild after direct dense writes
//   - SquaredNorm and Saxpy (y ← y + α·x) over active entries only
//   - deep copies, cross-precision conversion, and exact structural equality
//
// The element type is generic over the Scalar capability set, so the same
// implementation serves plain float64 arithmetic (Plain) and compensated
// double-double arithmetic (compensated.Double).
//
// # Index-list consistency
//
// The invariant is one-directional: every tracked index holds its current
// value in the dense slice, and every untracked index must hold the exact
// zero value. Direct dense writes through Set deliberately bypass tracking;
// callers either maintain the list themselves or call InvalidateIndices
// followed by RebuildIndices. The consistency state is explicit
// (IndexConsistent / IndexNeedsRebuild) rather than a magic sentinel count.
//
// # Tolerance policy
//
// Saxpy can flush results whose magnitude falls below a tolerance to exact
// zero (the slot stays tracked). The tolerance is caller policy, supplied
// via WithFlushTolerance; the default of 0 disables flushing. PruneSmallValues
// likewise takes its tolerance as an argument. No threshold is hardcoded.
//
// # Contract
//
// Indices must lie in [0, Dimension()); Saxpy, CopyFrom and Convert require
// equal dimensions. Violations are programming errors and panic. A Vector is
// owned by one logical thread of control; concurrent use is undefined.
package sparsevec
