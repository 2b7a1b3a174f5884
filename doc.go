// Package sparsekit is your in-memory toolbox for precision-preserving
// sparse linear algebra — compensated extended-precision arithmetic and
// hyper-sparse vector structures for iterative solver kernels.
//
// 🚀 What is sparsekit?
//
//	A modern, zero-surprise numeric library that brings together:
//		• Compensated arithmetic: a double-double real type (~106 significand bits)
//		  built from error-free transformations (TwoSum, Split, TwoProduct)
//		• Scatter accumulation: dense O(1) random access + explicit non-zero
//		  index tracking with a sentinel-zero convention
//		• Hyper-sparse vectors: generic packing, pruning, norms and saxpy over
//		  plain or compensated element types
//
// ✨ Why choose sparsekit?
//
//   - Numerically exact – every rounding error is tracked, not guessed
//   - Cost-aware – sparse vs. dense reset picked by an explicit heuristic
//   - Pure Go – no cgo, no hidden deps
//   - Generic – one vector implementation, any element type that can add,
//     scale and compare to zero
//
// Under the hood, everything is organized under three subpackages:
//
//	compensated/ — the Double type: error-free add/mul/div, sqrt, floor/ceil/round
//	scatter/     — Accumulator: high-precision sparse accumulation with sentinel zeros
//	sparsevec/   — Vector[T]: generic hyper-sparse vector with pack/prune/saxpy
//
// Quick sketch:
//
//	    dense:   [0  0  a  0  b  0 ... 0  c]
//	    indices: [2, 4, n-1]
//
//	one logical vector, two synchronized views: O(1) lookup, O(nnz) iteration.
//
// Typical use is pivot-column accumulation in simplex-style solvers, where
// naively summing many terms of wildly varying magnitude loses digits that
// compensated arithmetic keeps.
//
//	go get github.com/katalvlaran/sparsekit
package sparsekit
