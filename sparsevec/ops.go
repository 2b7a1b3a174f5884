package sparsevec

import "math"

// SquaredNorm returns the squared Euclidean norm, summing squares over
// tracked entries only. Requires a consistent index list.
//
// Complexity: O(nnz).
func (v *Vector[T]) SquaredNorm() T {
	var result T
	for _, idx := range v.indices[:v.nnz] {
		val := v.dense[idx]
		result = result.Add(val.Mul(val))
	}
	return result
}

// Saxpy performs y ← y + alpha·x in place, iterating only over x's tracked
// indices.
//
// Fill-in: a target slot that held the exact zero value gains a tracked
// index, exactly once per newly non-zero position. Flush: when the freshly
// computed value has |value| below the vector's flush tolerance it is stored
// as the exact zero constant instead of a denormal-adjacent residue — the
// index stays tracked. With the default tolerance of 0 no flushing occurs.
//
// Both vectors must share a dimension; a mismatch panics.
// Complexity: O(nnz(x)).
func (v *Vector[T]) Saxpy(alpha T, x *Vector[T]) {
	if v.dimension != x.dimension {
		panic(panicDimMatch)
	}

	var zero T
	for _, idx := range x.indices[:x.nnz] {
		original := v.dense[idx]
		updated := original.Add(alpha.Mul(x.dense[idx]))

		// A previously-zero slot is a new structural non-zero.
		if original.IsZero() {
			v.indices[v.nnz] = idx
			v.nnz++
		}

		if tol := v.flushTolerance; tol > 0 && math.Abs(updated.Float64()) < tol {
			v.dense[idx] = zero
		} else {
			v.dense[idx] = updated
		}
	}
}

// AddVec is Saxpy with alpha = +1.
func (v *Vector[T]) AddVec(x *Vector[T]) {
	var seed T
	v.Saxpy(seed.FromFloat64(1), x)
}

// SubVec is Saxpy with alpha = -1.
func (v *Vector[T]) SubVec(x *Vector[T]) {
	var seed T
	v.Saxpy(seed.FromFloat64(-1), x)
}

// CopyFrom deep-copies src's active structure into v: clock tick, tracked
// indices and their dense values. v is cleared first; both vectors must
// share a dimension.
//
// Complexity: O(nnz(src)) plus the cost of the clear.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v.dimension != src.dimension {
		panic(panicDimMatch)
	}

	v.Clear()

	v.clockTick = src.clockTick
	v.nnz = src.nnz
	for i, idx := range src.indices[:src.nnz] {
		v.indices[i] = idx
		v.dense[idx] = src.dense[idx]
	}
}

// Convert deep-copies src into dst across element types, applying conv to
// every active value — e.g. widening Plain into compensated.Double. dst is
// cleared first; both vectors must share a dimension.
//
// Complexity: O(nnz(src)) plus the cost of the clear.
func Convert[Dst Scalar[Dst], Src Scalar[Src]](dst *Vector[Dst], src *Vector[Src], conv func(Src) Dst) {
	if dst.dimension != src.dimension {
		panic(panicDimMatch)
	}

	dst.Clear()

	dst.clockTick = src.clockTick
	dst.nnz = src.nnz
	for i, idx := range src.indices[:src.nnz] {
		dst.indices[i] = idx
		dst.dense[idx] = conv(src.dense[idx])
	}
}

// Equal reports exact structural equality: dimension, tracked count, the
// tracked index sequence position by position, every dense value (by
// projection, the element types' own equality), and the clock tick.
//
// This is replay-grade identity for deterministic testing, not mathematical
// vector equality — two vectors holding the same values with differently
// ordered index lists are not Equal.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v.dimension != other.dimension {
		return false
	}
	if v.nnz != other.nnz {
		return false
	}
	for i := 0; i < v.nnz; i++ {
		if v.indices[i] != other.indices[i] {
			return false
		}
	}
	for i := range v.dense {
		if v.dense[i].Float64() != other.dense[i].Float64() {
			return false
		}
	}
	return v.clockTick == other.clockTick
}
