package scatter

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/sparsekit/compensated"
)

// sentinelMin is the smallest positive normal float64 (2^-1022). It replaces
// sums that cancel to exactly zero so their index stays tracked.
const sentinelMin = 0x1p-1022

// panicBounds is the message for out-of-range index contract violations.
const panicBounds = "scatter: index out of range"

// Accumulator manages high-precision accumulation over a sparse vector:
// dense compensated storage plus an explicit active-index list.
//
// The zero value is an empty (zero-dimension) accumulator; use New or
// SetDimension to size it.
type Accumulator struct {
	values  []compensated.Double // dense storage, one slot per logical index
	nonZero []int                // indices holding non-zero (or sentinel) sums
}

// New creates an Accumulator with the given dimension.
// Complexity: O(dimension) time and memory.
func New(dimension int) *Accumulator {
	a := &Accumulator{}
	a.SetDimension(dimension)
	return a
}

// SetDimension resizes the dense storage to dimension slots, preserving
// existing values on growth, and reserves the active-index list so that
// subsequent appends do not reallocate.
func (a *Accumulator) SetDimension(dimension int) {
	if dimension <= len(a.values) {
		a.values = a.values[:dimension]
	} else {
		a.values = append(a.values, make([]compensated.Double, dimension-len(a.values))...)
	}
	if cap(a.nonZero) < dimension {
		grown := make([]int, len(a.nonZero), dimension)
		copy(grown, a.nonZero)
		a.nonZero = grown
	}
}

// Dimension returns the number of logical slots.
func (a *Accumulator) Dimension() int { return len(a.values) }

// Empty reports whether the accumulator has zero dimension.
func (a *Accumulator) Empty() bool { return len(a.values) == 0 }

// Capacity returns the capacity of the underlying dense storage.
func (a *Accumulator) Capacity() int { return cap(a.values) }

// boundsCheck panics when index is outside [0, Dimension()).
// Violations are programming errors, never recoverable conditions.
func (a *Accumulator) boundsCheck(index int) {
	if index < 0 || index >= len(a.values) {
		panic(panicBounds)
	}
}

// Add accumulates a float64 value at index in extended precision.
//
// A slot already tracked receives a compensated in-place addition; an
// untracked slot is initialized and its index appended to the active list.
// If the resulting sum compares equal to zero it is replaced by the sentinel
// smallest positive normal value, so the index remains tracked and a future
// Add will not append it again.
//
// Complexity: O(1) amortized.
func (a *Accumulator) Add(index int, v float64) {
	a.boundsCheck(index)

	if !a.values[index].IsZero() {
		a.values[index] = a.values[index].AddFloat(v)
	} else {
		a.values[index] = compensated.New(v)
		a.nonZero = append(a.nonZero, index)
	}

	if a.values[index].IsZero() {
		a.values[index] = compensated.New(sentinelMin)
	}
}

// AddDouble accumulates an already-compensated value at index.
// Same tracking and sentinel rules as Add.
func (a *Accumulator) AddDouble(index int, v compensated.Double) {
	a.boundsCheck(index)

	if !a.values[index].IsZero() {
		a.values[index] = a.values[index].Add(v)
	} else {
		a.values[index] = v
		a.nonZero = append(a.nonZero, index)
	}

	if a.values[index].IsZero() {
		a.values[index] = compensated.New(sentinelMin)
	}
}

// Value returns the float64 projection of the sum stored at index.
// It never mutates tracking state; untouched slots read as 0.
func (a *Accumulator) Value(index int) float64 {
	a.boundsCheck(index)
	return a.values[index].Float64()
}

// NonZeros returns the active-index list in insertion order (or the order
// left behind by Partition/Cleanup). The slice is a live view — callers must
// treat it as read-only.
func (a *Accumulator) NonZeros() []int { return a.nonZero }

// Clear resets every value to zero and empties the active list.
//
// A cost heuristic picks the cheaper reset: when fewer than 30% of the slots
// are active, only the active slots are zeroed (O(nnz)); otherwise the whole
// dense array is overwritten (O(dimension)). The comparison
// 10*nnz < 3*dimension is the same threshold in integer arithmetic.
func (a *Accumulator) Clear() {
	if 10*len(a.nonZero) < 3*len(a.values) {
		for _, i := range a.nonZero {
			a.values[i] = compensated.Double{}
		}
	} else {
		for i := range a.values {
			a.values[i] = compensated.Double{}
		}
	}

	a.nonZero = a.nonZero[:0]
}

// Partition reorders the active-index list in place so that indices
// satisfying pred come first, and returns the number of such indices.
// The relative order within each group is not preserved.
//
// Complexity: O(nnz).
func (a *Accumulator) Partition(pred func(index int) bool) int {
	first, last := 0, len(a.nonZero)
	for first < last {
		if pred(a.nonZero[first]) {
			first++
			continue
		}
		last--
		a.nonZero[first], a.nonZero[last] = a.nonZero[last], a.nonZero[first]
	}
	return first
}

// Cleanup removes active indices for which isZero reports true, resetting
// their slot to a true zero. Removal swaps with the last active entry and
// shrinks the list, so the order of the remaining indices is not preserved.
// The scan runs in reverse so each entry is visited exactly once.
//
// Complexity: O(nnz).
func (a *Accumulator) Cleanup(isZero func(index int, v float64) bool) {
	n := len(a.nonZero)
	for i := n - 1; i >= 0; i-- {
		pos := a.nonZero[i]
		if isZero(pos, a.values[pos].Float64()) {
			a.values[pos] = compensated.Double{}
			n--
			a.nonZero[i], a.nonZero[n] = a.nonZero[n], a.nonZero[i]
		}
	}
	a.nonZero = a.nonZero[:n]
}

// At reads the compensated value stored at index directly from the dense
// array, active or not.
func (a *Accumulator) At(index int) compensated.Double {
	a.boundsCheck(index)
	return a.values[index]
}

// Set writes directly into the dense array. It does NOT update the
// active-index list — callers bypassing Add own the consistency of the
// structure (typically followed by their own tracking or a Clear).
func (a *Accumulator) Set(index int, v compensated.Double) {
	a.boundsCheck(index)
	a.values[index] = v
}

// All returns a restartable iterator over every dense slot (not only active
// ones), in index order.
func (a *Accumulator) All() iter.Seq2[int, compensated.Double] {
	return func(yield func(int, compensated.Double) bool) {
		for i, v := range a.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// String renders the sparse structure for diagnostics:
//
//	Accumulator(dim=D, nnz=N) {
//	  Non-zeros: [(i: v), ...]
//	}
//
// Entries appear in active-list order with float64 projections.
func (a *Accumulator) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Accumulator(dim=%d, nnz=%d) {\n  Non-zeros: [", len(a.values), len(a.nonZero))
	for i, idx := range a.nonZero {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%d: %g)", idx, a.values[idx].Float64())
	}
	sb.WriteString("]\n}")
	return sb.String()
}
