package sparsevec

import (
	"fmt"
	"math"
	"strings"
)

const (
	// byteWorkspacePadding is extra headroom appended to the byte workspace
	// so marker-based algorithms can place guards past the logical end.
	byteWorkspacePadding = 6400

	// intWorkspaceFactor sizes the integer workspace as a multiple of the
	// dimension, enough for algorithms that keep several maps at once.
	intWorkspaceFactor = 4
)

// Panic messages for contract violations (programming errors, never
// recoverable conditions).
const (
	panicBounds   = "sparsevec: index out of range"
	panicDimMatch = "sparsevec: dimension mismatch"
)

// Vector is a hyper-sparse vector: a dense value slice paired with an
// explicit non-zero index list, plus packed storage and scratch workspaces
// for algorithms built on top.
//
// The zero value is an empty (zero-dimension) vector; use New or Setup to
// size it. Vector is not safe for concurrent use.
type Vector[T Scalar[T]] struct {
	dense   []T   // dense storage, one slot per logical index
	indices []int // first nnz entries are the tracked non-zero indices
	nnz     int
	state   IndexState

	packedIdx []int // compacted snapshot of indices, valid when !packedStale
	packedVal []T   // values aligned with packedIdx
	packedLen int
	// packedStale is the dirty flag: set when the sparse structure changes,
	// cleared by CreatePackedStorage.
	packedStale bool

	byteWS []byte // scratch for temporary flags or markers
	intWS  []int  // scratch for temporary indexing or mapping

	dimension int
	clockTick float64    // monotonically-assigned tick for structural equality
	next      PoolHandle // weak link for external pool membership

	flushTolerance float64
}

// New creates a Vector with the given dimension and policy options.
// Complexity: O(dimension) time and memory.
func New[T Scalar[T]](dimension int, opts ...Option) *Vector[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := &Vector[T]{flushTolerance: o.flushTolerance}
	v.Setup(dimension)
	return v
}

// Setup (re)allocates all storage for the given dimension and resets every
// bookkeeping scalar: count, consistency state, packed dirty flag, clock
// tick and pool link. Existing data is discarded.
func (v *Vector[T]) Setup(dimension int) {
	v.dimension = dimension
	v.nnz = 0
	v.state = IndexConsistent

	v.indices = make([]int, dimension)
	v.dense = make([]T, dimension)
	v.byteWS = make([]byte, dimension+byteWorkspacePadding)
	v.intWS = make([]int, dimension*intWorkspaceFactor)

	v.packedLen = 0
	v.packedIdx = make([]int, dimension)
	v.packedVal = make([]T, dimension)
	v.packedStale = false

	v.clockTick = 0
	v.next = NoLink
}

// Dimension returns the size of the vector space.
func (v *Vector[T]) Dimension() int { return v.dimension }

// Empty reports whether the vector has zero dimension.
func (v *Vector[T]) Empty() bool { return v.dimension == 0 }

// Capacity returns the capacity of the underlying dense storage.
func (v *Vector[T]) Capacity() int { return cap(v.dense) }

// NonZeroCount returns the number of tracked indices. Meaningful only while
// State() is IndexConsistent.
func (v *Vector[T]) NonZeroCount() int { return v.nnz }

// State reports whether the index list currently reflects the dense array.
func (v *Vector[T]) State() IndexState { return v.state }

// InvalidateIndices marks the index list as stale. Call it after populating
// the dense array directly, then RebuildIndices before using sparse paths.
func (v *Vector[T]) InvalidateIndices() { v.state = IndexNeedsRebuild }

// Indices returns the tracked index list as a live, read-only view.
func (v *Vector[T]) Indices() []int { return v.indices[:v.nnz] }

// Values returns the dense value slice as a live view. Writing through it
// bypasses index tracking exactly like Set.
func (v *Vector[T]) Values() []T { return v.dense }

// At reads the dense slot at index, tracked or not.
func (v *Vector[T]) At(index int) T {
	v.boundsCheck(index)
	return v.dense[index]
}

// Set writes directly into the dense slot at index. It does NOT update the
// index list; callers either maintain tracking themselves or invalidate and
// rebuild afterwards.
func (v *Vector[T]) Set(index int, val T) {
	v.boundsCheck(index)
	v.dense[index] = val
}

func (v *Vector[T]) boundsCheck(index int) {
	if index < 0 || index >= v.dimension {
		panic(panicBounds)
	}
}

// Clear resets the vector to zero.
//
// The reset strategy follows a cost heuristic: with a consistent index list
// covering less than 30% of the dimension, only tracked slots are zeroed
// (O(nnz)); otherwise — including the needs-rebuild state, where the list
// cannot be trusted — the whole dense array is overwritten (O(dimension)).
func (v *Vector[T]) Clear() {
	var zero T
	if v.state == IndexNeedsRebuild || 10*v.nnz > 3*v.dimension {
		for i := range v.dense {
			v.dense[i] = zero
		}
	} else {
		for _, idx := range v.indices[:v.nnz] {
			v.dense[idx] = zero
		}
	}

	v.ClearScalars()
}

// ClearScalars resets the bookkeeping scalars without touching the data
// arrays. Use it when the dense values are already known to be zero.
func (v *Vector[T]) ClearScalars() {
	v.packedStale = false
	v.nnz = 0
	v.state = IndexConsistent
	v.clockTick = 0
	v.next = NoLink
}

// PruneSmallValues drops entries with |value| < tol, zeroing their dense
// slot.
//
// With a consistent index list the tracked indices are compacted in place,
// preserving the relative order of survivors (O(nnz)). In the needs-rebuild
// state the whole dense array is scanned instead and the state is left as
// needs-rebuild (O(dimension)).
func (v *Vector[T]) PruneSmallValues(tol float64) {
	var zero T
	if v.state == IndexNeedsRebuild {
		for i := range v.dense {
			if math.Abs(v.dense[i].Float64()) < tol {
				v.dense[i] = zero
			}
		}
		return
	}

	kept := 0
	for _, idx := range v.indices[:v.nnz] {
		if math.Abs(v.dense[idx].Float64()) >= tol {
			v.indices[kept] = idx
			kept++
		} else {
			v.dense[idx] = zero
		}
	}
	v.nnz = kept
}

// MarkPackedStale flags the packed snapshot as outdated. Mutating operations
// on the sparse structure should call it so the next CreatePackedStorage
// refreshes the snapshot.
func (v *Vector[T]) MarkPackedStale() { v.packedStale = true }

// CreatePackedStorage copies every tracked (index, value) pair into the
// contiguous packed arrays, for algorithms that want tight iteration without
// chasing the dense slice. A no-op unless the snapshot is marked stale.
//
// Complexity: O(nnz) when stale, O(1) otherwise.
func (v *Vector[T]) CreatePackedStorage() {
	if !v.packedStale {
		return
	}

	v.packedStale = false
	v.packedLen = 0

	for _, idx := range v.indices[:v.nnz] {
		v.packedIdx[v.packedLen] = idx
		v.packedVal[v.packedLen] = v.dense[idx]
		v.packedLen++
	}
}

// PackedLen returns the number of entries in the packed snapshot.
func (v *Vector[T]) PackedLen() int { return v.packedLen }

// PackedIndices returns the packed index snapshot as a live view.
func (v *Vector[T]) PackedIndices() []int { return v.packedIdx[:v.packedLen] }

// PackedValues returns the packed value snapshot as a live view.
func (v *Vector[T]) PackedValues() []T { return v.packedVal[:v.packedLen] }

// RebuildIndices reconstructs the index list from the dense array.
//
// When the list is consistent and covers at most 10% of the dimension it is
// assumed cheaper to keep than to rescan, and the call is a no-op. Otherwise
// a full linear scan re-collects every slot whose projection is non-zero and
// restores the consistent state.
//
// Complexity: O(dimension) on the rebuild path.
func (v *Vector[T]) RebuildIndices() {
	if v.state == IndexConsistent && 10*v.nnz <= v.dimension {
		return
	}

	v.nnz = 0
	for i := range v.dense {
		if v.dense[i].Float64() != 0 {
			v.indices[v.nnz] = i
			v.nnz++
		}
	}
	v.state = IndexConsistent
}

// ByteWorkspace returns the byte scratch area: dimension plus padding bytes
// for temporary flags or markers. Contents are owned by the caller between
// operations; this package never reads them.
func (v *Vector[T]) ByteWorkspace() []byte { return v.byteWS }

// IndexWorkspace returns the integer scratch area (4x dimension), for
// temporary indexing or mapping.
func (v *Vector[T]) IndexWorkspace() []int { return v.intWS }

// ClockTick returns the equality-check tick value.
func (v *Vector[T]) ClockTick() float64 { return v.clockTick }

// SetClockTick assigns the equality-check tick. Callers assign it
// monotonically to stamp vector states for deterministic-replay comparison.
func (v *Vector[T]) SetClockTick(tick float64) { v.clockTick = tick }

// NextLink returns the pool forward link (NoLink when absent).
func (v *Vector[T]) NextLink() PoolHandle { return v.next }

// SetNextLink sets the pool forward link.
func (v *Vector[T]) SetNextLink(h PoolHandle) { v.next = h }

// MoveFrom transfers other's storage into v and resets other to the empty
// zero-dimension state, like a freshly constructed Vector. Self-move is a
// no-op. No data is copied — the backing slices change owner.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}

	v.indices = other.indices
	v.dense = other.dense
	v.packedIdx = other.packedIdx
	v.packedVal = other.packedVal
	v.byteWS = other.byteWS
	v.intWS = other.intWS

	v.dimension = other.dimension
	v.nnz = other.nnz
	v.state = other.state
	v.packedLen = other.packedLen
	v.packedStale = other.packedStale
	v.clockTick = other.clockTick
	v.next = other.next
	v.flushTolerance = other.flushTolerance

	other.indices = nil
	other.dense = nil
	other.packedIdx = nil
	other.packedVal = nil
	other.byteWS = nil
	other.intWS = nil
	other.dimension = 0
	other.nnz = 0
	other.state = IndexConsistent
	other.packedLen = 0
	other.packedStale = false
	other.clockTick = 0
	other.next = NoLink
}

// String renders the sparse structure for diagnostics:
//
//	Vector(dim=D, nnz=N) {
//	  Non-zeros: [(i: v), ...]
//	}
//
// Entries appear in tracked order with float64 projections.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Vector(dim=%d, nnz=%d) {\n  Non-zeros: [", v.dimension, v.nnz)
	for i, idx := range v.indices[:v.nnz] {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%d: %g)", idx, v.dense[idx].Float64())
	}
	sb.WriteString("]\n}")
	return sb.String()
}
