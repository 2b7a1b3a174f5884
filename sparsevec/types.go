package sparsevec

// Scalar is the capability set Vector requires from its element type: the
// minimal arithmetic surface of {add, negate, multiply, compare-to-zero,
// convert-to-plain} plus a constructor expressible as a method.
//
// The constraint is self-referential (T's methods consume and produce T), so
// a type opts in simply by implementing the methods on itself. Both Plain
// and compensated.Double satisfy it.
type Scalar[T any] interface {
	// Add returns the element-wise sum with v.
	Add(v T) T
	// Mul returns the product with v.
	Mul(v T) T
	// Neg returns the additive inverse.
	Neg() T
	// Float64 projects the value to plain double precision.
	Float64() float64
	// IsZero reports whether the value equals the exact zero of the type.
	IsZero() bool
	// FromFloat64 constructs a T from a float64, ignoring the receiver.
	// Go generics have no static constructors; a receiver-independent
	// method is the conventional substitute.
	FromFloat64(v float64) T
}

// Plain is the plain-float64 instantiation of the Scalar capability set.
// It adds nothing over float64 arithmetic; it exists so Vector[Plain] is the
// ordinary double-precision sparse vector.
type Plain float64

// Add returns p + v.
func (p Plain) Add(v Plain) Plain { return p + v }

// Mul returns p * v.
func (p Plain) Mul(v Plain) Plain { return p * v }

// Neg returns -p.
func (p Plain) Neg() Plain { return -p }

// Float64 returns p as a float64.
func (p Plain) Float64() float64 { return float64(p) }

// IsZero reports whether p == 0.
func (p Plain) IsZero() bool { return p == 0 }

// FromFloat64 constructs a Plain from v, ignoring the receiver.
func (Plain) FromFloat64(v float64) Plain { return Plain(v) }

// IndexState tells whether the non-zero index list reflects the dense array.
//
//   - IndexConsistent — the tracked indices and count are trustworthy;
//     sparse O(nnz) code paths may rely on them.
//   - IndexNeedsRebuild — the dense array was modified behind the list's
//     back (direct writes); O(nnz) paths must fall back to full scans until
//     RebuildIndices restores consistency.
type IndexState uint8

const (
	// IndexConsistent marks a trustworthy index list.
	IndexConsistent IndexState = iota
	// IndexNeedsRebuild marks an invalidated index list requiring a rebuild.
	IndexNeedsRebuild
)

// String implements fmt.Stringer for diagnostics.
func (s IndexState) String() string {
	switch s {
	case IndexConsistent:
		return "consistent"
	case IndexNeedsRebuild:
		return "needs-rebuild"
	default:
		return "unknown"
	}
}

// PoolHandle is a weak forward link to another vector in an externally owned
// pool or free list. It is an index into that pool, never a pointer, so it
// cannot dangle when vectors move.
type PoolHandle int

// NoLink is the absent PoolHandle.
const NoLink PoolHandle = -1
