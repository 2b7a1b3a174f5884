package compensated

import "strconv"

// splitFactor is the Veltkamp splitting constant 2^27 + 1 for binary64:
// multiplying by it and subtracting isolates the upper 26 significand bits.
const splitFactor = float64(1<<27 + 1)

// Double is a compensated (double-double) real number: the unevaluated sum
// hi + lo of two float64 components, |lo| small relative to hi after
// renormalization.
//
// The zero value is 0. Double is a small value type — copy it freely.
//
// A non-renormalized Double is still mathematically valid (it is always
// hi + lo); only the minimality of |lo| is affected. All comparisons project
// to float64 first, so renormalization never changes observable ordering.
type Double struct {
	hi float64 // primary approximation
	lo float64 // rounding-error correction term
}

// twoSum computes x + y == a + b exactly, with x = fl(a+b) and y the exact
// rounding error (Knuth). Works for any operand magnitudes or order.
// Cost: 6 flops.
func twoSum(a, b float64) (x, y float64) {
	x = a + b
	z := x - a
	y = (a - (x - z)) + (b - z)
	return x, y
}

// split decomposes a into x + y exactly, where both parts fit in 26
// significand bits (Veltkamp). Prerequisite for exact multiplication.
// Cost: 4 flops.
func split(a float64) (x, y float64) {
	c := splitFactor * a
	x = c - (c - a)
	y = a - x
	return x, y
}

// twoProd computes x + y == a * b exactly, with x = fl(a*b) and y the exact
// rounding error (Dekker). Cost: 17 flops.
func twoProd(a, b float64) (x, y float64) {
	x = a * b
	a1, a2 := split(a)
	b1, b2 := split(b)
	y = a2*b2 - (((x - a1*b1) - a2*b1) - a1*b2)
	return x, y
}

// New returns the Double representing v exactly, with a zero error term.
func New(v float64) Double {
	return Double{hi: v}
}

// Float64 projects the value to plain double precision as hi + lo.
// The projection is lossy: the tracked error beyond 53 bits is discarded.
func (d Double) Float64() float64 {
	return d.hi + d.lo
}

// Components returns the raw (hi, lo) pair. Mostly useful for tests and for
// algorithms that need to inspect the error term directly.
func (d Double) Components() (hi, lo float64) {
	return d.hi, d.lo
}

// Renormalize re-folds the components through TwoSum so that |lo| is minimal
// relative to hi, returning the canonical representation of the same value.
func (d Double) Renormalize() Double {
	hi, lo := twoSum(d.hi, d.lo)
	return Double{hi: hi, lo: lo}
}

// Neg returns -d.
func (d Double) Neg() Double {
	return Double{hi: -d.hi, lo: -d.lo}
}

// AddFloat returns d + v. The float64 summand is folded in through TwoSum,
// keeping the total error within one rounding unit of the exact sum.
func (d Double) AddFloat(v float64) Double {
	hi, lo := twoSum(d.hi, v)
	lo += d.lo
	return Double{hi: hi, lo: lo}
}

// Add returns d + v.
func (d Double) Add(v Double) Double {
	res := d.AddFloat(v.hi)
	res.lo += v.lo
	return res
}

// SubFloat returns d - v.
func (d Double) SubFloat(v float64) Double {
	hi, lo := twoSum(d.hi, -v)
	lo += d.lo
	return Double{hi: hi, lo: lo}
}

// Sub returns d - v.
func (d Double) Sub(v Double) Double {
	res := d.SubFloat(v.hi)
	res.lo -= v.lo
	return res
}

// MulFloat returns d * v. The high product is computed exactly via
// TwoProduct; the cross term lo*v is folded back in through TwoSum.
func (d Double) MulFloat(v float64) Double {
	hi, lo := twoProd(d.hi, v)
	res := Double{hi: hi, lo: lo}
	return res.AddFloat(d.lo * v)
}

// Mul returns d * v. The hi*v.hi product is exact; both cross terms are
// folded in (the d.lo*v.hi term via MulFloat, the d.hi*v.lo term explicitly).
// The lo*lo term is below the representable error and is dropped.
func (d Double) Mul(v Double) Double {
	res := d.MulFloat(v.hi)
	return res.AddFloat(d.hi * v.lo)
}

// DivFloat returns d / v.
//
// The quotient is seeded by the componentwise division (hi/v, lo/v), then
// corrected once: the residual c = seed*v - d is itself divided by v and
// subtracted, which removes the first-order error of the seed.
func (d Double) DivFloat(v float64) Double {
	seed := Double{hi: d.hi / v, lo: d.lo / v}
	c := seed.MulFloat(v).Sub(d)
	c.hi /= v
	c.lo /= v
	return seed.Sub(c)
}

// Div returns d / v, using the same residual-correction scheme as DivFloat
// but dividing by the float64 projection of the divisor.
func (d Double) Div(v Double) Double {
	vf := v.hi + v.lo
	seed := Double{hi: d.hi / vf, lo: d.lo / vf}
	c := seed.Mul(v).Sub(d)
	c.hi /= vf
	c.lo /= vf
	return seed.Sub(c)
}

// Cmp compares d and v through their float64 projections:
// -1 if d < v, 0 if equal, +1 if d > v.
func (d Double) Cmp(v Double) int {
	return d.CmpFloat(v.Float64())
}

// CmpFloat compares d against a plain float64 the same way.
func (d Double) CmpFloat(v float64) int {
	f := d.Float64()
	switch {
	case f < v:
		return -1
	case f > v:
		return 1
	default:
		return 0
	}
}

// Eq reports d == v under projection. Two values that differ only in the
// hi/lo split of the same real compare equal.
func (d Double) Eq(v Double) bool { return d.Float64() == v.Float64() }

// EqFloat reports d == v under projection.
func (d Double) EqFloat(v float64) bool { return d.Float64() == v }

// Ne reports d != v under projection.
func (d Double) Ne(v Double) bool { return d.Float64() != v.Float64() }

// NeFloat reports d != v under projection.
func (d Double) NeFloat(v float64) bool { return d.Float64() != v }

// Lt reports d < v under projection.
func (d Double) Lt(v Double) bool { return d.Float64() < v.Float64() }

// LtFloat reports d < v under projection.
func (d Double) LtFloat(v float64) bool { return d.Float64() < v }

// Gt reports d > v under projection.
func (d Double) Gt(v Double) bool { return d.Float64() > v.Float64() }

// GtFloat reports d > v under projection.
func (d Double) GtFloat(v float64) bool { return d.Float64() > v }

// Le reports d <= v under projection.
func (d Double) Le(v Double) bool { return d.Float64() <= v.Float64() }

// LeFloat reports d <= v under projection.
func (d Double) LeFloat(v float64) bool { return d.Float64() <= v }

// Ge reports d >= v under projection.
func (d Double) Ge(v Double) bool { return d.Float64() >= v.Float64() }

// GeFloat reports d >= v under projection.
func (d Double) GeFloat(v float64) bool { return d.Float64() >= v }

// IsZero reports whether the value projects to exactly 0.
func (d Double) IsZero() bool { return d.Float64() == 0 }

// Sign returns -1, 0 or +1 according to the sign of the projection.
func (d Double) Sign() int { return d.CmpFloat(0) }

// FromFloat64 constructs a Double from a plain float64, ignoring the
// receiver. It exists so Double satisfies generic capability constraints
// (such as sparsevec.Scalar) that need a constructor expressible as a method.
func (Double) FromFloat64(v float64) Double { return New(v) }

// String formats the float64 projection, matching %g.
func (d Double) String() string {
	return strconv.FormatFloat(d.Float64(), 'g', -1, 64)
}
