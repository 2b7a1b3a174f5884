package compensated

import "math"

// Abs returns |v|.
func Abs(v Double) Double {
	if v.LtFloat(0) {
		return v.Neg()
	}
	return v
}

// Sqrt returns the square root of v in extended precision.
//
// The result is seeded with a plain float64 sqrt of the projection, then
// refined by a single Newton step carried out in compensated arithmetic:
//
//	res = (v/seed + seed) * 0.5
//
// One step suffices because the seed is already accurate to ~53 bits and
// Newton's method doubles the number of correct bits. The final halving is
// exact (0.5 is a power of two). A zero seed short-circuits to zero so the
// Newton step never divides by zero.
func Sqrt(v Double) Double {
	seed := math.Sqrt(v.hi + v.lo)
	if seed == 0 {
		return New(0)
	}
	res := v.DivFloat(seed)
	res = res.AddFloat(seed)
	res.hi *= 0.5
	res.lo *= 0.5
	return res
}

// Floor returns the largest integer not greater than x.
//
// Values strictly inside (-1, 1) are handled explicitly: the general path
// computes floor(x - floor(hi)) and that remainder is ill-behaved when the
// whole value fits below one.
func Floor(x Double) Double {
	if Abs(x).LtFloat(1) {
		if x.EqFloat(0) || x.GtFloat(0) {
			return New(0)
		}
		return New(-1)
	}

	fx := math.Floor(x.Float64())
	rem := math.Floor(x.SubFloat(fx).Float64())
	hi, lo := twoSum(fx, rem)
	return Double{hi: hi, lo: lo}
}

// Ceil returns the smallest integer not less than x.
// Mirrors Floor, including the explicit (-1, 1) branch.
func Ceil(x Double) Double {
	if Abs(x).LtFloat(1) {
		if x.EqFloat(0) || x.LtFloat(0) {
			return New(0)
		}
		return New(1)
	}

	cx := math.Ceil(x.Float64())
	rem := math.Ceil(x.SubFloat(cx).Float64())
	hi, lo := twoSum(cx, rem)
	return Double{hi: hi, lo: lo}
}

// Round rounds to the nearest integer as floor(x + 0.5): halfway cases
// resolve upward, so positive ties round away from zero and negative ties
// toward it (-0.5 rounds to 0, -2.5 to -2).
func Round(x Double) Double {
	return Floor(x.AddFloat(0.5))
}

// Ldexp returns v * 2^exp. Both components are scaled by the same power of
// two, which is exact, so no renormalization is needed.
func Ldexp(v Double, exp int) Double {
	return Double{hi: math.Ldexp(v.hi, exp), lo: math.Ldexp(v.lo, exp)}
}
