package euclid

import "golang.org/x/exp/constraints"

// Bezout is the result of the extended Euclidean algorithm on a pair (a, b).
// It carries the GCD together with two coefficient pairs: the primary pair
// satisfying Bézout's identity,
//
//	GCD == X0*a + Y0*b
//
// and the kernel pair satisfying
//
//	0 == X1*a + Y1*b
//
// Together they generate the full solution family of the identity,
// (X0 + k*X1, Y0 + k*Y1) for every integer k.
type Bezout[T constraints.Signed] struct {
	GCD    T
	X0, Y0 T
	X1, Y1 T
}

// ExtGCD returns the GCD of a and b along with Bézout coefficients for the
// pair, as described on the Bezout type. Bézout coefficients are not unique;
// ExtGCD deterministically returns the pair produced by the standard
// iterative recurrence, with fixed conventions for the degenerate cases:
//
//	ExtGCD(0, 0) == Bezout{0, 0, 0, 0, 0}
//	ExtGCD(a, 0) == Bezout{a, 1, 0, 0, 0}   (a > 0)
//	ExtGCD(0, b) == Bezout{b, 0, 1, 0, 0}   (b > 0)
//	ExtGCD(a, a) == Bezout{a, 1, 0, -1, 1}  (a > 0)
//
// Negating an argument negates its coefficient pair: ExtGCD(-a, b) has X0
// and X1 negated relative to ExtGCD(a, b), and likewise for b and the Y
// pair. Swapping the arguments exchanges the X and Y pairs, except in the
// equal-argument case, which is its own branch.
func ExtGCD[T constraints.Signed](a, b T) Bezout[T] {
	res := extGCDNoAbs(abs(a), abs(b))
	if a < 0 {
		res.X0, res.X1 = -res.X0, -res.X1
	}
	if b < 0 {
		res.Y0, res.Y1 = -res.Y0, -res.Y1
	}
	return res
}

// extGCDNoAbs dispatches the degenerate cases of ExtGCD before entering the
// coefficient loop; requires a >= 0 and b >= 0. The loop treats its first
// argument as dividend, so for a < b it runs on (b, a) and exchanges the
// coefficient pairs in the result.
func extGCDNoAbs[T constraints.Signed](a, b T) Bezout[T] {
	switch {
	case a == 0 && b == 0:
		return Bezout[T]{}
	case b == 0:
		return Bezout[T]{GCD: a, X0: 1}
	case a == 0:
		return Bezout[T]{GCD: b, Y0: 1}
	case a > b:
		return bezoutEuclid(a, b)
	case a < b:
		res := bezoutEuclid(b, a)
		res.X0, res.Y0 = res.Y0, res.X0
		res.X1, res.Y1 = res.Y1, res.X1
		return res
	default:
		return Bezout[T]{GCD: a, X0: 1, X1: -1, Y1: 1}
	}
}

// bezoutEuclid runs the Euclidean loop tracking both coefficient pairs;
// requires a > b > 0. Per Donald Knuth, TAOCP Vol 1 (3e), pp 13-14,
// Algorithm E, extended with the kernel pair: at every step (a0, b0) are
// the coefficients of the current a and (a1, b1) those of the current b,
// both with respect to the original arguments.
func bezoutEuclid[T constraints.Signed](a, b T) Bezout[T] {
	var a0, a1, b0, b1 T = 1, 0, 0, 1
	for b != 0 {
		q := a / b
		r := a - b*q
		a, b = b, r
		a0, a1 = a1, a0-q*a1
		b0, b1 = b1, b0-q*b1
	}
	return Bezout[T]{GCD: a, X0: a0, Y0: b0, X1: a1, Y1: b1}
}
