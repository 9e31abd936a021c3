// Package euclid provides integer number-theory primitives: divisibility
// predicates, GCD, LCM, and the extended Euclidean algorithm with full
// Bézout coefficients, plus step-by-step iterator forms of both algorithms.
// See the GCD, ExtGCD, NewGCDIter, and NewExtGCDIter functions for details.
//
// All functions are generic over the fixed-width signed integer types.
// The minimum value of a signed type has no representable magnitude, so
// unless stated otherwise on the function, arguments must be greater than
// the minimum value of T.
package euclid

import "golang.org/x/exp/constraints"

// Divides reports whether a divides b, that is, whether there exists an
// integer k such that b == k*a.
//
// By convention, zero divides everything: Divides(0, b) is true for every b.
// This is deliberately broader than the usual mathematical convention, under
// which only 0 divides 0.
//
// Divides is total over all of T, including the minimum value.
func Divides[T constraints.Signed](a, b T) bool {
	if a != 0 {
		return b%a == 0
	}
	return true
}

// IsDivisibleBy reports whether a is divisible by b, that is, whether b
// divides a. See Divides for the zero convention.
func IsDivisibleBy[T constraints.Signed](a, b T) bool {
	return Divides(b, a)
}

// IsCommonDivisor reports whether d divides both a and b.
func IsCommonDivisor[T constraints.Signed](d, a, b T) bool {
	return Divides(d, a) && Divides(d, b)
}

// IsCommonMultiple reports whether d is divisible by both a and b.
func IsCommonMultiple[T constraints.Signed](d, a, b T) bool {
	return Divides(a, d) && Divides(b, d)
}

// GCD returns the greatest common divisor of a and b: the largest element of
// the set of common divisors if at least one argument is nonzero, and 0 for
// GCD(0, 0). The result is never negative and does not depend on the signs
// or order of the arguments.
func GCD[T constraints.Signed](a, b T) T {
	return gcdNoAbs(abs(a), abs(b))
}

// LCM returns the least common multiple of a and b: the smallest element of
// the set of positive common multiples if both arguments are nonzero, and 0
// if either is 0. The result is never negative.
//
// The intermediate product cannot overflow, but the result itself must fit
// in T.
func LCM[T constraints.Signed](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	a, b = abs(a), abs(b)
	return a / gcdNoAbs(a, b) * b
}

// gcdNoAbs dispatches the degenerate cases of GCD before entering the
// division loop; requires a >= 0 and b >= 0.
func gcdNoAbs[T constraints.Signed](a, b T) T {
	switch {
	case a == 0 && b == 0:
		return 0
	case b == 0:
		return a
	case a == 0:
		return b
	case a > b:
		return gcdEuclid(a, b)
	case a < b:
		return gcdEuclid(b, a)
	default:
		return a
	}
}

// gcdEuclid runs the division-based Euclidean loop; requires a > b > 0.
func gcdEuclid[T constraints.Signed](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the magnitude of x. The minimum value of T wraps to itself.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
