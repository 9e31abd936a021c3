package euclid

import "golang.org/x/exp/constraints"

// GCDStep is one state of the plain Euclidean algorithm.
type GCDStep[T constraints.Signed] struct {
	A, B T
}

// GCDIter enumerates every intermediate state of the plain Euclidean
// algorithm, including the sign-normalization and ordering steps that GCD
// performs silently. Each iterator is single-use: once drained, a fresh one
// must be constructed to iterate again. Iterators are independent values and
// share no state.
type GCDIter[T constraints.Signed] struct {
	cur  GCDStep[T]
	done bool
}

// NewGCDIter returns an iterator over the states of the plain Euclidean
// algorithm seeded with the raw pair (a, b). The seed is yielded as-is; if
// either component is negative, the magnitude step appears explicitly in
// the sequence before the division steps begin.
func NewGCDIter[T constraints.Signed](a, b T) *GCDIter[T] {
	return &GCDIter[T]{cur: GCDStep[T]{A: a, B: b}}
}

// Next yields the current state and advances the algorithm. It reports
// ok == false once the sequence is exhausted, which happens after the state
// with B == 0 has been yielded; the A of that final state is the GCD.
func (it *GCDIter[T]) Next() (step GCDStep[T], ok bool) {
	if it.done {
		return GCDStep[T]{}, false
	}
	step = it.cur
	switch a, b := step.A, step.B; {
	case a < 0 || b < 0:
		it.cur = GCDStep[T]{A: abs(a), B: abs(b)}
	case b == 0:
		it.done = true
	case a < b:
		it.cur = GCDStep[T]{A: b, B: a}
	default:
		it.cur = GCDStep[T]{A: b, B: a % b}
	}
	return step, true
}

// ExtGCDStep is one state of the extended Euclidean algorithm on the
// normalized pair (a, b). At every step,
//
//	A == A0*a + B0*b
//	B == A1*a + B1*b
//
// and Q is the quotient that produced this state from its predecessor
// (0 for the seed state).
type ExtGCDStep[T constraints.Signed] struct {
	A, B   T
	A0, A1 T
	B0, B1 T
	Q      T
}

// ExtGCDIter enumerates every intermediate state of the extended Euclidean
// algorithm. Single-use, like GCDIter.
type ExtGCDIter[T constraints.Signed] struct {
	cur  ExtGCDStep[T]
	done bool
}

// NewExtGCDIter returns an iterator over the states of the extended
// Euclidean algorithm. Unlike NewGCDIter, signs and order are normalized at
// construction, so the first yielded state already has A >= B >= 0 with
// coefficients (1, 0, 0, 1) and Q == 0.
func NewExtGCDIter[T constraints.Signed](a, b T) *ExtGCDIter[T] {
	a, b = abs(a), abs(b)
	if a < b {
		a, b = b, a
	}
	return &ExtGCDIter[T]{cur: ExtGCDStep[T]{A: a, B: b, A0: 1, B1: 1}}
}

// Next yields the current state and advances the algorithm. It reports
// ok == false once the sequence is exhausted, which happens after the state
// with B == 0 has been yielded; the A of that final state is the GCD.
func (it *ExtGCDIter[T]) Next() (step ExtGCDStep[T], ok bool) {
	if it.done {
		return ExtGCDStep[T]{}, false
	}
	step = it.cur
	if step.B == 0 {
		it.done = true
		return step, true
	}
	q := step.A / step.B
	it.cur = ExtGCDStep[T]{
		A:  step.B,
		B:  step.A - step.B*q,
		A0: step.A1,
		A1: step.A0 - q*step.A1,
		B0: step.B1,
		B1: step.B0 - q*step.B1,
		Q:  q,
	}
	return step, true
}
