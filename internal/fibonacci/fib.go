// Package fibonacci implements the fixed-width Fibonacci benchmark kernel.
//
// The kernel computes terms of the recurrence F(n) = F(n-1) + F(n-2) with
// seeds F(0)=0, F(1)=1 on signed 64-bit integers. True Fibonacci values
// outgrow int64 at n=93; beyond that the additions wrap per two's complement,
// which in Go is the defined behavior of fixed-width integer arithmetic. The
// wrapped values are deterministic and are exactly what the reference
// workload produces, so the kernel deliberately keeps them rather than
// switching to arbitrary precision.
package fibonacci

// DefaultTerm is the recurrence depth of the reference workload.
const DefaultTerm = 1000

// Term1000 is the value of Tail(DefaultTerm): the 1000th Fibonacci term
// reduced modulo 2^64 and interpreted as a signed two's-complement integer.
// The true F(1000) has 209 decimal digits; this is its wrapped residue,
// which happens to land in the positive int64 range.
const Term1000 int64 = 817770325994397771

// WrapBoundary is the smallest n for which the true Fibonacci value exceeds
// the int64 range, so Tail(n) differs from F(n) for all n >= WrapBoundary.
const WrapBoundary = 93

// Tail returns the nth term of the recurrence as a wrapping int64.
//
// The accumulator pair (a, b) holds (F(k), F(k+1)) after k steps and advances
// by (a, b) = (b, a+b). This is the loop form of the tail-recursive
// accumulator formulation; the two are step-for-step equivalent and the loop
// avoids n stack frames for no change in observable output.
//
// Parameters:
//   - n: The recurrence depth. Tail(0) = 0, Tail(1) = 1.
//
// Returns:
//   - int64: F(n) modulo 2^64 as a signed two's-complement value.
func Tail(n uint64) int64 {
	var a, b int64 = 0, 1
	for ; n > 0; n-- {
		a, b = b, a+b
	}
	return a
}

// tailRec is the literal tail-recursive formulation of the kernel. It exists
// so tests can pin the equivalence of the loop and the recursion; production
// callers use Tail.
func tailRec(n uint64, a, b int64) int64 {
	if n == 0 {
		return a
	}
	return tailRec(n-1, b, a+b)
}
