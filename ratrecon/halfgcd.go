// Copyright (c) 2023 Colin McRae

package ratrecon

import (
	"fmt"

	"github.com/predrag3141/ratrecon/ring"
)

// The Euclidean remainder sequence of n and d is
//
// r_0 = n, r_1 = d, r_(i+1) = r_(i-1) - q_i r_i where q_i = floor(r_(i-1) / r_i)
//
// Carrying the coefficient of n alongside each remainder,
//
// b_0 = 1, b_1 = 0, b_(i+1) = b_(i-1) - q_i b_i
//
// gives r_i = b_i n - a_i d for some integer a_i that is never needed during
// the search. Dividing by b_i d,
//
// |n/d - a_i/b_i| = r_i / (|b_i| d)
//
// so a_i/b_i is within 1/(2d) of n/d exactly when 2 r_i <= |b_i|. Call such a
// convergent well approximated. Since the r_i strictly decrease and the
// |b_i| grow, the first well approximated convergent has the smallest
// denominator of any. The search stops there, or as soon as |b_i| exceeds
// the denominator bound if that happens first.
//
// Suppose a/b and a'/b' are both within 1/(2d) of n/d. Then
//
// 1/(b b') <= |a/b - a'/b'| <= 1/(2d) + 1/(2d) = 1/d
//
// so b' >= d/b. When b B < d this gives b' > B: the first well approximated
// convergent is then the only candidate with denominator at most B.

// Convergent is a pair (Remainder, Denominator) = (r_i, b_i) from the remainder
// sequence of n and d. Denominator can be negative.
type Convergent[T any] struct {
	Remainder   T
	Denominator T

	// Found is whether the convergent is well approximated and within the
	// bound. When false, the convergent is the last one within the bound,
	// usable only speculatively.
	Found bool
}

// PartialHalfGCD returns the first convergent of n/d that is well approximated
// (2 r_i <= |b_i|) and within the bound (|b_i| <= bound). If the bound is
// exceeded first, the last convergent within the bound is returned with Found
// set to false.
//
// n must be non-negative and d and bound must be positive; otherwise an error
// is returned.
func PartialHalfGCD[T any](rg ring.Ring[T], n, d, bound T) (Convergent[T], error) {
	if rg.Sign(n) < 0 {
		return Convergent[T]{}, fmt.Errorf("PartialHalfGCD: n = %s: %w", rg.String(n), ErrNegativeNumerator)
	}
	if err := checkPreconditions(rg, "PartialHalfGCD", d, bound); err != nil {
		return Convergent[T]{}, err
	}
	return partialHalfGCD(rg, n, d, bound, nil), nil
}

// partialHalfGCD trusts its inputs. If visit is not nil, it is called with
// (r_i, b_i) for every convergent computed, in order.
func partialHalfGCD[T any](rg ring.Ring[T], n, d, bound T, visit func(r, b T)) Convergent[T] {
	two := rg.FromInt64(2)
	r0, b0 := rg.Copy(n), rg.One() // r0 = b0 n - 0 d
	r1, b1 := rg.Copy(d), rg.Zero() // r1 = b1 n - 1 d
	for {
		q, e := rg.QuoRem(r0, r1)
		b := rg.Sub(b0, rg.Mul(q, b1))
		r0, b0 = r1, b1
		r1, b1 = e, b
		if visit != nil {
			visit(r1, b1)
		}

		// r1 == 0 always ends the loop since |b1| >= 1 after the first step,
		// so there is never a division by zero.
		absB1 := rg.Abs(b1)
		if rg.Cmp(absB1, bound) > 0 {
			return Convergent[T]{Remainder: r0, Denominator: b0, Found: false}
		}
		if rg.Cmp(rg.Mul(two, r1), absB1) <= 0 {
			return Convergent[T]{Remainder: r1, Denominator: b1, Found: true}
		}
	}
}

// checkPreconditions returns an error if d or bound is not positive
func checkPreconditions[T any](rg ring.Ring[T], caller string, d, bound T) error {
	if rg.Sign(d) <= 0 {
		return fmt.Errorf("%s: d = %s: %w", caller, rg.String(d), ErrNonPositiveDenominator)
	}
	if rg.Sign(bound) <= 0 {
		return fmt.Errorf("%s: bound = %s: %w", caller, rg.String(bound), ErrNonPositiveBound)
	}
	return nil
}
