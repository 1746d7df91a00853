// Copyright (c) 2023 Colin McRae

// Package ring defines the integer arithmetic that rational reconstruction
// consumes, and two backends for it: arbitrary-precision integers and
// fixed-width int64.
//
// Every operation returns a fresh value and leaves its inputs untouched, so a
// result never aliases an argument.
package ring

// Ring is the capability an integer type must provide to be used by the
// reconstruction algorithms.
type Ring[T any] interface {
	// Zero returns 0
	Zero() T

	// One returns 1
	One() T

	// FromInt64 returns x as a ring element
	FromInt64(x int64) T

	// Copy returns a deep copy of x
	Copy(x T) T

	Add(x, y T) T
	Sub(x, y T) T
	Mul(x, y T) T

	// QuoRem returns the truncated quotient and remainder of x by y, so that
	// x = q*y + r and |r| < |y|, with r having the sign of x. y must not be 0.
	QuoRem(x, y T) (T, T)

	// Quo returns x/y when y divides x exactly. The result is unspecified
	// otherwise.
	Quo(x, y T) T

	Abs(x T) T
	Neg(x T) T

	// Cmp returns -1, 0 or +1 according to whether x < y, x == y or x > y
	Cmp(x, y T) int

	// Sign returns -1, 0 or +1 according to whether x < 0, x == 0 or x > 0
	Sign(x T) int

	// Lcm returns the non-negative least common multiple of x and y, which
	// is 0 if either is 0.
	Lcm(x, y T) T

	// String formats x in base 10
	String(x T) string
}
