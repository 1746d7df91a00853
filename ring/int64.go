// Copyright (c) 2023 Colin McRae

package ring

import (
	"strconv"
)

// Int64 is the fixed-width Ring over int64. It does not detect overflow;
// callers must know that numerators, denominators and bounds are small
// enough that products like numx[i] * den fit in 63 bits.
type Int64 struct{}

var _ Ring[int64] = Int64{}

func (Int64) Zero() int64 { return 0 }

func (Int64) One() int64 { return 1 }

func (Int64) FromInt64(x int64) int64 { return x }

func (Int64) Copy(x int64) int64 { return x }

func (Int64) Add(x, y int64) int64 { return x + y }

func (Int64) Sub(x, y int64) int64 { return x - y }

func (Int64) Mul(x, y int64) int64 { return x * y }

func (Int64) QuoRem(x, y int64) (int64, int64) { return x / y, x % y }

func (Int64) Quo(x, y int64) int64 { return x / y }

func (Int64) Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func (Int64) Neg(x int64) int64 { return -x }

func (Int64) Cmp(x, y int64) int {
	if x < y {
		return -1
	}
	if x > y {
		return 1
	}
	return 0
}

func (Int64) Sign(x int64) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

func (r Int64) Lcm(x, y int64) int64 {
	if x == 0 || y == 0 {
		return 0
	}
	x, y = r.Abs(x), r.Abs(y)
	return (x / gcdInt64(x, y)) * y
}

func (Int64) String(x int64) string { return strconv.FormatInt(x, 10) }

// gcdInt64 returns gcd(x, y) for non-negative x and y, not both 0
func gcdInt64(x, y int64) int64 {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}
