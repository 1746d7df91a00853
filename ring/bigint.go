// Copyright (c) 2023 Colin McRae

package ring

import (
	"math/big"
)

// BigInt is the arbitrary-precision Ring over *big.Int
type BigInt struct{}

var _ Ring[*big.Int] = BigInt{}

func (BigInt) Zero() *big.Int { return big.NewInt(0) }

func (BigInt) One() *big.Int { return big.NewInt(1) }

func (BigInt) FromInt64(x int64) *big.Int { return big.NewInt(x) }

func (BigInt) Copy(x *big.Int) *big.Int { return big.NewInt(0).Set(x) }

func (BigInt) Add(x, y *big.Int) *big.Int { return big.NewInt(0).Add(x, y) }

func (BigInt) Sub(x, y *big.Int) *big.Int { return big.NewInt(0).Sub(x, y) }

func (BigInt) Mul(x, y *big.Int) *big.Int { return big.NewInt(0).Mul(x, y) }

// QuoRem implements truncated division, like Go's / and % operators on
// built-in integers. big.Int.QuoRem panics if y is 0.
func (BigInt) QuoRem(x, y *big.Int) (*big.Int, *big.Int) {
	r := big.NewInt(0)
	q, _ := big.NewInt(0).QuoRem(x, y, r)
	return q, r
}

func (BigInt) Quo(x, y *big.Int) *big.Int { return big.NewInt(0).Quo(x, y) }

func (BigInt) Abs(x *big.Int) *big.Int { return big.NewInt(0).Abs(x) }

func (BigInt) Neg(x *big.Int) *big.Int { return big.NewInt(0).Neg(x) }

func (BigInt) Cmp(x, y *big.Int) int { return x.Cmp(y) }

func (BigInt) Sign(x *big.Int) int { return x.Sign() }

// Lcm returns |x| |y| / gcd(x, y), or 0 if x or y is 0
func (BigInt) Lcm(x, y *big.Int) *big.Int {
	if x.Sign() == 0 || y.Sign() == 0 {
		return big.NewInt(0)
	}
	absX := big.NewInt(0).Abs(x)
	absY := big.NewInt(0).Abs(y)
	gcd := big.NewInt(0).GCD(nil, nil, absX, absY)

	// Divide before multiplying to keep the intermediate small
	retVal := big.NewInt(0).Quo(absX, gcd)
	return retVal.Mul(retVal, absY)
}

func (BigInt) String(x *big.Int) string { return x.String() }
