package util

import (
	"math/big"
	"math/rand"
)

// GetCoprimePair returns a pseudo-random a in [-maxNumerator, maxNumerator] and
// b in [1, maxDenominator] with gcd(a, b) = 1. maxNumerator must be
// non-negative and maxDenominator positive.
func GetCoprimePair(maxNumerator, maxDenominator int64) (int64, int64) {
	for {
		a := rand.Int63n(2*maxNumerator+1) - maxNumerator
		b := 1 + rand.Int63n(maxDenominator)
		if Gcd(a, b) == 1 {
			return a, b
		}
	}
}

// GetRandomBigInt returns a pseudo-random integer in [0, 2^numBits)
func GetRandomBigInt(numBits int) *big.Int {
	retVal := big.NewInt(0)
	for i := 0; i < numBits; i++ {
		if rand.Intn(2) == 1 {
			retVal.SetBit(retVal, i, 1)
		}
	}
	return retVal
}

// Gcd returns the non-negative greatest common divisor of x and y
func Gcd(x, y int64) int64 {
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// Lcm returns the non-negative least common multiple of x and y
func Lcm(x, y int64) int64 {
	if x == 0 || y == 0 {
		return 0
	}
	g := Gcd(x, y)
	retVal := (x / g) * y
	if retVal < 0 {
		return -retVal
	}
	return retVal
}

// NewBigInts converts input to []*big.Int
func NewBigInts(input ...int64) []*big.Int {
	retVal := make([]*big.Int, len(input))
	for i, x := range input {
		retVal[i] = big.NewInt(x)
	}
	return retVal
}
