package util

import (
	"fmt"
	"math/big"
)

// RoundedNumerator returns n = round(a d / b), the numerator of the best
// approximation n/d to a/b, rounding halves away from zero. b must be
// positive.
func RoundedNumerator(a, b, d *big.Int) (*big.Int, error) {
	if b.Sign() <= 0 {
		return nil, fmt.Errorf("RoundedNumerator: b = %s is not positive", b.String())
	}

	// For m = |a d|, round(m / b) = floor((2m + b) / 2b)
	m := big.NewInt(0).Mul(a, d)
	sign := m.Sign()
	m.Abs(m)
	twoB := big.NewInt(0).Lsh(b, 1)
	retVal := big.NewInt(0).Lsh(m, 1)
	retVal.Add(retVal, b)
	retVal.Quo(retVal, twoB)
	if sign < 0 {
		retVal.Neg(retVal)
	}
	return retVal, nil
}

// RoundedNumerators applies RoundedNumerator to every a[i]/b[i]
func RoundedNumerators(a, b []*big.Int, d *big.Int) ([]*big.Int, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("RoundedNumerators: %d numerators but %d denominators", len(a), len(b))
	}
	retVal := make([]*big.Int, len(a))
	for i := range a {
		n, err := RoundedNumerator(a[i], b[i], d)
		if err != nil {
			return nil, fmt.Errorf("RoundedNumerators: entry %d: %q", i, err.Error())
		}
		retVal[i] = n
	}
	return retVal, nil
}
