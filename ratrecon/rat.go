// Copyright (c) 2023 Colin McRae

package ratrecon

import (
	"math/big"
)

// Rat returns result as a *big.Rat, or nil if result is Failed
func Rat(result Result[*big.Int]) *big.Rat {
	if result.Confidence == Failed || result.Denominator.Sign() == 0 {
		return nil
	}
	return big.NewRat(1, 1).SetFrac(result.Numerator, result.Denominator)
}

// Rats returns the entries of result as *big.Rats, or nil if result is Failed
func Rats(result VectorResult[*big.Int]) []*big.Rat {
	if result.Confidence == Failed || result.Denominator.Sign() == 0 {
		return nil
	}
	retVal := make([]*big.Rat, len(result.Numerators))
	for i, numerator := range result.Numerators {
		retVal[i] = big.NewRat(1, 1).SetFrac(numerator, result.Denominator)
	}
	return retVal
}
