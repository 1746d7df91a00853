// Copyright (c) 2023 Colin McRae

// Package dyadicvec represents a vector of dyadic numbers and brings it to a
// common power-of-two denominator
package dyadicvec

import (
	"fmt"
	"math/big"

	"github.com/predrag3141/ratrecon/dyadic"
)

type Vector struct {
	values []*dyadic.Number
}

// NewFromDecimalStringArray creates a vector by parsing each entry of input
// with dyadic.NewFromDecimalString at the given precision
func NewFromDecimalStringArray(input []string, precision int64) (*Vector, error) {
	retVal := &Vector{values: make([]*dyadic.Number, len(input))}
	for index, value := range input {
		x, err := dyadic.NewFromDecimalString(value, precision)
		if err != nil {
			return nil, fmt.Errorf(
				"Vector.NewFromDecimalStringArray: could not parse entry %d, %q: %w",
				index, value, err,
			)
		}
		retVal.values[index] = x
	}
	return retVal, nil
}

// Len returns the number of entries in v
func (v *Vector) Len() int {
	return len(v.values)
}

// CommonDenominator returns numx and denx = 2^k with v[i] = numx[i] / denx
// for every i, where 2^k is the largest denominator of any entry. Entries
// parsed from non-integer decimals all have denominator 2^precision, so then
// denx = 2^precision, and numx[i] / denx stays the best approximation to
// entry i over denx. An empty or all-integer vector has denx = 1.
func (v *Vector) CommonDenominator() ([]*big.Int, *big.Int) {
	numx := make([]*big.Int, len(v.values))
	log2dens := make([]int64, len(v.values))
	k := int64(0)
	for i, x := range v.values {
		n, d := x.Fraction()
		numx[i] = n
		log2dens[i] = int64(d.BitLen() - 1)
		if log2dens[i] > k {
			k = log2dens[i]
		}
	}
	for i := range numx {
		numx[i].Lsh(numx[i], uint(k-log2dens[i]))
	}
	return numx, big.NewInt(0).Lsh(big.NewInt(1), uint(k))
}
