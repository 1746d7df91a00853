// Copyright (c) 2023 Colin McRae

package ratrecon

import (
	"errors"
	"fmt"
)

// Confidence classifies a reconstruction. The numeric values are ordered, so
// the confidence of a combined result is the minimum of its parts.
type Confidence int

const (
	// Failed means no denominator within the bound was found, or a vector's
	// common denominator outgrew the bound. No part of the result is usable.
	Failed Confidence = iota

	// Plausible means a result was found but the guarantee margin b*B < d
	// was not met, or the convergent search ran out of bound before reaching
	// a well approximated convergent. The caller must verify the result.
	Plausible

	// Guaranteed means the result is the unique rational with denominator at
	// most B within 1/(2d) of the approximation.
	Guaranteed
)

var (
	// ErrNonPositiveDenominator is returned when the approximation's
	// denominator is not positive
	ErrNonPositiveDenominator = errors.New("ratrecon: approximation denominator must be positive")

	// ErrNonPositiveBound is returned when the denominator bound is not positive
	ErrNonPositiveBound = errors.New("ratrecon: denominator bound must be positive")

	// ErrNegativeNumerator is returned by PartialHalfGCD for a negative numerator
	ErrNegativeNumerator = errors.New("ratrecon: numerator must be non-negative")
)

func (c Confidence) String() string {
	switch c {
	case Failed:
		return "failed"
	case Plausible:
		return "plausible"
	case Guaranteed:
		return "guaranteed"
	default:
		return fmt.Sprintf("Confidence(%d)", int(c))
	}
}

// Min returns the lower of a and b
func Min(a, b Confidence) Confidence {
	if a < b {
		return a
	}
	return b
}
