// Package dyadic holds numbers of the form m 2^s, the format in which
// approximations to rationals are typically produced, and converts them to
// exact fractions n / 2^k suitable for rational reconstruction.
package dyadic

import (
	"fmt"
	"math/big"
	"strings"
)

// Number is a dyadic rational
type Number struct {
	numerator big.Int
	log2scale int64 // value is numerator * 2^log2scale
}

// NewFromInt64 returns a Number equal to input
func NewFromInt64(input int64) *Number {
	return &Number{
		numerator: *big.NewInt(input),
		log2scale: 0,
	}
}

// NewFromDecimalString parses input, an optionally signed decimal with or
// without a decimal point, into a Number. Integers are exact. Non-integers
// are rounded to the nearest multiple of 2^-precision, halves away from zero,
// so that n / 2^precision is the best approximation to input over 2^precision.
func NewFromDecimalString(input string, precision int64) (*Number, error) {
	if len(input) == 0 {
		return nil, fmt.Errorf("NewFromDecimalString: input must have length > 0")
	}
	if precision <= 0 {
		return nil, fmt.Errorf("NewFromDecimalString: precision = %d <= 0", precision)
	}
	sign := 1
	if strings.Index(input, "-") == 0 {
		sign = -1
		input = strings.Replace(input, "-", "", 1)
	}
	if strings.Count(input, "-") > 0 {
		return nil, fmt.Errorf("NewFromDecimalString: input has extraneous dashes")
	}
	input = strings.TrimLeft(input, "0")
	if len(input) == 0 {
		return NewFromInt64(0), nil
	}

	// input has no sign or leading 0s
	dp := strings.Index(input, ".")
	if dp == -1 {
		retVal := NewFromInt64(0)
		if _, ok := retVal.numerator.SetString(input, 10); !ok {
			return nil, fmt.Errorf("NewFromDecimalString: could not parse %q as an integer", input)
		}
		if sign == -1 {
			retVal.numerator.Neg(&retVal.numerator)
		}
		return retVal, nil
	}

	// Example: input = ".0023340" has dp == 0 and value 2334 / 10^6.
	// Trailing 0s and the decimal point are removed, leaving "002334" with
	// exponentBase10 = -(6 - 0) = -6. Then leading 0s are removed.
	mantissa := strings.TrimRight(input, "0")
	mantissa = strings.Replace(mantissa, ".", "", 1)
	exponentBase10 := -(len(mantissa) - dp)
	mantissa = strings.TrimLeft(mantissa, "0")
	if len(mantissa) == 0 {
		return NewFromInt64(0), nil
	}
	m, ok := big.NewInt(0).SetString(mantissa, 10)
	if !ok {
		return nil, fmt.Errorf("NewFromDecimalString: could not parse mantissa %q as an integer", mantissa)
	}

	// With t = 10^-exponentBase10, the numerator is round(m 2^precision / t)
	// = floor((2 m 2^precision + t) / 2t)
	t := big.NewInt(0).Exp(big.NewInt(10), big.NewInt(int64(-exponentBase10)), nil)
	retVal := &Number{log2scale: -precision}
	retVal.numerator.Lsh(m, uint(precision+1))
	retVal.numerator.Add(&retVal.numerator, t)
	retVal.numerator.Quo(&retVal.numerator, t.Lsh(t, 1))
	if sign == -1 {
		retVal.numerator.Neg(&retVal.numerator)
	}
	return retVal, nil
}

// Fraction returns n and d = 2^k, k >= 0, with x = n / d. d is 1 when x has
// a non-negative scale. The fraction is not reduced.
func (x *Number) Fraction() (*big.Int, *big.Int) {
	if x.log2scale >= 0 {
		return big.NewInt(0).Lsh(&x.numerator, uint(x.log2scale)), big.NewInt(1)
	}
	return big.NewInt(0).Set(&x.numerator), big.NewInt(0).Lsh(big.NewInt(1), uint(-x.log2scale))
}
