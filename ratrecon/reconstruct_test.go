// Copyright (c) 2023 Colin McRae

package ratrecon

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/predrag3141/ratrecon/ring"
	"github.com/predrag3141/ratrecon/util"
)

func checkResult[T any](
	t *testing.T, rg ring.Ring[T], actual Result[T], numerator, denominator int64, confidence Confidence,
) {
	assert.Equal(t, confidence, actual.Confidence)
	assert.Equal(t, 0, rg.Cmp(rg.FromInt64(numerator), actual.Numerator),
		"numerator %s, expected %d", rg.String(actual.Numerator), numerator)
	assert.Equal(t, 0, rg.Cmp(rg.FromInt64(denominator), actual.Denominator),
		"denominator %s, expected %d", rg.String(actual.Denominator), denominator)
}

func TestReconstruct_Guaranteed(t *testing.T) {
	// 13/20 approximates 2/3 and 20 >= 3*5
	actual, err := Reconstruct[int64](ring.Int64{}, 13, 20, 5)
	assert.NoError(t, err)
	checkResult[int64](t, ring.Int64{}, actual, 2, 3, Guaranteed)

	bigActual, err := Reconstruct[*big.Int](ring.BigInt{}, big.NewInt(13), big.NewInt(20), big.NewInt(5))
	assert.NoError(t, err)
	checkResult[*big.Int](t, ring.BigInt{}, bigActual, 2, 3, Guaranteed)

	// -13/20 approximates -2/3
	actual, err = Reconstruct[int64](ring.Int64{}, -13, 20, 5)
	assert.NoError(t, err)
	checkResult[int64](t, ring.Int64{}, actual, -2, 3, Guaranteed)
}

func TestReconstruct_BoundBelowTrueDenominator(t *testing.T) {
	// The true denominator of 2/3 exceeds the bound, 2. The last convergent
	// with denominator at most 2 is 1/2.
	actual, err := Reconstruct[int64](ring.Int64{}, 13, 20, 2)
	assert.NoError(t, err)
	checkResult[int64](t, ring.Int64{}, actual, 1, 2, Plausible)
}

func TestReconstruct_MarginNotMet(t *testing.T) {
	// b*B = 3*12 >= 20, so 2/3 is found but not guaranteed
	actual, err := Reconstruct[int64](ring.Int64{}, 13, 20, 12)
	assert.NoError(t, err)
	checkResult[int64](t, ring.Int64{}, actual, 2, 3, Plausible)

	// b*B = 15 = d: the margin requires b*B < d
	actual, err = Reconstruct[int64](ring.Int64{}, 10, 15, 5)
	assert.NoError(t, err)
	checkResult[int64](t, ring.Int64{}, actual, 2, 3, Plausible)
}

func TestReconstruct_Zero(t *testing.T) {
	actual, err := Reconstruct[int64](ring.Int64{}, 0, 20, 5)
	assert.NoError(t, err)
	checkResult[int64](t, ring.Int64{}, actual, 0, 1, Guaranteed)
}

func TestReconstruct_Integer(t *testing.T) {
	// 140/20 = 7 exactly
	actual, err := Reconstruct[int64](ring.Int64{}, 140, 20, 5)
	assert.NoError(t, err)
	checkResult[int64](t, ring.Int64{}, actual, 7, 1, Guaranteed)

	// -7 is the last convergent of -139/20 within bound 1, but -6.95 is
	// not within 1/40 of it
	actual, err = Reconstruct[int64](ring.Int64{}, -139, 20, 1)
	assert.NoError(t, err)
	checkResult[int64](t, ring.Int64{}, actual, -7, 1, Plausible)
}

func TestReconstruct_Preconditions(t *testing.T) {
	actual, err := Reconstruct[int64](ring.Int64{}, 13, 0, 5)
	assert.True(t, errors.Is(err, ErrNonPositiveDenominator))
	assert.Equal(t, Failed, actual.Confidence)
	assert.Equal(t, int64(0), actual.Denominator)

	actual, err = Reconstruct[int64](ring.Int64{}, 13, -20, 5)
	assert.True(t, errors.Is(err, ErrNonPositiveDenominator))
	assert.Equal(t, Failed, actual.Confidence)

	actual, err = Reconstruct[int64](ring.Int64{}, 13, 20, 0)
	assert.True(t, errors.Is(err, ErrNonPositiveBound))
	assert.Equal(t, Failed, actual.Confidence)
}

// TestReconstruct_RoundTrip checks that a/b is recovered, and guaranteed,
// from the best approximation n/d whenever b <= B and d > bB.
func TestReconstruct_RoundTrip(t *testing.T) {
	const numTests = 2000
	const maxNumerator = 1 << 40
	const maxBound = 1 << 20
	rand.Seed(271828)
	rg := ring.BigInt{}
	rc := New[*big.Int](rg)
	for testNbr := 0; testNbr < numTests; testNbr++ {
		bound := 1 + rand.Int63n(maxBound)
		a, b := util.GetCoprimePair(maxNumerator, bound)
		d := big.NewInt(0).Mul(big.NewInt(b), big.NewInt(bound))
		d.Add(d, big.NewInt(1+rand.Int63n(1<<30)))
		n, err := util.RoundedNumerator(big.NewInt(a), big.NewInt(b), d)
		require.NoError(t, err)

		actual, err := rc.Reconstruct(n, d, big.NewInt(bound))
		require.NoError(t, err)
		assert.Equal(t, Guaranteed, actual.Confidence, "test %d: %d/%d from %s/%s", testNbr, a, b, n.String(), d.String())
		assert.Equal(t, a, actual.Numerator.Int64(), "test %d", testNbr)
		assert.Equal(t, b, actual.Denominator.Int64(), "test %d", testNbr)
	}
}

// TestReconstruct_RoundTripInt64 repeats TestReconstruct_RoundTrip over the
// int64 ring with inputs small enough not to overflow.
func TestReconstruct_RoundTripInt64(t *testing.T) {
	const numTests = 2000
	const maxNumerator = 1000
	const maxBound = 1000
	rand.Seed(161803)
	rg := ring.Int64{}
	for testNbr := 0; testNbr < numTests; testNbr++ {
		bound := 1 + rand.Int63n(maxBound)
		a, b := util.GetCoprimePair(maxNumerator, bound)
		d := b*bound + 1 + rand.Int63n(1<<20)
		n, err := util.RoundedNumerator(big.NewInt(a), big.NewInt(b), big.NewInt(d))
		require.NoError(t, err)

		actual, err := Reconstruct[int64](rg, n.Int64(), d, bound)
		require.NoError(t, err)
		checkResult[int64](t, rg, actual, a, b, Guaranteed)
	}
}

// TestReconstruct_BoundTooSmall checks that a/b is never returned when its
// denominator exceeds the bound.
func TestReconstruct_BoundTooSmall(t *testing.T) {
	const numTests = 1000
	const maxNumerator = 1 << 20
	const maxDenominator = 1 << 20
	rand.Seed(1729)
	rg := ring.BigInt{}
	for testNbr := 0; testNbr < numTests; testNbr++ {
		a, b := util.GetCoprimePair(maxNumerator, maxDenominator)
		if b == 1 {
			continue
		}
		bound := 1 + rand.Int63n(b-1)
		d := big.NewInt(0).Mul(big.NewInt(b), big.NewInt(b))
		d.Add(d, big.NewInt(rand.Int63n(1<<30)))
		n, err := util.RoundedNumerator(big.NewInt(a), big.NewInt(b), d)
		require.NoError(t, err)

		actual, err := Reconstruct[*big.Int](rg, n, d, big.NewInt(bound))
		require.NoError(t, err)
		if actual.Confidence == Failed {
			continue
		}
		assert.LessOrEqual(t, actual.Denominator.Int64(), bound)
		assert.Less(t, int64(0), actual.Denominator.Int64())
		assert.NotEqual(t, b, actual.Denominator.Int64())
	}
}

func TestReconstruct_AgreesAcrossRings(t *testing.T) {
	const numTests = 1000
	rand.Seed(4242)
	for testNbr := 0; testNbr < numTests; testNbr++ {
		n := rand.Int63n(2000000) - 1000000
		d := 1 + rand.Int63n(1000000)
		bound := 1 + rand.Int63n(2000)
		i64, err := Reconstruct[int64](ring.Int64{}, n, d, bound)
		require.NoError(t, err)
		bi, err := Reconstruct[*big.Int](ring.BigInt{}, big.NewInt(n), big.NewInt(d), big.NewInt(bound))
		require.NoError(t, err)
		assert.Equal(t, i64.Confidence, bi.Confidence)
		assert.Equal(t, i64.Numerator, bi.Numerator.Int64())
		assert.Equal(t, i64.Denominator, bi.Denominator.Int64())
	}
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "plausible", Plausible.String())
	assert.Equal(t, "guaranteed", Guaranteed.String())
	assert.Equal(t, "Confidence(7)", Confidence(7).String())
	assert.Equal(t, Plausible, Min(Guaranteed, Plausible))
	assert.Equal(t, Failed, Min(Failed, Guaranteed))
	assert.Equal(t, 0, int(Failed))
	assert.Equal(t, 1, int(Plausible))
	assert.Equal(t, 2, int(Guaranteed))
}

func TestRat(t *testing.T) {
	actual, err := Reconstruct[*big.Int](ring.BigInt{}, big.NewInt(-13), big.NewInt(20), big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, 0, big.NewRat(-2, 3).Cmp(Rat(actual)))
	assert.Nil(t, Rat(Result[*big.Int]{Numerator: big.NewInt(0), Denominator: big.NewInt(0), Confidence: Failed}))
}
