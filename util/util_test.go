package util

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRoundedNumerator(t *testing.T) {
	for _, tc := range []struct {
		a, b, d, expected int64
	}{
		{2, 3, 20, 13},   // 13.33...
		{-3, 4, 20, -15}, // exact
		{1, 2, 3, 2},     // 1.5 rounds away from zero
		{-1, 2, 3, -2},   // -1.5 rounds away from zero
		{1, 3, 100, 33},  // 33.33...
		{2, 3, 100, 67},  // 66.66...
		{0, 1, 7, 0},
	} {
		actual, err := RoundedNumerator(big.NewInt(tc.a), big.NewInt(tc.b), big.NewInt(tc.d))
		assert.NoError(t, err)
		assert.Equal(t, tc.expected, actual.Int64(), "round(%d*%d/%d)", tc.a, tc.d, tc.b)
	}
	_, err := RoundedNumerator(big.NewInt(1), big.NewInt(0), big.NewInt(5))
	assert.Error(t, err)
}

func TestRoundedNumerators(t *testing.T) {
	actual, err := RoundedNumerators(NewBigInts(2, -3), NewBigInts(3, 4), big.NewInt(1000))
	assert.NoError(t, err)
	if diff := cmp.Diff(NewBigInts(667, -750), actual, cmp.Comparer(func(x, y *big.Int) bool { return x.Cmp(y) == 0 })); diff != "" {
		t.Errorf("numerators mismatch (-want +got):\n%s", diff)
	}
	_, err = RoundedNumerators(NewBigInts(2), NewBigInts(3, 4), big.NewInt(1000))
	assert.Error(t, err)
}

func TestGetCoprimePair(t *testing.T) {
	rand.Seed(8675309)
	for i := 0; i < 200; i++ {
		a, b := GetCoprimePair(50, 20)
		assert.True(t, -50 <= a && a <= 50)
		assert.True(t, 1 <= b && b <= 20)
		assert.Equal(t, int64(1), Gcd(a, b))
	}
}

func TestGcdLcm(t *testing.T) {
	assert.Equal(t, int64(6), Gcd(-12, 18))
	assert.Equal(t, int64(5), Gcd(0, 5))
	assert.Equal(t, int64(36), Lcm(-12, 18))
	assert.Equal(t, int64(0), Lcm(0, 18))
}
