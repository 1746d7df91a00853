// Copyright (c) 2023 Colin McRae

package ratrecon

import (
	"go.uber.org/zap"

	"github.com/predrag3141/ratrecon/ring"
)

// VectorResult is a reconstructed vector Numerators[i]/Denominator. When
// Confidence is Failed, Numerators is nil and Denominator is 0.
type VectorResult[T any] struct {
	Numerators  []T
	Denominator T
	Confidence  Confidence
}

// growthEvent records that the common denominator was multiplied by
// multiplier while reconstructing entry boundary. Entries before boundary
// still need that multiplier, and those of every later event.
type growthEvent[T any] struct {
	boundary   int
	multiplier T
}

// vectorState is the state of one call to ReconstructVector
type vectorState[T any] struct {
	den        T
	num        []T
	growth     []growthEvent[T]
	confidence Confidence
}

// ReconstructVector is a convenience for New(rg).ReconstructVector(numx, denx, bound)
func ReconstructVector[T any](rg ring.Ring[T], numx []T, denx, bound T) (VectorResult[T], error) {
	return New(rg).ReconstructVector(numx, denx, bound)
}

// ReconstructVector reconstructs numx[i]/denx, for every i, as num[i]/den with
// one common denominator den <= bound.
//
// Entries are handled in order. An entry is accepted with the current den if
// the nearest num[i] leaves |numx[i]/denx - num[i]/den| <= 1/(2 denx).
// Otherwise the entry is reconstructed on its own as a/b, den grows to
// lcm(den, b), and the growth is recorded so that entries already accepted
// can be rescaled in a single pass at the end.
//
// The returned confidence is the minimum over the entries that needed their
// own reconstruction, or Guaranteed if none did. The result is Failed if any
// such reconstruction failed or den outgrew bound.
//
// denx and bound must be positive, or an error is returned along with a
// Failed result.
func (r *Reconstructor[T]) ReconstructVector(numx []T, denx, bound T) (VectorResult[T], error) {
	if err := checkPreconditions(r.ring, "ReconstructVector", denx, bound); err != nil {
		return r.failedVectorResult(), err
	}
	return r.reconstructVector(numx, denx, bound), nil
}

func (r *Reconstructor[T]) reconstructVector(numx []T, denx, bound T) VectorResult[T] {
	rg := r.ring
	two := rg.FromInt64(2)
	half, _ := rg.QuoRem(denx, two) // for balancing remainders
	s := vectorState[T]{
		den:        rg.One(),
		num:        make([]T, len(numx)),
		growth:     []growthEvent[T]{{boundary: 0, multiplier: rg.One()}},
		confidence: Guaranteed,
	}
	for i := range numx {
		absNx := rg.Abs(numx[i])

		// absNx den = num[i] denx + e, so |absNx/denx - num[i]/den| = |e| / (den denx).
		// That is at most 1/(2 denx) when 2|e| <= den.
		q, e := balancedQuoRem(rg, absNx, s.den, denx, half)
		if rg.Cmp(rg.Mul(two, rg.Abs(e)), s.den) <= 0 {
			s.num[i] = q
		} else {
			scalar := r.reconstruct(absNx, denx, bound)
			r.logger.Debug(
				"scalar reconstruction",
				zap.Int("index", i),
				zap.String("numerator", rg.String(scalar.Numerator)),
				zap.String("denominator", rg.String(scalar.Denominator)),
				zap.Stringer("confidence", scalar.Confidence),
			)
			if scalar.Confidence == Failed {
				r.logger.Debug("vector reconstruction failed", zap.Int("index", i), zap.String("reason", "no denominator within bound"))
				return r.failedVectorResult()
			}
			newDen := rg.Lcm(s.den, scalar.Denominator)
			if rg.Cmp(newDen, bound) > 0 {
				r.logger.Debug(
					"vector reconstruction failed",
					zap.Int("index", i),
					zap.String("reason", "common denominator exceeds bound"),
					zap.String("denominator", rg.String(newDen)),
					zap.String("bound", rg.String(bound)),
				)
				return r.failedVectorResult()
			}
			s.num[i] = rg.Mul(scalar.Numerator, rg.Quo(newDen, scalar.Denominator))
			multiplier := rg.Quo(newDen, s.den)
			s.growth = append(s.growth, growthEvent[T]{boundary: i, multiplier: multiplier})
			r.logger.Debug(
				"common denominator grew",
				zap.Int("index", i),
				zap.String("multiplier", rg.String(multiplier)),
				zap.String("denominator", rg.String(newDen)),
			)
			s.den = newDen
			s.confidence = Min(s.confidence, scalar.Confidence)
		}
		if rg.Sign(numx[i]) < 0 {
			s.num[i] = rg.Neg(s.num[i])
		}
	}
	s.rescale(rg)
	return VectorResult[T]{Numerators: s.num, Denominator: s.den, Confidence: s.confidence}
}

// rescale brings every numerator over the final denominator. Walking the
// growth events from the latest back, the entries between the previous event
// and this one were computed before this event and all later ones, so they
// are multiplied by the product of those multipliers.
func (s *vectorState[T]) rescale(rg ring.Ring[T]) {
	product := rg.One()
	for k := len(s.growth) - 1; k > 0; k-- {
		product = rg.Mul(product, s.growth[k].multiplier)
		for j := s.growth[k-1].boundary; j < s.growth[k].boundary; j++ {
			s.num[j] = rg.Mul(s.num[j], product)
		}
	}
}

// balancedQuoRem returns q and e with nx den = q denx + e and half - denx <= e < half,
// where half = floor(denx / 2). nx, den and denx must be non-negative. A remainder of
// exactly half rounds q up.
func balancedQuoRem[T any](rg ring.Ring[T], nx, den, denx, half T) (T, T) {
	q, e := rg.QuoRem(rg.Mul(nx, den), denx)
	if rg.Cmp(e, half) >= 0 {
		q = rg.Add(q, rg.One())
		e = rg.Sub(e, denx)
	}
	return q, e
}

func (r *Reconstructor[T]) failedVectorResult() VectorResult[T] {
	return VectorResult[T]{Numerators: nil, Denominator: r.ring.Zero(), Confidence: Failed}
}
