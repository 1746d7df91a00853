// Copyright (c) 2023 Colin McRae

// Package ratrecon reconstructs exact rationals from approximations n/d whose
// denominator d is known, given a bound B on the true denominator. A single
// rational comes from Reconstruct, and a vector of rationals over one common
// denominator from ReconstructVector.
package ratrecon

import (
	"go.uber.org/zap"

	"github.com/predrag3141/ratrecon/ring"
)

const defaultConcurrency = 4

// Result is a reconstructed rational Numerator/Denominator. Denominator is
// positive unless Confidence is Failed, in which case both are 0.
type Result[T any] struct {
	Numerator   T
	Denominator T
	Confidence  Confidence
}

// Reconstructor holds the ring and options used by reconstruction. It holds
// no per-call state, so one Reconstructor can serve concurrent callers.
type Reconstructor[T any] struct {
	ring        ring.Ring[T]
	logger      *zap.Logger
	concurrency int
}

// Option configures a Reconstructor
type Option func(*options)

type options struct {
	logger      *zap.Logger
	concurrency int
}

// WithLogger sets the logger that receives debug entries about scalar
// fallbacks, denominator growth and failures
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConcurrency sets how many problems ReconstructBatch works on at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.concurrency = n
		}
	}
}

// New returns a Reconstructor over rg
func New[T any](rg ring.Ring[T], opts ...Option) *Reconstructor[T] {
	o := options{logger: zap.NewNop(), concurrency: defaultConcurrency}
	for _, opt := range opts {
		opt(&o)
	}
	return &Reconstructor[T]{ring: rg, logger: o.logger, concurrency: o.concurrency}
}

// Reconstruct is a convenience for New(rg).Reconstruct(n, d, bound)
func Reconstruct[T any](rg ring.Ring[T], n, d, bound T) (Result[T], error) {
	return New(rg).Reconstruct(n, d, bound)
}

// Reconstruct returns the continued fraction convergent a/b of n/d with
// |a/b - n/d| <= 1/(2d) and 0 < b <= bound, classified as
//
// - Guaranteed if such a convergent exists and b*bound < d, in which case a/b
// is the only rational with denominator at most bound within 1/(2d) of n/d.
//
// - Plausible if such a convergent exists but b*bound >= d, or if none exists
// and a/b is the last convergent with b <= bound.
//
// - Failed if no convergent has a positive denominator within the bound.
//
// n can have either sign; a has the sign of n. d and bound must be positive,
// or an error is returned along with a Failed result.
func (r *Reconstructor[T]) Reconstruct(n, d, bound T) (Result[T], error) {
	if err := checkPreconditions(r.ring, "Reconstruct", d, bound); err != nil {
		return r.failedResult(), err
	}
	return r.reconstruct(n, d, bound), nil
}

// reconstruct trusts d and bound to be positive
func (r *Reconstructor[T]) reconstruct(n, d, bound T) Result[T] {
	rg := r.ring
	absN := rg.Abs(n)
	c := partialHalfGCD(rg, absN, d, bound, nil)

	// c.Remainder = c.Denominator |n| - a' d for the a' that makes a'/c.Denominator
	// a convergent, so a = -a' = (c.Remainder - c.Denominator |n|) / d exactly.
	a := rg.Quo(rg.Sub(c.Remainder, rg.Mul(c.Denominator, absN)), d)
	a = rg.Abs(a)
	b := rg.Abs(c.Denominator)
	if rg.Sign(b) == 0 {
		return r.failedResult()
	}
	if rg.Sign(n) < 0 {
		a = rg.Neg(a)
	}
	confidence := Plausible
	if c.Found && rg.Cmp(rg.Mul(b, bound), d) < 0 {
		confidence = Guaranteed
	}
	return Result[T]{Numerator: a, Denominator: b, Confidence: confidence}
}

func (r *Reconstructor[T]) failedResult() Result[T] {
	return Result[T]{Numerator: r.ring.Zero(), Denominator: r.ring.Zero(), Confidence: Failed}
}
