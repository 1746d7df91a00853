package ratrecon

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// VectorProblem is the input to one vector reconstruction
type VectorProblem[T any] struct {
	Numerators  []T
	Denominator T
	Bound       T
}

// ReconstructBatch runs ReconstructVector on every problem, at most the
// configured number at once, and returns the results in the order of
// problems. A Failed result is not an error. An error is returned if any
// problem violates the preconditions of ReconstructVector, or if ctx is done
// before every problem has been reconstructed.
func (r *Reconstructor[T]) ReconstructBatch(
	ctx context.Context, problems []VectorProblem[T],
) ([]VectorResult[T], error) {
	results := make([]VectorResult[T], len(problems))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i := range problems {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("ReconstructBatch: %w", err)
			}
			p := problems[i]
			result, err := r.ReconstructVector(p.Numerators, p.Denominator, p.Bound)
			if err != nil {
				return fmt.Errorf("ReconstructBatch: problem %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ReconstructBatch: %w", err)
	}
	r.logger.Debug("batch reconstructed", zap.Int("problems", len(problems)))
	return results, nil
}
