package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunBatch validates many companies concurrently, bounded by maxConcurrent.
// Output order mirrors input order; companies are independent, so no
// ordering is guaranteed between their executions.
func (e *Engine) RunBatch(ctx context.Context, inputs []CompanyInput, maxConcurrent int) ([]CompanyResult, error) {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	results := make([]CompanyResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = e.Run(input)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	zap.L().Info("pipeline: batch complete",
		zap.Int("companies", len(inputs)),
		zap.Int("max_concurrent", maxConcurrent),
	)

	return results, nil
}
