package hierarchy

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dominance/matrix"
)

// Input names one matrix of a batch.
type Input struct {
	Name    string
	Weights *matrix.Weights
}

// AnalyzeBatch analyzes every input in parallel, at most Config.Concurrency
// at a time. Reports keep input order. The first failing input cancels the
// rest and its error is returned; a cancelled ctx returns ctx.Err().
func (a *Analyzer) AnalyzeBatch(ctx context.Context, inputs []Input) ([]*Report, error) {
	reports := make([]*Report, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	limit := a.cfg.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := a.Analyze(in.Name, in.Weights)
			if err != nil {
				return fmt.Errorf("hierarchy.AnalyzeBatch: input %d: %w", i, err)
			}
			// each goroutine owns reports[i]
			reports[i] = rep

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.log.Debug().Int("inputs", len(inputs)).Int("limit", limit).Msg("hierarchy: batch done")

	return reports, nil
}
