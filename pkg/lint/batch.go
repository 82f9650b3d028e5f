package lint

import (
	"context"
	"runtime"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/guidelint/pkg/syntax"
)

// UnitResult holds the diagnostics of one unit.
type UnitResult struct {
	Unit        *syntax.Unit
	Diagnostics []Diagnostic
}

// AnalyzeUnits analyzes units in parallel, each against its own Semantics,
// with at most jobs units in flight (GOMAXPROCS when jobs <= 0). Results are
// returned in input order. If ctx is cancelled, AnalyzeUnits returns the
// context error and no results.
func (a *Analyzer) AnalyzeUnits(ctx context.Context, units []*syntax.Unit, jobs int) ([]UnitResult, error) {
	ctx, span := a.tracer.Start(ctx, "lint.AnalyzeUnits", trace.WithAttributes(
		attribute.Int("units", len(units)),
	))
	defer span.End()

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]UnitResult, len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, unit := range units {
		g.Go(func() error {
			diags, err := a.Analyze(gctx, unit, nil)
			if err != nil {
				return err
			}
			results[i] = UnitResult{Unit: unit, Diagnostics: diags}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return results, nil
}
