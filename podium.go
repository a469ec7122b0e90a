// Package podium integrates a new Olympic edition's data bundle into the
// historical dataset: athlete biographies, countries, games editions, and
// event results, plus a derived per-edition medal tally.
package podium

import (
	"context"

	"github.com/google/uuid"

	"github.com/podiumlabs/podium/pkg/logging"
	"github.com/podiumlabs/podium/pkg/merge"
	"github.com/podiumlabs/podium/pkg/reconcile"
	"github.com/podiumlabs/podium/pkg/tables"
	"github.com/podiumlabs/podium/pkg/tally"
)

// Result is the outcome of one integration run: the merged dataset, the
// recomputed medal tally, and the run report.
type Result struct {
	// RunID uniquely identifies the run in logs and reports.
	RunID string

	Dataset *tables.Dataset
	Tally   []tables.TallyRow
	Report  *merge.Report

	outputDir string
}

// Integrate loads the base tables and the incoming bundle, merges them, and
// recomputes the medal tally. The dataset is only returned on success; any
// integrity violation aborts before a single output row exists.
func Integrate(ctx context.Context, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)

	ds, err := loadDataset(cfg)
	if err != nil {
		return nil, err
	}
	bundle, err := loadBundle(cfg)
	if err != nil {
		return nil, err
	}

	var mergeOpts []merge.Option
	if cfg.aliasFile != "" {
		aliases, err := reconcile.LoadAliases(cfg.aliasFile)
		if err != nil {
			return nil, err
		}
		mergeOpts = append(mergeOpts, merge.WithAliases(aliases))
	}

	report, err := merge.New(mergeOpts...).Merge(ctx, ds, bundle)
	if err != nil {
		return nil, err
	}

	return &Result{
		RunID:     runID,
		Dataset:   ds,
		Tally:     tally.Compute(ds),
		Report:    report,
		outputDir: cfg.outputDir,
	}, nil
}
