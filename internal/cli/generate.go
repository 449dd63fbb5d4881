package cli

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/dictionary/seed"
	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/sampling"
	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/store"
	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/workbook"
)

// RunGenerate samples the stored population, builds one workbook per
// auditor, publishes them, and saves them.
func RunGenerate(ctx context.Context, ds store.DataStore, log *zap.Logger, auditorCount int) error {
	entities, err := ds.ListEntities(ctx)
	if err != nil {
		return err
	}
	if len(entities) == 0 {
		return fmt.Errorf("no entities in store; run `seed` first")
	}

	plan := sampling.BuildPlan(entities)
	log.Info("sampling plan built",
		zap.Int("population", plan.PopulationSize),
		zap.Int("sampled", len(plan.Selections)))

	attrs := seed.GenerateCDDAttributes()
	roster := workbook.DefaultRoster(auditorCount)
	workbooks := workbook.Generate(plan.Entities(), attrs, roster)

	now := time.Now()
	totalRows := 0
	for i := range workbooks {
		workbook.Publish(&workbooks[i], now)
		if err := ds.SaveWorkbook(ctx, &workbooks[i]); err != nil {
			return err
		}
		totalRows += len(workbooks[i].Rows)
	}

	fmt.Printf("Sampled %d of %d entities.\n", len(plan.Selections), plan.PopulationSize)
	for tier, n := range plan.TierCounts() {
		fmt.Printf("  %-8s %d\n", tier, n)
	}
	fmt.Printf("Published %d workbooks with %d test rows.\n", len(workbooks), totalRows)
	return nil
}

// RunSample prints the sampling plan without generating workbooks.
func RunSample(ctx context.Context, ds store.DataStore) error {
	entities, err := ds.ListEntities(ctx)
	if err != nil {
		return err
	}
	plan := sampling.BuildPlan(entities)

	fmt.Printf("Population %d, sampled %d:\n", plan.PopulationSize, len(plan.Selections))
	for _, sel := range plan.Selections {
		fmt.Printf("  %-8s %-32s %-4s %.1f\n",
			sel.Tier, sel.Entity.Name, sel.Entity.Jurisdiction, sel.Entity.InherentRiskScore)
	}
	return nil
}
