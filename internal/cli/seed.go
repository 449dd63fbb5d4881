// Package cli implements the audit workflow commands behind the root
// command: seeding, gap analysis, sampling, workbook generation and
// population, progress, consolidation, and export.
package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/store"
)

// RunSeed loads the demo entity population into the store.
func RunSeed(ctx context.Context, ds store.DataStore, log *zap.Logger) error {
	entities := store.DemoEntities()
	if err := ds.SeedEntities(ctx, entities); err != nil {
		return fmt.Errorf("seed entities: %w", err)
	}
	log.Info("seeded demo population", zap.Int("entities", len(entities)))
	fmt.Printf("Seeded %d entities.\n", len(entities))
	return nil
}

// RunReset drops all stored data.
func RunReset(ctx context.Context, ds store.DataStore, log *zap.Logger) error {
	if err := ds.Reset(ctx); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	log.Info("store reset")
	fmt.Println("Store reset.")
	return nil
}
