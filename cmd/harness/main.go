// Command harness runs the full audit demo in memory: seed, gap check,
// sample, generate, populate, consolidate, export. Useful for a quick
// end-to-end smoke of the whole pipeline without a database.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/cli"
	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/logger"
	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "harness failed:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	log, err := logger.New("info")
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // stdout sync is best effort

	ds := store.NewMemoryStore()
	defer ds.Close()

	steps := []struct {
		name string
		fn   func() error
	}{
		{"seed", func() error { return cli.RunSeed(ctx, ds, log) }},
		{"gaps", func() error { return cli.RunGaps(ctx, ds) }},
		{"sample", func() error { return cli.RunSample(ctx, ds) }},
		{"generate", func() error { return cli.RunGenerate(ctx, ds, log, 3) }},
		{"populate", func() error { return cli.RunPopulate(ctx, ds, log, 42) }},
		{"progress", func() error { return cli.RunProgress(ctx, ds) }},
		{"consolidate", func() error { return cli.RunConsolidate(ctx, ds, log) }},
		{"customers", func() error { return cli.RunCustomers(ctx, ds, log) }},
		{"export", func() error { return cli.RunExport(ctx, ds, log, "export") }},
	}

	for _, step := range steps {
		fmt.Printf("\n=== %s ===\n", step.name)
		if err := step.fn(); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	return nil
}
