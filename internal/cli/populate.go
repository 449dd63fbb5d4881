package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/store"
	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/workbook"
)

// RunPopulate simulates auditors completing every published workbook and
// saves the submitted results.
func RunPopulate(ctx context.Context, ds store.DataStore, log *zap.Logger, seed int64) error {
	workbooks, err := ds.ListWorkbooks(ctx)
	if err != nil {
		return err
	}
	if len(workbooks) == 0 {
		return fmt.Errorf("no workbooks in store; run `generate` first")
	}

	workbook.Populate(workbooks, seed)
	for i := range workbooks {
		if err := ds.SaveWorkbook(ctx, &workbooks[i]); err != nil {
			return err
		}
	}

	log.Info("workbooks populated", zap.Int("workbooks", len(workbooks)), zap.Int64("seed", seed))
	fmt.Printf("Populated and submitted %d workbooks.\n", len(workbooks))
	return nil
}

// RunProgress prints the completion snapshot for every workbook.
func RunProgress(ctx context.Context, ds store.DataStore) error {
	workbooks, err := ds.ListWorkbooks(ctx)
	if err != nil {
		return err
	}
	if len(workbooks) == 0 {
		fmt.Println("No workbooks in store.")
		return nil
	}

	snaps := workbook.Snapshot(workbooks)
	fmt.Printf("%-12s %-14s %-10s %8s %10s\n", "Auditor", "Status", "Rows", "Done", "Complete")
	for _, p := range snaps {
		fmt.Printf("%-12s %-14s %-10d %8d %9.1f%%\n",
			p.AuditorID, p.Status, p.TotalRows, p.CompletedRows, p.CompletionRate)
	}
	overall := workbook.Overall(snaps)
	fmt.Printf("%-12s %-14s %-10d %8d %9.1f%%\n",
		"ALL", "", overall.TotalRows, overall.CompletedRows, overall.CompletionRate)
	return nil
}
