package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/audit"
	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/export"
	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/store"
)

// RunConsolidate aggregates every stored workbook and prints the
// headline metrics plus each dimensional breakdown.
func RunConsolidate(ctx context.Context, ds store.DataStore, log *zap.Logger) error {
	res, err := consolidateStored(ctx, ds, log)
	if err != nil {
		return err
	}
	printConsolidation(res)
	return nil
}

// RunCustomers aggregates and prints the customer-centric findings view.
func RunCustomers(ctx context.Context, ds store.DataStore, log *zap.Logger) error {
	res, err := consolidateStored(ctx, ds, log)
	if err != nil {
		return err
	}

	fmt.Printf("%d consolidated customers:\n", len(res.Customers))
	for _, c := range res.Customers {
		fmt.Printf("\n%s (%s, %s, tier %s): %s\n",
			c.EntityName, c.Jurisdiction, c.PartyType, c.RiskTier, c.OverallResult)
		fmt.Printf("  tests %d: pass %d, pass w/obs %d, fail %d, question %d, n/a %d\n",
			c.TotalTests, c.PassCount, c.PassWithObservationCount, c.FailCount, c.QuestionCount, c.NACount)
		for _, f := range c.Failures {
			fmt.Printf("  FAIL [%s] %s: %s (%s)\n", f.FailureType, f.AttributeName, f.Comment, f.AuditorName)
		}
		for _, q := range c.QuestionsToLOB {
			fmt.Printf("  QTL  %s: %s (%s)\n", q.AttributeName, q.Comment, q.AuditorName)
		}
		for _, o := range c.Observations {
			fmt.Printf("  OBS  %s: %s (%s)\n", o.AttributeName, o.Comment, o.AuditorName)
		}
	}
	return nil
}

// RunExport consolidates and writes every sheet as CSV into outDir.
func RunExport(ctx context.Context, ds store.DataStore, log *zap.Logger, outDir string) error {
	res, err := consolidateStored(ctx, ds, log)
	if err != nil {
		return err
	}

	sheets := export.BuildSheets(res)
	if err := export.WriteCSVDir(outDir, sheets); err != nil {
		return err
	}
	log.Info("consolidation exported", zap.String("dir", outDir), zap.Int("sheets", len(sheets)))
	fmt.Printf("Wrote %d sheets to %s.\n", len(sheets), outDir)
	return nil
}

func consolidateStored(ctx context.Context, ds store.DataStore, log *zap.Logger) (*audit.ConsolidationResult, error) {
	workbooks, err := ds.ListWorkbooks(ctx)
	if err != nil {
		return nil, err
	}
	res := audit.Consolidate(workbooks)
	log.Info("consolidation complete",
		zap.String("id", res.ConsolidationID),
		zap.Int("workbooks", res.Metrics.WorkbookCount),
		zap.Int("rows", res.TotalRows),
		zap.Int("exceptions", len(res.Exceptions)))
	return res, nil
}

func printConsolidation(res *audit.ConsolidationResult) {
	m := res.Metrics
	fmt.Printf("Consolidation %s\n", res.ConsolidationID)
	fmt.Printf("Workbooks %d, rows %d, entities %d, attributes %d\n",
		m.WorkbookCount, m.Counts.TotalTests, m.UniqueEntityCount, m.UniqueAttributeCount)
	fmt.Printf("Pass rate %.1f%%, fail rate %.1f%%, exceptions %d\n\n",
		m.PassRate, m.FailRate, len(res.Exceptions))

	fmt.Println("By category (worst fail rate first):")
	for _, c := range res.ByCategory {
		fmt.Printf("  %-16s tests %4d  fail %5.1f%%  pass %5.1f%%\n",
			c.Category, c.Counts.TotalTests, c.FailRate, c.PassRate)
	}

	fmt.Println("\nBy jurisdiction:")
	for _, j := range res.ByJurisdiction {
		fmt.Printf("  %-16s tests %4d  fail %5.1f%%\n", j.Jurisdiction, j.Counts.TotalTests, j.FailRate)
	}

	fmt.Println("\nBy auditor:")
	for _, a := range res.ByAuditor {
		fmt.Printf("  %-16s tests %4d  complete %5.1f%%  fail %5.1f%%\n",
			a.AuditorID, a.Counts.TotalTests, a.CompletionRate, a.FailRate)
	}

	fmt.Println("\nBy risk tier:")
	for _, rt := range res.ByRiskTier {
		fmt.Printf("  %-16s tests %4d  fail %5.1f%%\n", rt.Tier, rt.Counts.TotalTests, rt.FailRate)
	}
}
