package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/cli"
	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/config"
	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/logger"
	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// appDeps carries what every command needs, built once in PersistentPreRunE.
type appDeps struct {
	cfg *config.Config
	log *zap.Logger
	ds  store.DataStore
}

func newRootCmd() *cobra.Command {
	deps := &appDeps{}
	var configPath string

	root := &cobra.Command{
		Use:   "cddaudit",
		Short: "CDD audit workbook generation, tracking, and consolidation",
		Long: `cddaudit drives a CDD/KYC audit run end to end: seed a demo
population, check dictionary coverage, sample by risk tier, generate and
publish per-auditor workbooks, track completion, and consolidate every
submitted workbook into dimensional metrics and per-customer findings.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.App.LogLevel)
			if err != nil {
				return err
			}
			ds, err := store.New(store.Config{
				Backend: store.Backend(cfg.Store.Backend),
				DSN:     cfg.Store.DSN,
			})
			if err != nil {
				return fmt.Errorf("initialize data store: %w", err)
			}
			deps.cfg, deps.log, deps.ds = cfg, log, ds
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if deps.ds != nil {
				return deps.ds.Close()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config (optional)")

	root.AddCommand(
		&cobra.Command{
			Use:   "seed",
			Short: "Load the demo entity population",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return cli.RunSeed(cmd.Context(), deps.ds, deps.log)
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Drop all stored entities and workbooks",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return cli.RunReset(cmd.Context(), deps.ds, deps.log)
			},
		},
		&cobra.Command{
			Use:   "gaps",
			Short: "Report dictionary coverage gaps for the stored population",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return cli.RunGaps(cmd.Context(), deps.ds)
			},
		},
		&cobra.Command{
			Use:   "sample",
			Short: "Print the risk-based sampling plan",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return cli.RunSample(cmd.Context(), deps.ds)
			},
		},
		newGenerateCmd(deps),
		newPopulateCmd(deps),
		&cobra.Command{
			Use:   "progress",
			Short: "Show per-auditor completion",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return cli.RunProgress(cmd.Context(), deps.ds)
			},
		},
		&cobra.Command{
			Use:   "consolidate",
			Short: "Consolidate all workbooks and print the breakdowns",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return cli.RunConsolidate(cmd.Context(), deps.ds, deps.log)
			},
		},
		&cobra.Command{
			Use:   "customers",
			Short: "Print the customer-centric findings view",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return cli.RunCustomers(cmd.Context(), deps.ds, deps.log)
			},
		},
		newExportCmd(deps),
	)
	return root
}

func newGenerateCmd(deps *appDeps) *cobra.Command {
	var auditors int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample the population and publish per-auditor workbooks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := auditors
			if n == 0 {
				n = deps.cfg.Audit.AuditorCount
			}
			return cli.RunGenerate(cmd.Context(), deps.ds, deps.log, n)
		},
	}
	cmd.Flags().IntVar(&auditors, "auditors", 0, "auditor roster size (default from config)")
	return cmd
}

func newPopulateCmd(deps *appDeps) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "populate",
		Short: "Simulate auditors completing every workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := seed
			if s == 0 {
				s = deps.cfg.Audit.RandomSeed
			}
			return cli.RunPopulate(cmd.Context(), deps.ds, deps.log, s)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for simulated results (default from config)")
	return cmd
}

func newExportCmd(deps *appDeps) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Consolidate and write every sheet as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cli.RunExport(cmd.Context(), deps.ds, deps.log, outDir)
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "export", "output directory")
	return cmd
}
