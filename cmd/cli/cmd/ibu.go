package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"beer-recipe/adapters/measurements"
	"beer-recipe/core/engine"
	"beer-recipe/core/output"
	"beer-recipe/core/scanner"
	"beer-recipe/internal/config"
	"beer-recipe/internal/logging"
)

// errFailedRecipes makes the process exit non-zero after the report has
// already been printed.
var errFailedRecipes = errors.New("some recipes could not be evaluated")

var (
	outputFormat     string
	showHops         bool
	measurementsFile string
	workers          int
)

// ibuCmd represents the ibu command
var ibuCmd = &cobra.Command{
	Use:   "ibu [path]",
	Short: "Compute bitterness for BeerXML recipes",
	Long: `Compute total and per-hop bitterness for every recipe found.

The path can be a BeerXML file or a directory of them.

Examples:
  brewcalc ibu .
  brewcalc ibu --hops stout.xml
  brewcalc ibu --format json ./recipes
  brewcalc ibu --measurements brewday.hcl ./recipes`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, args, output.ViewBitterness)
	},
}

func init() {
	addReportFlags(ibuCmd)
	ibuCmd.Flags().BoolVar(&showHops, "hops", false, "show per-hop contributions")
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "output format (table, json)")
	cmd.Flags().StringVarP(&measurementsFile, "measurements", "m", "", "HCL file of measured gravities")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "recipes evaluated concurrently (default: all CPUs)")
}

func runReport(cmd *cobra.Command, args []string, view output.View) error {
	ctx := cmd.Context()
	cfg := config.Get()

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format = outputFormat
	}
	hops := cfg.Output.ShowHops
	if cmd.Flags().Changed("hops") {
		hops = showHops
	}
	n := cfg.Engine.Workers
	if cmd.Flags().Changed("workers") {
		n = workers
	}
	mfile := cfg.Measurements.File
	if cmd.Flags().Changed("measurements") {
		mfile = measurementsFile
	}

	formatter, err := output.NewFormatterRegistry().GetFormatter(output.Format(format), output.Options{
		View:     view,
		ShowHops: hops,
	})
	if err != nil {
		return err
	}

	engineCfg := engine.Config{Workers: n, Version: version}
	if mfile != "" {
		set, err := measurements.Load(mfile)
		if err != nil {
			return fmt.Errorf("failed to load measurements: %w", err)
		}
		engineCfg.Measurements = set
		engineCfg.MeasurementsFile = mfile
		logging.Debug("Loaded measurements", zap.String("file", mfile), zap.Strings("recipes", set.Names()))
	}

	scan, err := scanPath(ctx, path)
	if err != nil {
		return err
	}

	report, err := engine.New(engineCfg).Evaluate(ctx, path, scan)
	if err != nil {
		return err
	}

	if err := formatter.Render(cmd.OutOrStdout(), report); err != nil {
		return err
	}
	if report.Failed() {
		return errFailedRecipes
	}
	return nil
}

func scanPath(ctx context.Context, path string) (*scanner.ScanResult, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("path does not exist: %s", path)
	}

	logging.Info("Scanning recipes", zap.String("path", path))
	result, err := scanner.GetDefault().DetectAndScan(ctx, &scanner.Input{Path: path})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	return result, nil
}
