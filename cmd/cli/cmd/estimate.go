// Package cmd - estimate command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cabinet-cost/core/engine"
	"cabinet-cost/core/output"
	"cabinet-cost/core/types"
	"cabinet-cost/internal/config"
	"cabinet-cost/internal/logging"
)

var (
	outputFormat string
	outFile      string
	showDetails  bool
	configsDir   string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate [project-dir]",
	Short: "Estimate and price a job",
	Long: `Estimate a cabinetry job from its project directory.

The project directory holds boq.json (bill of quantities), products.json
(product list), optional parts.json (part rows for the edge-based time
model) and optional overrides.json (per-job overrides). Rates, policy,
rules and catalogs come from the configuration directory.

Examples:
  cabinet-cost estimate .
  cabinet-cost estimate ./jobs/smith-kitchen
  cabinet-cost estimate --format json --out quote.json ./jobs/smith-kitchen
  cabinet-cost estimate --configs ./configs ./jobs/smith-kitchen`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	estimateCmd.Flags().StringVarP(&outFile, "out", "o", "", "write output to file instead of stdout")
	estimateCmd.Flags().BoolVarP(&showDetails, "details", "d", true, "show per-product rows in the breakdown")
	estimateCmd.Flags().StringVar(&configsDir, "configs", "", "directory holding rates, policy and catalog documents")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("project directory does not exist: %s", dir)
	}

	appCfg := config.Get()
	cfgDir := configsDir
	if cfgDir == "" {
		cfgDir = appCfg.ConfigDir
	}

	logging.Info("Starting job estimation")

	jobCfg, err := config.LoadJobConfig(cfgDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	var boq types.BillOfQuantities
	if err := loadJSON(filepath.Join(dir, "boq.json"), &boq); err != nil {
		return fmt.Errorf("failed to load bill of quantities: %w", err)
	}

	var products types.ProductList
	if err := loadJSON(filepath.Join(dir, "products.json"), &products); err != nil {
		return fmt.Errorf("failed to load product list: %w", err)
	}

	parts, err := loadParts(filepath.Join(dir, "parts.json"))
	if err != nil {
		return fmt.Errorf("failed to load part rows: %w", err)
	}

	overrides := config.LoadOverrides(filepath.Join(dir, "overrides.json"))

	result := engine.Estimate(boq, products, parts, jobCfg, overrides)

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(appCfg.Output.DefaultFormat)
	}

	w := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return output.Render(w, result, format, showDetails && appCfg.Output.ShowDetails)
}

func loadJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// loadParts reads the optional part rows; a missing file means the job has
// none and the linear-meter edgeband time model applies.
func loadParts(path string) (*types.PartsList, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	var parts types.PartsList
	if err := loadJSON(path, &parts); err != nil {
		return nil, err
	}
	return &parts, nil
}
