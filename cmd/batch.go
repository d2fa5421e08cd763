package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/execmatch/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Validate many companies concurrently",
	Long: `Reads every *.json company input file in a directory, validates
each company (attribution, enrichment, resolution), and prints a per-company
summary. Companies run concurrently, bounded by
batch.max_concurrent_companies.

Example:
  execmatch batch --dir inputs/ --format json`,
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.String("dir", "", "directory of company input JSON files (required)")
	f.String("format", "text", "output format: text or json")
	f.Int("concurrency", 0, "max concurrent companies (overrides config)")
	_ = batchCmd.MarkFlagRequired("dir")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	dir, _ := f.GetString("dir")
	format, _ := f.GetString("format")
	concurrency, _ := f.GetInt("concurrency")
	if concurrency == 0 {
		concurrency = cfg.Batch.MaxConcurrentCompanies
	}

	inputs, err := loadBatchInputs(dir)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return eris.Errorf("batch: no input files in %s", dir)
	}

	engine := pipeline.New(cfg.Matcher, cfg.Attributor)
	results, err := engine.RunBatch(cmd.Context(), inputs, concurrency)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return eris.Wrap(err, "batch: encode results")
		}
	case "text":
		for _, r := range results {
			fmt.Printf("%s: discovery %.1f%%, attribution %.1f%%, false positives %d, missing %d\n",
				r.CompanyURL,
				r.Resolution.DiscoveryRate,
				r.Resolution.AttributionRate,
				len(r.Resolution.FalsePositives),
				len(r.Resolution.Missing),
			)
		}
	default:
		return eris.Errorf("batch: unknown format %q", format)
	}

	zap.L().Info("batch: finished", zap.Int("companies", len(results)))
	return nil
}

// loadBatchInputs reads every *.json file in dir as a CompanyInput, in
// lexical filename order for reproducible output.
func loadBatchInputs(dir string) ([]pipeline.CompanyInput, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, eris.Wrap(err, "batch: glob inputs")
	}
	sort.Strings(paths)

	var inputs []pipeline.CompanyInput
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, eris.Wrapf(err, "batch: read %s", path)
		}
		var input pipeline.CompanyInput
		if err := json.Unmarshal(data, &input); err != nil {
			return nil, eris.Wrapf(err, "batch: parse %s", path)
		}
		if input.CompanyURL == "" {
			input.CompanyURL = filepath.Base(path)
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}
