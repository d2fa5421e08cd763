package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/execmatch/internal/pipeline"
	"github.com/sells-group/execmatch/internal/refdata"
	"github.com/sells-group/execmatch/internal/report"
	"github.com/sells-group/execmatch/internal/store"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve extracted candidates against verified references",
	Long: `Compares system-extracted executive candidates against the
manually-verified reference spreadsheet for one company, using the greedy
exclusive assignment, and prints the match report.

Examples:
  # Text report against a reference sheet
  execmatch resolve --candidates out/acme.json --references refs/acme.xlsx

  # JSON output, persisted to the run history
  execmatch resolve --candidates out/acme.json --references refs/acme.xlsx \
      --company https://acme.com --format json --save`,
	RunE: runResolve,
}

func init() {
	f := resolveCmd.Flags()
	f.String("candidates", "", "path to extracted candidates JSON (required)")
	f.String("references", "", "path to verified reference XLSX (required)")
	f.String("sheet", "", "reference sheet name (default: first sheet)")
	f.String("company", "", "company URL recorded with the run")
	f.String("format", "text", "output format: text or json")
	f.Bool("save", false, "persist the run to the local run history")
	_ = resolveCmd.MarkFlagRequired("candidates")
	_ = resolveCmd.MarkFlagRequired("references")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	f := cmd.Flags()

	candidatesPath, _ := f.GetString("candidates")
	referencesPath, _ := f.GetString("references")
	sheet, _ := f.GetString("sheet")
	company, _ := f.GetString("company")
	format, _ := f.GetString("format")
	save, _ := f.GetBool("save")

	candidates, err := refdata.LoadCandidatesJSON(candidatesPath)
	if err != nil {
		return err
	}
	references, err := refdata.LoadReferencesXLSX(referencesPath, refdata.XLSXOptions{SheetName: sheet})
	if err != nil {
		return err
	}

	engine := pipeline.New(cfg.Matcher, cfg.Attributor)
	result := engine.ResolveEntities(candidates, references)

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return eris.Wrap(err, "resolve: encode result")
		}
	case "text":
		fmt.Print(report.Render(result))
	default:
		return eris.Errorf("resolve: unknown format %q", format)
	}

	if !save {
		return nil
	}

	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Migrate(ctx); err != nil {
		return err
	}

	run, err := st.CreateRun(ctx, company)
	if err != nil {
		return err
	}
	if err := st.CompleteRun(ctx, run.ID, &result); err != nil {
		return err
	}

	zap.L().Info("resolve: run saved",
		zap.String("run_id", run.ID),
		zap.String("company_url", company),
	)
	fmt.Printf("Saved run %s\n", run.ID)

	return nil
}
