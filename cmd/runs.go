package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/execmatch/internal/model"
	"github.com/sells-group/execmatch/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List persisted validation runs",
	RunE:  runRuns,
}

func init() {
	f := runsCmd.Flags()
	f.String("status", "", "filter by status (running, complete, failed)")
	f.String("company", "", "filter by company URL")
	f.Int("limit", 20, "maximum runs to list")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	f := cmd.Flags()
	status, _ := f.GetString("status")
	company, _ := f.GetString("company")
	limit, _ := f.GetInt("limit")

	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Migrate(ctx); err != nil {
		return err
	}

	runs, err := st.ListRuns(ctx, store.RunFilter{
		Status:     model.RunStatus(status),
		CompanyURL: company,
		Limit:      limit,
	})
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs found.")
		return nil
	}

	for _, run := range runs {
		line := fmt.Sprintf("%s  %-8s  %s  %s",
			run.CreatedAt.Format("2006-01-02 15:04"), run.Status, run.ID, run.CompanyURL)
		if run.Result != nil {
			line += fmt.Sprintf("  discovery %.1f%% attribution %.1f%%",
				run.Result.DiscoveryRate, run.Result.AttributionRate)
		}
		if run.Error != "" {
			line += "  error: " + run.Error
		}
		fmt.Println(line)
	}

	return nil
}
