package cmd

import (
	"fmt"
	"time"

	"asset-curator/core/curator"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scanLibrary string
	scanJSON    bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [dirs...]",
	Short: "Report orphaned assets without deleting anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := setup()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		dirs, err := rt.targets(args, scanLibrary)
		if err != nil {
			return err
		}

		var reports []*curator.Report
		for _, dir := range dirs {
			plan, err := rt.service.Plan(ctx, dir)
			if err != nil {
				rt.logger.Warn("Skipping directory", zap.String("dir", dir), zap.Error(err))
				continue
			}
			printPlan(plan)

			rep := plan.Report()
			rt.service.Record(ctx, rep)
			reports = append(reports, rep)
		}

		if scanJSON && len(reports) > 0 {
			filename := fmt.Sprintf("scan_report_%d.json", time.Now().Unix())
			if err := writeJSON(filename, reports); err != nil {
				return err
			}
			rt.logger.Info("Detailed JSON report saved", zap.String("file", filename), zap.Int("reports", len(reports)))
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanLibrary, "library", "", "Scan every subdirectory of this library")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Save the reports as JSON")

	RootCmd.AddCommand(scanCmd)
}
