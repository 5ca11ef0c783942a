package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"asset-curator/feature/cure/models"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	historyDir   string
	historyLimit int
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded cure runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		dir := historyDir
		if dir != "" {
			if abs, err := filepath.Abs(dir); err == nil {
				dir = abs
			}
		}

		runs, err := rt.service.History(cmd.Context(), dir, historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		printRuns(runs)
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyDir, "dir", "", "Only runs for this directory")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs")

	RootCmd.AddCommand(historyCmd)
}

func printRuns(runs []models.CureRun) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Started", "Status", "Dry run", "Deleted", "Missing", "Pruned", "Failures", "Directory"})

	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, r := range runs {
		table.Append([]string{
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Status,
			strconv.FormatBool(r.DryRun),
			strconv.Itoa(r.Deleted),
			strconv.Itoa(r.Missing),
			strconv.Itoa(r.Pruned),
			strconv.Itoa(r.Failures),
			r.Directory,
		})
	}
	table.Render()
}
