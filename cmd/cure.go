package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"asset-curator/core/curator"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cureLibrary string
	cureDryRun  bool
	yesConfirm  bool
	cureJSON    bool
)

// cureCmd represents the cure command
var cureCmd = &cobra.Command{
	Use:   "cure [dirs...]",
	Short: "Remove trash and orphaned assets from document directories",
	Long: `Scans each document directory, prints what would be removed and, once confirmed,
deletes trash files, unreferenced assets and widget thumbnails, pruning emptied folders.`,
	Example: `  # Cure one document directory (interactive confirmation)
  cure ./library/lesson-1

  # Cure every document of a library without prompting
  cure --library ./library --yes

  # Show what would be removed
  cure ./library/lesson-1 --dry-run`,
	RunE: runCure,
}

func init() {
	cureCmd.Flags().StringVar(&cureLibrary, "library", "", "Cure every subdirectory of this library")
	cureCmd.Flags().BoolVar(&cureDryRun, "dry-run", false, "Report only, delete nothing")
	cureCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	cureCmd.Flags().BoolVar(&cureJSON, "json", false, "Save the reports as JSON")

	RootCmd.AddCommand(cureCmd)
}

func runCure(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	dirs, err := rt.targets(args, cureLibrary)
	if err != nil {
		return err
	}
	dryRun := cureDryRun || rt.cfg.Curator.DryRun

	// Step 1: Plan every directory
	var plans []*curator.Plan
	var reports []*curator.Report
	actions := 0
	for _, dir := range dirs {
		plan, err := rt.service.Plan(ctx, dir)
		if err != nil {
			rt.logger.Warn("Skipping directory", zap.String("dir", dir), zap.Error(err))
			continue
		}
		printPlan(plan)
		plans = append(plans, plan)
		actions += len(plan.Trash) + countDeletions(plan)
	}

	// Step 2: Apply (if confirmed)
	switch {
	case dryRun:
		for _, plan := range plans {
			rep := plan.Report()
			rt.service.Record(ctx, rep)
			reports = append(reports, rep)
		}
		rt.logger.Info("Dry-run mode: No changes were made.")
	case actions == 0:
		rt.logger.Info("Nothing to remove.")
	case !confirmDestructiveAction():
		rt.logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	default:
		for _, plan := range plans {
			reports = append(reports, rt.service.Apply(ctx, plan))
		}
	}

	for _, rep := range reports {
		printReport(rep)
	}

	if cureJSON && len(reports) > 0 {
		filename := fmt.Sprintf("cure_report_%d.json", time.Now().Unix())
		if err := writeJSON(filename, reports); err != nil {
			return err
		}
		rt.logger.Info("Detailed JSON report saved", zap.String("file", filename), zap.Int("reports", len(reports)))
	}
	return nil
}

// countDeletions counts the orphans a plan would remove.
func countDeletions(plan *curator.Plan) int {
	n := 0
	for _, o := range plan.Orphans {
		if !o.Referenced {
			n++
		}
	}
	return n
}

func printPlan(plan *curator.Plan) {
	fmt.Printf("\n=== %s ===\n", plan.Dir)
	fmt.Printf("Documents: %d (unreadable: %d)\n", plan.Documents, plan.ParseFailures)
	fmt.Printf("Referenced: %d  Present: %d\n", len(plan.References), len(plan.Present))
	for _, path := range plan.Trash {
		fmt.Printf("  trash    %s\n", path)
	}
	for _, o := range plan.Orphans {
		if o.Referenced {
			fmt.Printf("  missing  %s\n", o.ID)
			continue
		}
		fmt.Printf("  orphan   %s\n", o.Path)
		if o.Thumbnail != "" {
			fmt.Printf("  thumb    %s\n", o.Thumbnail)
		}
	}
}

func printReport(rep *curator.Report) {
	fmt.Printf("\n%s [%s] deleted=%d thumbnails=%d trash=%d pruned=%d missing=%d failures=%d (%dms)\n",
		rep.Dir, rep.Status(), len(rep.Deleted), len(rep.Thumbnails), len(rep.Trash),
		len(rep.Pruned), len(rep.Missing), len(rep.Failures), rep.DurationMS)
	for _, f := range rep.Failures {
		fmt.Printf("  failed %s %s: %s\n", f.Op, f.Path, f.Error)
	}
}

func writeJSON(filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to save JSON file: %w", err)
	}
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
