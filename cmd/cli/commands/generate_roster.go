package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portside-labs/vessel-ops/pkg/core/services"
)

// GenerateRosterCmd creates the generateRoster command
func GenerateRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateRoster <ref>",
		Short: "Auto-assign line sampling shifts for a vessel roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := args[0]
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			showLog, _ := cmd.Flags().GetBool("show-log")

			result, err := services.GenerateRoster(app.Ctx, app.Database, app.Cfg, app.Logger, ref, dryRun)
			if err != nil {
				return err
			}
			run := result.Run

			if run.Success {
				fmt.Printf("\n✓ Line sampling generated for %s (%s)\n\n", result.Ref, result.Vessel)
			} else {
				fmt.Printf("\n✗ Line sampling generation failed for %s (%s)\n\n", result.Ref, result.Vessel)
			}

			if len(run.Shifts) > 0 {
				fmt.Printf("Shifts:\n")
				for i, s := range run.Shifts {
					who := s.Sampler
					if who == "" {
						who = "(unassigned)"
					}
					fmt.Printf("  %2d. %s - %s  %5.1fh  %s\n",
						i+1,
						s.Start.Format("Mon 02 Jan 15:04"),
						s.End.Format("Mon 02 Jan 15:04"),
						s.Hours(),
						who,
					)
				}
				fmt.Println()
			}

			for _, w := range run.Warnings {
				fmt.Printf("⚠️  %s\n", w)
			}
			for _, e := range run.Errors {
				fmt.Printf("✗ %s\n", e)
			}
			if len(run.Warnings) > 0 || len(run.Errors) > 0 {
				fmt.Println()
			}

			if dryRun {
				fmt.Println("Dry run: nothing was saved.")
			} else if result.Saved {
				fmt.Println("Saved to roster.")
			} else {
				fmt.Println("Not saved. Fix the errors above or assign manually.")
			}

			if showLog {
				fmt.Printf("\nDecision log:\n")
				for _, line := range run.DecisionLog {
					fmt.Printf("  %s\n", line)
				}
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Run without saving to the database")
	cmd.Flags().Bool("show-log", false, "Print the engine's decision log")

	return cmd
}
