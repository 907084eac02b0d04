package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portside-labs/vessel-ops/pkg/core/roster"
)

// ViewRosterCmd creates the viewRoster command
func ViewRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewRoster <ref>",
		Short: "View a sampling roster and its coverage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := app.Database.GetRosterByRef(app.Ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to fetch roster: %w", err)
			}

			fmt.Printf("\n%s - %s\n\n", record.Ref, record.Vessel)
			if record.Berth != "" {
				fmt.Printf("Berth:           %s\n", record.Berth)
			}
			fmt.Printf("Start discharge: %s\n", displayInstant(record.StartDischarge))
			fmt.Printf("Discharge time:  %g hours\n", record.DischargeTimeHours)
			if record.ETC != "" {
				fmt.Printf("ETC:             %s\n", displayInstant(record.ETC))
			}
			fmt.Printf("Line sampling:   %t\n", record.RequiresLineSampling)
			fmt.Printf("Status:          %s\n\n", record.Status)

			if len(record.OfficeSampling) > 0 {
				fmt.Printf("Office sampling:\n")
				for _, rec := range record.OfficeSampling {
					fmt.Printf("  %s - %s  %5.1fh  %s\n",
						displayInstant(rec.StartOffice), displayInstant(rec.FinishSampling), rec.Hours, rec.Who)
				}
				fmt.Println()
			}

			if len(record.LineSampling) > 0 {
				fmt.Printf("Line sampling:\n")
				for i, rec := range record.LineSampling {
					who := rec.Who
					if who == "" {
						who = "(unassigned)"
					}
					fmt.Printf("  %2d. %s - %s  %5.1fh  %s\n",
						i+1, displayInstant(rec.StartLineSampling), displayInstant(rec.FinishLineSampling), rec.Hours, who)
				}
				fmt.Println()
			} else {
				fmt.Println("No line sampling rows yet.")
			}

			return nil
		},
	}
}

// displayInstant reformats a stored timestamp for terminal output, falling
// back to the raw string if it does not parse
func displayInstant(s string) string {
	t, err := roster.ParseInstant(s)
	if err != nil {
		return s
	}
	return t.Format("Mon 02 Jan 2006 15:04")
}
