package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListSamplersCmd creates the listSamplers command
func ListSamplersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listSamplers",
		Short: "List all samplers on the personnel roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			samplers, err := app.Database.GetSamplers(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list samplers: %w", err)
			}

			app.Logger.Info("Samplers fetched successfully", zap.Int("count", len(samplers)))

			fmt.Printf("\nFound %d samplers:\n\n", len(samplers))
			for _, s := range samplers {
				status := "active"
				if !s.IsActive {
					status = "inactive"
				}

				var notes []string
				if s.Has24HourRestriction {
					notes = append(notes, "24h/week cap")
				}
				if len(s.RestrictedDays) > 0 {
					days := make([]string, len(s.RestrictedDays))
					for i, d := range s.RestrictedDays {
						days[i] = time.Weekday(d).String()
					}
					notes = append(notes, "no "+strings.Join(days, "/"))
				}

				line := fmt.Sprintf("- %s - %s", s.Name, status)
				if s.Email != "" {
					line += " - " + s.Email
				}
				if len(notes) > 0 {
					line += " [" + strings.Join(notes, ", ") + "]"
				}
				fmt.Println(line)
			}

			return nil
		},
	}
}
