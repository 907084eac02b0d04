package commands

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/portside-labs/vessel-ops/pkg/core/roster"
	"github.com/portside-labs/vessel-ops/pkg/db"
)

// AddOtherJobCmd creates the addOtherJob command
func AddOtherJobCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addOtherJob <sampler> <start> <end>",
		Short: "Record a miscellaneous commitment for a sampler",
		Long: `Record a miscellaneous commitment for a sampler so roster generation
treats that time as taken. Timestamps accept RFC 3339 or "2006-01-02T15:04".`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			who := args[0]
			description, _ := cmd.Flags().GetString("description")

			start, err := roster.ParseInstant(args[1])
			if err != nil {
				return fmt.Errorf("invalid start: %w", err)
			}
			end, err := roster.ParseInstant(args[2])
			if err != nil {
				return fmt.Errorf("invalid end: %w", err)
			}
			if !end.After(start) {
				return fmt.Errorf("end must be after start")
			}

			job := &db.OtherJob{
				ID:          uuid.NewString(),
				Who:         who,
				Description: description,
				StartAt:     start.Format(time.RFC3339),
				EndAt:       end.Format(time.RFC3339),
			}
			if err := app.Database.InsertOtherJob(app.Ctx, job); err != nil {
				return fmt.Errorf("failed to insert job: %w", err)
			}

			app.Logger.Info("Other job recorded",
				zap.String("id", job.ID),
				zap.String("who", who),
				zap.String("start", job.StartAt),
				zap.String("end", job.EndAt))

			fmt.Printf("\n✓ Job recorded for %s: %s - %s\n",
				who, start.Format("Mon 02 Jan 15:04"), end.Format("Mon 02 Jan 15:04"))

			return nil
		},
	}

	cmd.Flags().String("description", "", "What the sampler is doing")

	return cmd
}
