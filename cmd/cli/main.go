package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/portside-labs/vessel-ops/cmd/cli/commands"
	"github.com/portside-labs/vessel-ops/internal/config"
	"github.com/portside-labs/vessel-ops/pkg/postgres"
	"github.com/portside-labs/vessel-ops/pkg/utils/logging"
)

var (
	env string
	app = &commands.AppContext{}
	pg  *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vessel-ops",
		Short: "Vessel Ops CLI - Manage vessel discharge sampling rosters",
		Long:  `A CLI tool for managing sampling rosters, line sampling shift assignment, and sampler commitments.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if pg != nil {
				pg.Close()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.GenerateRosterCmd(app))
	rootCmd.AddCommand(commands.ViewRosterCmd(app))
	rootCmd.AddCommand(commands.ListSamplersCmd(app))
	rootCmd.AddCommand(commands.AddOtherJobCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config and database
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Logger.Info("Connecting to database")
	pg, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app.Logger.Info("Running database migrations")
	if err := pg.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.Database = pg
	app.Logger.Info("Database initialized successfully")

	return nil
}
