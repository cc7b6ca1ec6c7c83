package main

import (
	"context"
	"fmt"
	"time"

	"crazy-coffee/internal/config"
	"crazy-coffee/internal/database"

	"github.com/spf13/cobra"
)

var migrateTimeout time.Duration

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the session and credential tables",
	Long: `Connect to the configured PostgreSQL database and apply the embedded
schema migrations. Safe to run repeatedly.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().DurationVar(&migrateTimeout, "timeout", 30*time.Second, "Operation timeout")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if err := cfg.Database.Validate(); err != nil {
		return err
	}

	logger := config.NewLoggerTo(cmd.ErrOrStderr(), cfg.Logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	applied, err := database.Migrate(ctx, pool, logger)
	if err != nil {
		return err
	}

	for _, name := range applied {
		fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", name)
	}
	return nil
}
