package main

import (
	"context"
	"fmt"
	"time"

	"crazy-coffee/internal/auth"
	"crazy-coffee/internal/config"
	"crazy-coffee/internal/database"
	"crazy-coffee/internal/repository"

	"github.com/spf13/cobra"
)

var saveUsername string

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print a bcrypt hash for the postgres verifier",
	Long: `Print a bcrypt hash of the given password.

With --save <username> the hash is also stored in the credentials table
used by AUTH_VERIFIER=postgres.`,
	Args: cobra.ExactArgs(1),
	RunE: runHashPassword,
}

func init() {
	hashPasswordCmd.Flags().StringVar(&saveUsername, "save", "", "Store the hash for this username")
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	hash, err := auth.HashPassword(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)

	if saveUsername == "" {
		return nil
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if err := cfg.Database.Validate(); err != nil {
		return err
	}

	logger := config.NewLoggerTo(cmd.ErrOrStderr(), cfg.Logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if _, err := database.Migrate(ctx, pool, logger); err != nil {
		return err
	}

	return repository.NewCredentialRepository(pool, logger).UpsertCredential(ctx, saveUsername, hash)
}
