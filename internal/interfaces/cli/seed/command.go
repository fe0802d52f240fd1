// Package seed implements the database seeding command.
package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"deskhub/internal/infrastructure/auth"
	"deskhub/internal/infrastructure/config"
	"deskhub/internal/infrastructure/database"
	"deskhub/internal/infrastructure/persistence/seeds"
	"deskhub/internal/shared/logger"
)

var (
	env           string
	adminUsername string
	adminPassword string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed baseline data",
		Long:  `Insert the baseline statuses, priorities, field templates, and notification templates. Optionally create the initial system admin account.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&adminUsername, "admin-username", "", "Username for the initial system admin account")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "Password for the initial system admin account")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()

	if err := seeds.Run(database.Get()); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Infow("baseline data seeded", "environment", env)

	if adminUsername != "" {
		if len(adminPassword) < 8 {
			return fmt.Errorf("admin password must be at least 8 characters")
		}

		hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
		hash, err := hasher.Hash(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		if err := seeds.SeedAdminAgent(database.Get(), adminUsername, hash); err != nil {
			return fmt.Errorf("failed to seed admin agent: %w", err)
		}
		log.Infow("system admin account seeded", "username", adminUsername)
	}

	return nil
}
