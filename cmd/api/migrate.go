package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/srgjo27/hotel_inventory/internal/platform/config"
	"github.com/srgjo27/hotel_inventory/internal/platform/database"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := database.NewGormDB(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate schema: %w", err)
			}

			log.Info("schema migrated", zap.String("database", cfg.Database.DBName))
			return nil
		},
	}
}
