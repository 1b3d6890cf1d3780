package cmd

import (
	"fmt"

	"userorders/internal/database"
	"userorders/pkg/logger"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the users and orders tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync(log)

		if cfg.DatabaseURL == database.MemoryDSN {
			return fmt.Errorf("nothing to migrate for %s", database.MemoryDSN)
		}

		db, err := database.Open(cmd.Context(), cfg.DatabaseURL, log)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info("migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
