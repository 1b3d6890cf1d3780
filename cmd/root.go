package cmd

import (
	"fmt"
	"os"

	"userorders/internal/config"
	"userorders/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd represents the base command; without a subcommand it serves the API.
var rootCmd = &cobra.Command{
	Use:   "userorders",
	Short: "User and order management API",
	Long: `userorders serves a JSON API for users and the orders they own.

	userorders            start the HTTP server (same as "serve")
	userorders migrate    create or update the database schema
	userorders events tail  print published user events`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration and builds the logger every command uses.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log.With(zap.String("env", cfg.AppEnv)), nil
}
