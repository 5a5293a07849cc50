package main

import (
	"jobboard/internal/app"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply embedded SQL migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		db, err := app.OpenDB(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		return app.Migrate(cmd.Context(), db, log)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo candidates and jobs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		db, err := app.OpenDB(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		return app.Seed(cmd.Context(), db, log)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd)
}
