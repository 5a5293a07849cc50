package main

import (
	"fmt"
	"os"

	"jobboard/internal/config"
	"jobboard/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "jobboard",
	Short:         "Job board recommendation and notification service",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging (LOG_DEBUG)")
	rootCmd.PersistentFlags().Bool("log-json", false, "emit JSON logs (LOG_JSON)")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment, letting the persistent flags override
// the logging switches.
func loadConfig(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	v := viper.New()
	v.AutomaticEnv()
	if err := v.BindPFlag("LOG_DEBUG", cmd.Flags().Lookup("debug")); err != nil {
		return config.Config{}, nil, err
	}
	if err := v.BindPFlag("LOG_JSON", cmd.Flags().Lookup("log-json")); err != nil {
		return config.Config{}, nil, err
	}

	cfg, err := config.LoadFrom(v)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log.With(zap.String("app", cfg.App.AppName), zap.String("env", cfg.App.Environment)), nil
}
