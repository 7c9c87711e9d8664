// Package main implements the portfolio CLI: an HTTP server for the project
// catalog and a static JSON exporter.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"skullfire.dev/internal/config"
	"skullfire.dev/internal/logging"
)

var (
	// version information
	version = "dev"

	logLevel  string
	logFormat string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		config.Exitf("portfolio: %v", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio catalog server and exporter",
	Long: `portfolio serves a filterable project catalog and biography over a JSON API,
or exports every view to static JSON files.

Configuration is read from the environment (SERVER_ADDR, CONTENT_FILE,
PROFILE_FILE, IMAGE_CDN_*, RATE_LIMIT_*).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format override (json, console)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
}

// setup loads configuration and builds the logger, applying flag overrides
func setup(defaultFormat string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logCfg := logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}
	if defaultFormat != "" && os.Getenv("LOG_FORMAT") == "" {
		logCfg.Format = defaultFormat
	}
	if logLevel != "" {
		logCfg.Level = logLevel
	}
	if logFormat != "" {
		logCfg.Format = logFormat
	}

	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
