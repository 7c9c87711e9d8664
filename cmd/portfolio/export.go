package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"skullfire.dev/internal/export"
	"skullfire.dev/internal/imagecdn"
	"skullfire.dev/internal/logging"
	"skullfire.dev/internal/services"
)

// exportCmd writes static JSON views
var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Export every catalog view as static JSON",
	Long: `Write projects, facets, stats, profile and per-category card views
to a directory of JSON files.

Examples:
  portfolio export dist/data`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup("console")
	if err != nil {
		return err
	}
	defer func() { _ = logging.Sync(logger) }()

	cdn := imagecdn.New(cfg.ImageCDN.BaseURL, cfg.ImageCDN.ProjectID, cfg.ImageCDN.Dataset)
	projectService, err := services.NewProjectService(cfg.Projects,
		services.WithAssetResolver(cdn),
		services.WithLogger(logger.Named("projects")),
	)
	if err != nil {
		return fmt.Errorf("init project service: %w", err)
	}

	exporter := export.New(projectService, services.NewProfileService(cfg.Profile), logger)
	res, err := exporter.Run(args[0])
	if err != nil {
		return err
	}

	logger.Info("export complete", zap.String("dir", args[0]), zap.Int("files", len(res.Files)))
	return nil
}
