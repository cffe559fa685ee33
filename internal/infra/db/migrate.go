package db

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"auction-scheduler/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Migrate applies pending versioned migrations from cfg.MigrationsDir using the atlas CLI.
func Migrate(ctx context.Context, cfg config.DBConfig) error {
	dir, err := filepath.Abs(cfg.MigrationsDir)
	if err != nil {
		return fmt.Errorf("failed to resolve migrations dir: %w", err)
	}

	client, err := atlasexec.NewClient(dir, "atlas")
	if err != nil {
		return fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: "file://" + filepath.ToSlash(dir),
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
