package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"auction-scheduler/internal/pkg/clock"
	"auction-scheduler/internal/pkg/config"
	"auction-scheduler/internal/scheduler"
	"auction-scheduler/internal/usecase/commands"

	"go.uber.org/fx"
)

var CronModule = fx.Module("cron",
	fx.Invoke(RegisterCron),
)

func RegisterCron(lc fx.Lifecycle, cfg config.Config, cmds commands.SchedulerCommands, clk clock.Clock, loc *time.Location, logger *slog.Logger) error {
	if !cfg.Cron.Enabled {
		logger.Info("embedded cron disabled")
		return nil
	}

	runner, err := scheduler.NewRunner(cfg.Cron, cmds, clk, loc, logger)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			runner.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return runner.Stop(ctx)
		},
	})
	return nil
}
