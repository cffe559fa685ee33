package bootstrap

import (
	"time"

	"auction-scheduler/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewSchedulerLocation,
	),
)

// NewSchedulerLocation is the timezone "today" is resolved in for handlers and cron.
func NewSchedulerLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Scheduler.Location()
}
