package bootstrap

import (
	"auction-scheduler/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	DBModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
	CronModule,
)
