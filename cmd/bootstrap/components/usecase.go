package components

import (
	"auction-scheduler/internal/domain/auction"
	"auction-scheduler/internal/pkg/clock"
	"auction-scheduler/internal/usecase"
	"auction-scheduler/internal/usecase/commands"
	"auction-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func() *auction.Planner {
		return auction.NewPlanner(uuid.New)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSchedulerCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAuctionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
