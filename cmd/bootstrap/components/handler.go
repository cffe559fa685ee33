package components

import (
	"auction-scheduler/internal/handler"
	"auction-scheduler/internal/handler/api"
	"auction-scheduler/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSchedulerHandler,
		api.NewAuctionHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(scheduler *api.SchedulerHandler, auction *api.AuctionHandler, auth *middleware.AuthMiddleware) handler.Handlers {
	return handler.Handlers{
		Scheduler: scheduler,
		Auction:   auction,
		Auth:      auth,
	}
}
