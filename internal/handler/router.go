package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"auction-scheduler/internal/handler/api"
	"auction-scheduler/internal/handler/middleware"
	"auction-scheduler/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Scheduler *api.SchedulerHandler
	Auction   *api.AuctionHandler
	Auth      *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		scheduler := apiGroup.Group("/scheduler")
		{
			// One limiter shared by every operator route.
			operator := []gin.HandlerFunc{h.Auth.RequireOperator(), middleware.RateLimit(cfg.Scheduler)}
			addRoutes(scheduler, []route{
				{Method: http.MethodGet, Path: "/current-auctions", Handler: h.Scheduler.CurrentAuctions},
				{Method: http.MethodPost, Path: "/initialize-daily-auctions", Handler: h.Scheduler.InitializeDay, Mw: operator},
				{Method: http.MethodPost, Path: "/progress-auctions", Handler: h.Scheduler.ProgressRound, Mw: operator},
				{Method: http.MethodPost, Path: "/reset-daily", Handler: h.Scheduler.ResetDay, Mw: operator},
				{Method: http.MethodPost, Path: "/reconcile", Handler: h.Scheduler.ReconcileDay, Mw: operator},
			})
		}

		auctions := apiGroup.Group("/auctions")
		{
			addRoutes(auctions, []route{
				{Method: http.MethodGet, Path: "/:externalId", Handler: h.Auction.Get},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
