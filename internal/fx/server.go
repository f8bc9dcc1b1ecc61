package fx

import (
	"context"
	"net/http"

	"Flux/config"
	"Flux/internal/logger"
	"Flux/internal/middleware"
	"Flux/internal/routes"

	docs "Flux/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	apiRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.Use(middleware.RateLimit(apiRateLimiter))
	{
		api.POST("/donate", handler.Donate)
		api.POST("/send", handler.Send)
		api.GET("/transactions", handler.ListTransactions)
		api.GET("/charities", handler.ListCharities)

		users := api.Group("/user")
		{
			users.GET("/profile", handler.GetProfile)
			users.GET("/balance", handler.GetBalance)
			users.GET("/prompt", handler.GetPrompt)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("server starting")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("server stopping...")
			return nil
		},
	})
}
