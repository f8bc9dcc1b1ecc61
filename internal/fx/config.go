package fx

import (
	"log"

	"Flux/config"
	"Flux/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
	),
	fx.Invoke(
		loadEnvFiles,
		initLogger,
	),
)

func loadEnvFiles() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env from current directory: %v", err)
	}
	return nil
}

func initLogger(cfg *config.Config) {
	logger.Init(cfg)
}
