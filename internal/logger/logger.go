package logger

import (
	"os"
	"strings"

	"Flux/config"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

func Init(cfg *config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout)
	if cfg.App.Environment != "production" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	log = logger.Level(level).With().Timestamp().Str("app", "flux").Logger()
}

func Debug() *zerolog.Event { return log.Debug() }

func Info() *zerolog.Event { return log.Info() }

func Warn() *zerolog.Event { return log.Warn() }

func Error() *zerolog.Event { return log.Error() }

func Fatal() *zerolog.Event { return log.Fatal() }
