package infrastructure

import (
	"Flux/config"
	"Flux/internal/domain/charity"
	"Flux/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDb abre a conexão usada apenas pelo catálogo de instituições.
// Transações e saldo vivem em memória e nunca passam por aqui.
func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("failed to connect to database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("failed to get database instance")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := db.AutoMigrate(&charity.Charity{}); err != nil {
		logger.Error().Err(err).Msg("failed to migrate charities table")
		return nil, err
	}

	logger.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.DBName).
		Msg("database connection established")

	return db, nil
}
