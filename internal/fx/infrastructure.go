package fx

import (
	"context"

	"Flux/config"
	"Flux/internal/domain/charity"
	"Flux/internal/domain/ledger"
	"Flux/internal/infrastructure"
	"Flux/internal/logger"

	"go.uber.org/fx"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newCharityRepository,
		newLedgerStore,
	),
)

// newCharityRepository escolhe a origem do catálogo conforme a config:
// o catálogo embutido (padrão) ou a tabela charities no Postgres.
func newCharityRepository(cfg *config.Config) (charity.Repository, error) {
	if cfg.Charity.Source == "database" {
		db, err := infrastructure.NewDb(cfg)
		if err != nil {
			return nil, err
		}

		repo := &infrastructure.DatabaseCharityRepository{DB: db}
		if err := repo.EnsureSeeded(context.Background()); err != nil {
			return nil, err
		}

		logger.Info().Msg("charity catalog: database")
		return repo, nil
	}

	logger.Info().Msg("charity catalog: static")
	return infrastructure.NewStaticCharityRepository(infrastructure.SeedCharities()), nil
}

func newLedgerStore(cfg *config.Config) *ledger.Store {
	return ledger.NewStore(infrastructure.SeedUser(cfg), infrastructure.SeedTransactions())
}
