package fx

import (
	"Flux/config"
	"Flux/internal/domain/charity"
	"Flux/internal/domain/donation"
	"Flux/internal/domain/insight"
	"Flux/internal/domain/ledger"
	"Flux/internal/domain/transfer"
	"Flux/internal/pkg"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newClock,

		// Charity service
		newCharityService,

		// Insight generator
		newInsightGenerator,

		// Donation workflow
		newDonationService,

		// Transfer workflow
		newTransferService,
	),
)

func newClock() pkg.Clock {
	return pkg.NewSystemClock()
}

func newCharityService(repo charity.Repository) *charity.Service {
	return charity.NewService(repo)
}

func newInsightGenerator() *insight.Generator {
	return insight.NewGenerator()
}

func newDonationService(
	cfg *config.Config,
	charitySvc *charity.Service,
	store *ledger.Store,
	generator *insight.Generator,
	clock pkg.Clock,
) *donation.Service {
	return donation.NewService(charitySvc, store, generator, clock, cfg.Processing.Delay)
}

func newTransferService(
	cfg *config.Config,
	store *ledger.Store,
	clock pkg.Clock,
) *transfer.Service {
	return transfer.NewService(store, clock, cfg.Processing.Delay)
}
