package fx

import (
	"time"

	"Flux/internal/domain/charity"
	"Flux/internal/domain/donation"
	"Flux/internal/domain/ledger"
	"Flux/internal/domain/transfer"
	"Flux/internal/middleware"
	"Flux/internal/pkg"
	"Flux/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece o handler HTTP e o rate limiter da API
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAPIRateLimiter,
	),
)

func newHandler(
	donationSvc *donation.Service,
	transferSvc *transfer.Service,
	charitySvc *charity.Service,
	store *ledger.Store,
	clock pkg.Clock,
) *routes.Handler {
	return &routes.Handler{
		DonationService: donationSvc,
		TransferService: transferSvc,
		CharityService:  charitySvc,
		Ledger:          store,
		Clock:           clock,
	}
}

func newAPIRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
