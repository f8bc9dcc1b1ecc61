package donation

import (
	"context"
	"time"

	"Flux/internal/domain/charity"
	"Flux/internal/domain/insight"
	"Flux/internal/domain/ledger"
	appErrors "Flux/internal/errors"
	"Flux/internal/logger"
	"Flux/internal/pkg"
)

// InsightGenerator produz os insights exibidos após uma doação.
type InsightGenerator interface {
	Generate(amountInDollars float64, ch *charity.Charity, impact int, now time.Time) []insight.Insight
}

type Service struct {
	CharityService  *charity.Service
	Ledger          *ledger.Store
	Insights        InsightGenerator
	Clock           pkg.Clock
	ProcessingDelay time.Duration
}

func NewService(
	charitySvc *charity.Service,
	store *ledger.Store,
	generator InsightGenerator,
	clock pkg.Clock,
	processingDelay time.Duration,
) *Service {
	return &Service{
		CharityService:  charitySvc,
		Ledger:          store,
		Insights:        generator,
		Clock:           clock,
		ProcessingDelay: processingDelay,
	}
}

type Request struct {
	CharityId     string
	AmountInCents int64
	Note          string
}

type Result struct {
	Transaction *ledger.Transaction
	Charity     *charity.Charity
	Insights    []insight.Insight
	Balance     float64
}

// Donate executa o fluxo completo de doação. Falhas de validação e de
// catálogo abortam antes de qualquer mutação; o ledger e o saldo só são
// tocados no caminho de sucesso.
func (s *Service) Donate(ctx context.Context, req *Request) (*Result, error) {
	if req == nil {
		return nil, appErrors.ErrBadRequest
	}
	if req.AmountInCents <= 0 {
		return nil, appErrors.NewValidationError("amountInCents", "amountInCents must be greater than 0")
	}

	charityEntity, err := s.CharityService.FindCharity(ctx, req.CharityId)
	if err != nil {
		return nil, err
	}

	amountInDollars := pkg.CentsToDollars(req.AmountInCents)
	platformFee, charityAmount := Split(amountInDollars)
	impact := EstimateImpact(charityAmount, charityEntity.ImpactRate)

	logger.Info().
		Str("charity_id", charityEntity.Id).
		Float64("amount", amountInDollars).
		Int("impact", impact).
		Str("impact_metric", charityEntity.ImpactMetric).
		Msg("donation accepted")

	// Latência simulada do gateway de pagamento.
	s.Clock.Sleep(s.ProcessingDelay)

	now := s.Clock.Now()
	insights := s.generateInsights(amountInDollars, charityEntity, impact, now)

	transaction := &ledger.Transaction{
		Id:            pkg.GenerateULIDObject(),
		Type:          ledger.TypeDonation,
		Amount:        amountInDollars,
		PlatformFee:   platformFee,
		CharityAmount: charityAmount,
		Impact:        impact,
		ImpactMetric:  charityEntity.ImpactMetric,
		CharityId:     charityEntity.Id,
		CharityName:   charityEntity.Name,
		Note:          req.Note,
		CreatedAt:     now,
	}

	s.Ledger.Append(transaction)
	balance := s.Ledger.Debit(amountInDollars, now)
	s.Ledger.RecordDonation(amountInDollars, now)

	logger.Info().
		Str("transaction_id", transaction.Id.String()).
		Str("charity_id", charityEntity.Id).
		Float64("platform_fee", platformFee).
		Float64("charity_amount", charityAmount).
		Float64("balance", balance).
		Msg("donation completed")

	return &Result{
		Transaction: transaction,
		Charity:     charityEntity,
		Insights:    insights,
		Balance:     balance,
	}, nil
}

// generateInsights nunca propaga pânico: uma falha aqui degrada para
// lista vazia e a doação segue até o fim, com sucesso reportado.
func (s *Service) generateInsights(amount float64, ch *charity.Charity, impact int, now time.Time) (out []insight.Insight) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Interface("panic", r).
				Str("charity_id", ch.Id).
				Msg("insight generation failed, continuing without insights")
			out = []insight.Insight{}
		}
	}()

	return s.Insights.Generate(amount, ch, impact, now)
}
