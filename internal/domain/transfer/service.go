package transfer

import (
	"context"
	"strings"
	"time"

	"Flux/internal/domain/ledger"
	appErrors "Flux/internal/errors"
	"Flux/internal/logger"
	"Flux/internal/pkg"
)

type Service struct {
	Ledger          *ledger.Store
	Clock           pkg.Clock
	ProcessingDelay time.Duration
}

func NewService(store *ledger.Store, clock pkg.Clock, processingDelay time.Duration) *Service {
	return &Service{
		Ledger:          store,
		Clock:           clock,
		ProcessingDelay: processingDelay,
	}
}

type Request struct {
	Recipient string
	Amount    float64
	Note      string
}

type Result struct {
	Transaction *ledger.Transaction
	Balance     float64
}

// Send é o irmão simples da doação: valida, simula o processamento,
// registra no ledger e debita. Sem instituição, sem insights.
func (s *Service) Send(ctx context.Context, req *Request) (*Result, error) {
	if req == nil {
		return nil, appErrors.ErrBadRequest
	}
	if strings.TrimSpace(req.Recipient) == "" {
		return nil, appErrors.NewValidationError("recipient", "recipient is required")
	}
	if req.Amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "amount must be greater than 0")
	}

	s.Clock.Sleep(s.ProcessingDelay)

	now := s.Clock.Now()
	amount := pkg.Round2(req.Amount)

	transaction := &ledger.Transaction{
		Id:        pkg.GenerateULIDObject(),
		Type:      ledger.TypeSend,
		Amount:    amount,
		Recipient: req.Recipient,
		Note:      req.Note,
		CreatedAt: now,
	}

	s.Ledger.Append(transaction)
	balance := s.Ledger.Debit(amount, now)

	logger.Info().
		Str("transaction_id", transaction.Id.String()).
		Str("recipient", req.Recipient).
		Float64("amount", amount).
		Float64("balance", balance).
		Msg("transfer completed")

	return &Result{
		Transaction: transaction,
		Balance:     balance,
	}, nil
}
