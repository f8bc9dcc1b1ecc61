package transfer_test

import (
	"context"
	"testing"
	"time"

	"Flux/internal/domain/ledger"
	"Flux/internal/domain/transfer"
	"Flux/internal/domain/user"
	appErrors "Flux/internal/errors"
)

type fakeClock struct {
	now   time.Time
	slept time.Duration
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Sleep(d time.Duration) {
	f.slept += d
}

func TestServiceSendValidations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  *transfer.Request
		code string
	}{
		{
			name: "nil request",
			req:  nil,
			code: "BAD_REQUEST",
		},
		{
			name: "empty recipient",
			req:  &transfer.Request{Recipient: "   ", Amount: 50},
			code: "VALIDATION_ERROR",
		},
		{
			name: "zero amount",
			req:  &transfer.Request{Recipient: "Jordan Lee", Amount: 0},
			code: "VALIDATION_ERROR",
		},
		{
			name: "negative amount",
			req:  &transfer.Request{Recipient: "Jordan Lee", Amount: -5},
			code: "VALIDATION_ERROR",
		},
	}

	ctx := context.Background()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			store := ledger.NewStore(user.User{Balance: 1250}, nil)
			clock := &fakeClock{now: time.Date(2025, time.October, 16, 12, 0, 0, 0, time.UTC)}
			svc := transfer.NewService(store, clock, 0)

			_, err := svc.Send(ctx, tt.req)
			if err == nil {
				t.Fatalf("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != tt.code {
				t.Fatalf("expected code %s, got %s", tt.code, appErr.Code)
			}
			if len(store.List()) != 0 || store.Balance() != 1250 {
				t.Fatalf("rejected transfers must not touch the ledger")
			}
		})
	}
}

func TestServiceSendSuccess(t *testing.T) {
	t.Parallel()

	store := ledger.NewStore(user.User{Balance: 1250}, nil)
	clock := &fakeClock{now: time.Date(2025, time.October, 16, 12, 0, 0, 0, time.UTC)}
	svc := transfer.NewService(store, clock, 5*time.Millisecond)

	result, err := svc.Send(context.Background(), &transfer.Request{
		Recipient: "Jordan Lee",
		Amount:    50,
		Note:      "Lunch split",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tx := result.Transaction
	if tx.Type != ledger.TypeSend {
		t.Fatalf("expected send type, got %s", tx.Type)
	}
	if tx.Amount != 50 || tx.Recipient != "Jordan Lee" || tx.Note != "Lunch split" {
		t.Fatalf("unexpected transaction: %+v", tx)
	}
	if !tx.CreatedAt.Equal(clock.now) {
		t.Fatalf("transaction must be stamped with the injected clock")
	}
	if result.Balance != 1200 {
		t.Fatalf("expected balance 1200, got %.2f", result.Balance)
	}
	if clock.slept != 5*time.Millisecond {
		t.Fatalf("expected simulated processing delay, slept %v", clock.slept)
	}

	list := store.List()
	if len(list) != 1 || list[0].Id != tx.Id {
		t.Fatalf("expected the transfer at the head of the ledger")
	}
}

func TestServiceSendRoundsAmount(t *testing.T) {
	t.Parallel()

	store := ledger.NewStore(user.User{Balance: 100}, nil)
	clock := &fakeClock{now: time.Date(2025, time.October, 16, 12, 0, 0, 0, time.UTC)}
	svc := transfer.NewService(store, clock, 0)

	result, err := svc.Send(context.Background(), &transfer.Request{
		Recipient: "Steve Chen",
		Amount:    10.999,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Transaction.Amount != 11.00 {
		t.Fatalf("expected amount rounded to 11.00, got %.3f", result.Transaction.Amount)
	}
	if result.Balance != 89.00 {
		t.Fatalf("expected balance 89.00, got %.2f", result.Balance)
	}
}
