package infrastructure

import (
	"time"

	"Flux/config"
	"Flux/internal/domain/ledger"
	"Flux/internal/domain/user"
	"Flux/internal/pkg"
)

// SeedUser monta o perfil inicial do usuário demo a partir da config.
func SeedUser(cfg *config.Config) user.User {
	now := time.Now()
	return user.User{
		Id:                     "user-1",
		Name:                   cfg.Seed.UserName,
		Email:                  cfg.Seed.UserEmail,
		Balance:                cfg.Seed.Balance,
		HasCompletedOnboarding: true,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

// SeedTransactions devolve o histórico demo exibido no dashboard antes
// da primeira operação real, já em ordem mais-recente-primeiro.
func SeedTransactions() []*ledger.Transaction {
	return []*ledger.Transaction{
		{
			Id:        pkg.GenerateULIDObject(),
			Type:      ledger.TypeSend,
			Amount:    50.00,
			Recipient: "Jordan Lee",
			Note:      "Lunch split",
			CreatedAt: time.Date(2025, time.October, 16, 12, 30, 0, 0, time.UTC),
		},
		{
			Id:        pkg.GenerateULIDObject(),
			Type:      ledger.TypeReceive,
			Amount:    25.00,
			Recipient: "Steve Chen",
			Note:      "Concert tickets",
			CreatedAt: time.Date(2025, time.October, 13, 18, 5, 0, 0, time.UTC),
		},
		{
			Id:            pkg.GenerateULIDObject(),
			Type:          ledger.TypeDonation,
			Amount:        10.00,
			PlatformFee:   0.50,
			CharityAmount: 9.50,
			Impact:        19,
			ImpactMetric:  "meals",
			CharityId:     "charity-1",
			CharityName:   "World Food Program USA",
			CreatedAt:     time.Date(2025, time.October, 5, 9, 45, 0, 0, time.UTC),
		},
	}
}
