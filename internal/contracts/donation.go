package contracts

import (
	"Flux/internal/domain/charity"
	"Flux/internal/domain/insight"
	"Flux/internal/domain/ledger"
)

type DonateRequest struct {
	CharityId     string `json:"charityId" binding:"required"`
	AmountInCents int64  `json:"amountInCents" binding:"required,gt=0"`
	Note          string `json:"note" binding:"omitempty,max=255"`
}

type DonateCharity struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji,omitempty"`
}

// DonateResponse mantém os campos achatados (amount, platformFee,
// charityAmount, impact) ao lado da transação completa, como o
// frontend espera.
type DonateResponse struct {
	Success       bool                `json:"success"`
	Transaction   *ledger.Transaction `json:"transaction"`
	Charity       DonateCharity       `json:"charity"`
	Amount        float64             `json:"amount"`
	PlatformFee   float64             `json:"platformFee"`
	CharityAmount float64             `json:"charityAmount"`
	Impact        int                 `json:"impact"`
	ImpactMetric  string              `json:"impactMetric,omitempty"`
	Insights      []insight.Insight   `json:"insights"`
	Balance       float64             `json:"balance"`
	Note          string              `json:"note,omitempty"`
}

type CharityListResponse struct {
	Charities []*charity.Charity `json:"charities"`
	Total     int                `json:"total"`
}
