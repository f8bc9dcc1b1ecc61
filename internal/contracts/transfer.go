package contracts

import "Flux/internal/domain/ledger"

type SendRequest struct {
	Recipient string  `json:"recipient" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Note      string  `json:"note" binding:"omitempty,max=255"`
}

type SendResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Transaction *ledger.Transaction `json:"transaction"`
	Balance     float64             `json:"balance"`
}
