package contracts

import "Flux/internal/domain/user"

type ProfileResponse struct {
	User user.User `json:"user"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

type PromptResponse struct {
	Mode         user.PromptMode `json:"mode"`
	PaydayWindow bool            `json:"paydayWindow"`
}
