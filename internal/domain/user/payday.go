package user

import "time"

type PromptMode string

const (
	PromptProminent PromptMode = "prominent"
	PromptSubtle    PromptMode = "subtle"
	PromptHidden    PromptMode = "hidden"
)

// IsPaydayWindow devolve true nos dias 1–3 e 15–17 de cada mês,
// as janelas em que a UI exibe o convite de doação.
func IsPaydayWindow(now time.Time) bool {
	day := now.Day()
	return (day >= 1 && day <= 3) || (day >= 15 && day <= 17)
}

func ShouldShowPrompt(u *User, now time.Time) bool {
	if !u.HasCompletedOnboarding {
		return false
	}
	if !IsPaydayWindow(now) {
		return false
	}
	if u.PromptDismissedForPayday {
		return false
	}

	if u.LastPromptShown == nil {
		return true
	}

	lastShown := *u.LastPromptShown
	if lastShown.Month() != now.Month() || lastShown.Year() != now.Year() {
		return true
	}

	// Mesmo mês: só reaparece se mudou de janela (início ↔ quinzena).
	lastDay := lastShown.Day()
	today := now.Day()
	if lastDay <= 3 && today >= 15 {
		return true
	}
	if lastDay >= 15 && today <= 3 {
		return true
	}

	return false
}

func GetPromptMode(u *User, now time.Time) PromptMode {
	if !ShouldShowPrompt(u, now) {
		return PromptHidden
	}

	if u.FirstDonationDate == nil {
		return PromptProminent
	}

	return PromptSubtle
}
