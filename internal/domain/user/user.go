package user

import "time"

type User struct {
	Id                       string     `json:"id"`
	Name                     string     `json:"name"`
	Email                    string     `json:"email"`
	Balance                  float64    `json:"balance"`
	HasCompletedOnboarding   bool       `json:"hasCompletedOnboarding"`
	FirstDonationDate        *time.Time `json:"firstDonationDate"`
	TotalDonated             float64    `json:"totalDonated"`
	DonationCount            int        `json:"donationCount"`
	LastPromptShown          *time.Time `json:"lastPromptShown"`
	PromptDismissedForPayday bool       `json:"promptDismissedForPayday"`
	CreatedAt                time.Time  `json:"createdAt"`
	UpdatedAt                time.Time  `json:"updatedAt"`
}
