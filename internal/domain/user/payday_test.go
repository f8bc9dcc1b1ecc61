package user_test

import (
	"testing"
	"time"

	"Flux/internal/domain/user"
)

func day(d int) time.Time {
	return time.Date(2025, time.October, d, 10, 0, 0, 0, time.UTC)
}

func TestIsPaydayWindow(t *testing.T) {
	t.Parallel()

	want := map[int]bool{
		1: true, 2: true, 3: true,
		4: false, 10: false, 14: false,
		15: true, 16: true, 17: true,
		18: false, 25: false, 31: false,
	}

	for d, expected := range want {
		if got := user.IsPaydayWindow(day(d)); got != expected {
			t.Fatalf("day %d: expected %v, got %v", d, expected, got)
		}
	}
}

func TestGetPromptMode(t *testing.T) {
	t.Parallel()

	firstDonation := day(5)
	shownMidMonth := day(15)
	shownStartOfMonth := day(2)
	lastMonth := time.Date(2025, time.September, 16, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		u    user.User
		now  time.Time
		want user.PromptMode
	}{
		{
			name: "hidden before onboarding",
			u:    user.User{},
			now:  day(16),
			want: user.PromptHidden,
		},
		{
			name: "hidden outside payday window",
			u:    user.User{HasCompletedOnboarding: true},
			now:  day(10),
			want: user.PromptHidden,
		},
		{
			name: "prominent for a first-time donor in the window",
			u:    user.User{HasCompletedOnboarding: true},
			now:  day(16),
			want: user.PromptProminent,
		},
		{
			name: "subtle once the user has donated",
			u: user.User{
				HasCompletedOnboarding: true,
				FirstDonationDate:      &firstDonation,
			},
			now:  day(16),
			want: user.PromptSubtle,
		},
		{
			name: "hidden when dismissed for this payday",
			u: user.User{
				HasCompletedOnboarding:   true,
				PromptDismissedForPayday: true,
			},
			now:  day(16),
			want: user.PromptHidden,
		},
		{
			name: "hidden when already shown in the same window",
			u: user.User{
				HasCompletedOnboarding: true,
				LastPromptShown:        &shownMidMonth,
			},
			now:  day(16),
			want: user.PromptHidden,
		},
		{
			name: "shows again in the next window of the month",
			u: user.User{
				HasCompletedOnboarding: true,
				LastPromptShown:        &shownStartOfMonth,
			},
			now:  day(16),
			want: user.PromptProminent,
		},
		{
			name: "shows again in a new month",
			u: user.User{
				HasCompletedOnboarding: true,
				LastPromptShown:        &lastMonth,
			},
			now:  day(16),
			want: user.PromptProminent,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			u := tt.u
			if got := user.GetPromptMode(&u, tt.now); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
