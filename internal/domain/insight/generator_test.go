package insight_test

import (
	"testing"
	"time"

	"Flux/internal/domain/charity"
	"Flux/internal/domain/insight"
)

var wfp = &charity.Charity{
	Id:           "charity-1",
	Name:         "World Food Program USA",
	ImpactMetric: "meals",
	ImpactRate:   2,
}

func TestGenerateProducesFourInsightsInOrder(t *testing.T) {
	t.Parallel()

	// quinta-feira de manhã
	now := time.Date(2025, time.October, 16, 9, 30, 0, 0, time.UTC)

	insights := insight.NewGenerator().Generate(10.00, wfp, 19, now)

	if len(insights) != 4 {
		t.Fatalf("expected exactly 4 insights, got %d", len(insights))
	}

	wantTitles := []string{"Your Impact", "Annual Giving (if monthly)", "Your Giving Style", "Donor Percentile"}
	for i, want := range wantTitles {
		if insights[i].Title != want {
			t.Fatalf("insight %d: expected title %q, got %q", i, want, insights[i].Title)
		}
	}

	if insights[0].Value != "19 meals" {
		t.Fatalf("impact value: got %q", insights[0].Value)
	}
	if insights[0].Description != "That's 6 days of meals for a family" {
		t.Fatalf("impact narrative: got %q", insights[0].Description)
	}
	if insights[1].Value != "$120/year" {
		t.Fatalf("annual projection: got %q", insights[1].Value)
	}
	if insights[2].Value != "Morning person ☀️" {
		t.Fatalf("giving style: got %q", insights[2].Value)
	}
	if insights[2].Description != "You gave on a Thursday" {
		t.Fatalf("giving style description: got %q", insights[2].Description)
	}
	if insights[3].Value != "Top 67%" {
		t.Fatalf("percentile: got %q", insights[3].Value)
	}
}

func TestGenerateGivingStyleFollowsTimeOfDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hour int
		want string
	}{
		{name: "morning", hour: 8, want: "Morning person ☀️"},
		{name: "afternoon", hour: 14, want: "Afternoon donor 🌤️"},
		{name: "evening", hour: 21, want: "Evening giver 🌙"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2025, time.October, 16, tt.hour, 0, 0, 0, time.UTC)
			insights := insight.NewGenerator().Generate(10.00, wfp, 19, now)
			if insights[2].Value != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, insights[2].Value)
			}
		})
	}
}

func TestGeneratePercentileClamps(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.October, 16, 9, 0, 0, 0, time.UTC)
	gen := insight.NewGenerator()

	// doação grande nunca passa de Top 1%
	big := gen.Generate(500.00, wfp, 950, now)
	if big[3].Value != "Top 1%" {
		t.Fatalf("expected Top 1%%, got %q", big[3].Value)
	}

	// doação minúscula nunca cai abaixo de Top 99%
	small := gen.Generate(0.01, wfp, 0, now)
	if small[3].Value != "Top 99%" {
		t.Fatalf("expected Top 99%%, got %q", small[3].Value)
	}
}

func TestGenerateUnknownMetricFallsBack(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.October, 16, 9, 0, 0, 0, time.UTC)
	ch := &charity.Charity{
		Id:           "charity-x",
		Name:         "Reforest Now",
		ImpactMetric: "trees planted",
		ImpactRate:   0.3,
	}

	insights := insight.NewGenerator().Generate(10.00, ch, 3, now)
	if insights[0].Description != "You contributed 3 trees planted" {
		t.Fatalf("fallback narrative: got %q", insights[0].Description)
	}
}
