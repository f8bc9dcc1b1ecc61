package infrastructure

import "Flux/internal/domain/charity"

// SeedCharities é o catálogo embutido usado pelo repositório estático e
// pela carga inicial da tabela charities.
func SeedCharities() []*charity.Charity {
	return []*charity.Charity{
		{
			Id:           "charity-1",
			Name:         "World Food Program USA",
			Description:  "Delivers meals to families facing hunger around the world.",
			Emoji:        "🍽️",
			Verified:     true,
			DonorCount:   48210,
			ImpactMetric: "meals",
			ImpactRate:   2,
			Category:     "hunger",
			WebsiteURL:   "https://www.wfpusa.org",
		},
		{
			Id:           "charity-2",
			Name:         "Bright Futures Fund",
			Description:  "Keeps kids in classrooms by funding school days in underserved districts.",
			Emoji:        "📚",
			Verified:     true,
			DonorCount:   12840,
			ImpactMetric: "school days funded",
			ImpactRate:   0.5,
			Category:     "education",
			WebsiteURL:   "https://www.brightfutures.example.org",
		},
		{
			Id:           "charity-3",
			Name:         "Shelter Together",
			Description:  "Emergency housing and direct aid for families in crisis.",
			Emoji:        "🏠",
			Verified:     true,
			DonorCount:   9305,
			ImpactMetric: "families helped",
			ImpactRate:   0.1,
			Category:     "humanitarian",
		},
		{
			Id:           "charity-4",
			Name:         "Care Package Collective",
			Description:  "Assembles and ships care packages to people recovering from disasters.",
			Emoji:        "📦",
			Verified:     false,
			DonorCount:   3122,
			ImpactMetric: "care packages",
			ImpactRate:   0.25,
			Category:     "emergency",
		},
		{
			Id:           "charity-5",
			Name:         "Neighbors First",
			Description:  "Direct community support: groceries, rides and urgent bills.",
			Emoji:        "🤝",
			Verified:     true,
			DonorCount:   17764,
			ImpactMetric: "people helped",
			ImpactRate:   0.4,
			Category:     "humanitarian",
		},
		{
			Id:           "charity-6",
			Name:         "Little Sprouts",
			Description:  "Long-term support programs for children in vulnerable situations.",
			Emoji:        "🌱",
			Verified:     true,
			DonorCount:   6018,
			ImpactMetric: "children supported",
			ImpactRate:   0.2,
			Category:     "children",
		},
	}
}
