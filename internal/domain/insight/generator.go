package insight

import (
	"fmt"
	"math"
	"time"

	"Flux/internal/domain/charity"
)

// AverageDonation é a doação média de referência usada no percentil.
const AverageDonation = 15.0

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate produz os quatro insights de uma doação, sempre nesta ordem:
// impacto, projeção anual, padrão de horário e percentil. O relógio é
// recebido como parâmetro; esta é a única entrada de tempo do domínio.
func (g *Generator) Generate(amountInDollars float64, ch *charity.Charity, impact int, now time.Time) []Insight {
	insights := make([]Insight, 0, 4)

	insights = append(insights, Insight{
		Icon:        "📊",
		Title:       "Your Impact",
		Value:       fmt.Sprintf("%d %s", impact, ch.ImpactMetric),
		Description: impactNarrative(ch.ImpactMetric, impact),
	})

	annual := int(math.Round(amountInDollars * 12))
	insights = append(insights, Insight{
		Icon:        "💰",
		Title:       "Annual Giving (if monthly)",
		Value:       fmt.Sprintf("$%d/year", annual),
		Description: "Your potential impact at this rate",
	})

	givingStyle := "Evening giver 🌙"
	if hour := now.Hour(); hour < 12 {
		givingStyle = "Morning person ☀️"
	} else if hour < 17 {
		givingStyle = "Afternoon donor 🌤️"
	}
	insights = append(insights, Insight{
		Icon:        "⏰",
		Title:       "Your Giving Style",
		Value:       givingStyle,
		Description: fmt.Sprintf("You gave on a %s", now.Weekday().String()),
	})

	percentile := int(math.Round((amountInDollars / AverageDonation) * 50))
	if percentile < 1 {
		percentile = 1
	}
	if percentile > 99 {
		percentile = 99
	}
	insights = append(insights, Insight{
		Icon:        "🏆",
		Title:       "Donor Percentile",
		Value:       fmt.Sprintf("Top %d%%", 100-percentile),
		Description: "More generous than most givers",
	})

	return insights
}
