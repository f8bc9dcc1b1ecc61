package insight

import "fmt"

// narratives converte a contagem de impacto em uma frase humana,
// por métrica. Métricas desconhecidas caem no formatador genérico;
// uma chave nova vinda do catálogo nunca pode derrubar a doação.
var narratives = map[string]func(n int) string{
	"meals": func(n int) string {
		if n < 10 {
			return "That's a quick meal"
		}
		if n < 50 {
			return fmt.Sprintf("That's %d days of meals for a family", n/3)
		}
		return "That's a week+ of meals"
	},
	"children supported": func(n int) string {
		if n == 1 {
			return "One child's life improved"
		}
		return fmt.Sprintf("%d children get support", n)
	},
	"people helped": func(n int) string {
		if n == 1 {
			return "One person directly helped"
		}
		return fmt.Sprintf("%d lives directly impacted", n)
	},
	"school days funded": func(n int) string {
		if n == 1 {
			return "1 school day of education"
		}
		return fmt.Sprintf("%d school days of education", n)
	},
	"care packages": func(n int) string {
		if n == 1 {
			return "One care package delivered"
		}
		return fmt.Sprintf("%d care packages delivered", n)
	},
	"families helped": func(n int) string {
		if n == 1 {
			return "One family gets aid"
		}
		return fmt.Sprintf("%d families receive help", n)
	},
}

func impactNarrative(metric string, count int) string {
	if narrative, ok := narratives[metric]; ok {
		return narrative(count)
	}
	return fmt.Sprintf("You contributed %d %s", count, metric)
}
