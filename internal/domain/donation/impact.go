package donation

import "math"

// EstimateImpact converte o valor repassado à instituição em unidades
// de resultado. Taxa ausente, zero ou malformada vira impacto zero;
// nunca falha a doação.
func EstimateImpact(charityAmount, impactRate float64) int {
	if impactRate <= 0 || math.IsNaN(impactRate) || math.IsInf(impactRate, 0) {
		return 0
	}

	impact := int(math.Round(charityAmount * impactRate))
	if impact < 0 {
		return 0
	}
	return impact
}
