package pkg

import "math"

// Round2 arredonda para duas casas decimais (half-up).
// Todo valor monetário que sai do domínio passa por aqui.
func Round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// CentsToDollars converte um valor inteiro em centavos para dólares.
func CentsToDollars(cents int64) float64 {
	return Round2(float64(cents) / 100)
}
