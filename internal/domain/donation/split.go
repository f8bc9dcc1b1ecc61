package donation

import "Flux/internal/pkg"

// PlatformFeeRate é a fração retida pela plataforma em cada doação.
const PlatformFeeRate = 0.05

// Split divide o valor doado entre taxa de plataforma e instituição.
// A parte da instituição é a subtração do total, não um arredondamento
// independente: platformFee + charityAmount fecha com o valor original
// até o centavo.
func Split(amountInDollars float64) (platformFee, charityAmount float64) {
	platformFee = pkg.Round2(amountInDollars * PlatformFeeRate)
	charityAmount = pkg.Round2(amountInDollars - platformFee)
	return platformFee, charityAmount
}
