package signals

import (
	"math"

	"github.com/Dorilitre/caau-apify-actor/pkg/utils"
)

// Limites de normalização usados quando o chamador não tem referência melhor
// para o lote.
const (
	DefaultMaxSoldCount = 1000
	DefaultMaxRating    = 5.0
)

// CalculateTrendingScore combina volume recente de vendas e avaliação em uma
// heurística de popularidade em [0,1]: vendas normalizadas pesam 0.6 e
// avaliação normalizada 0.4, com arredondamento em duas casas. Cada termo é
// limitado a [0,1] antes da combinação, então entradas negativas não rebaixam
// o score abaixo de zero. Limites não positivos caem nos padrões.
func CalculateTrendingScore(soldCount int, rating float64, maxSoldCount int, maxRating float64) float64 {
	if maxSoldCount <= 0 {
		maxSoldCount = DefaultMaxSoldCount
	}
	if maxRating <= 0 {
		maxRating = DefaultMaxRating
	}

	normalizedSales := clampUnit(float64(soldCount) / float64(maxSoldCount))
	normalizedRating := clampUnit(rating / maxRating)

	return utils.RoundWithTwoDecimalPlace(normalizedSales*0.6 + normalizedRating*0.4)
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
