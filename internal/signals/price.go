// Package signals reúne as funções puras de extração de sinais de um anúncio
// bruto: parsing de preço em formatos de moeda mistos, classificação de
// região, seleção de imagem, score de tendência e normalização de
// identificadores. Nenhuma função aqui faz I/O ou lança panic; entrada
// inválida sempre degrada para zero/vazio.
package signals

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParsePrice converte um valor de preço heterogêneo em float64. Números são
// retornados sem alteração (inclusive negativos). Strings passam pela
// limpeza de símbolos de moeda e pela regra de separadores:
//
//   - terminando em vírgula seguida de exatamente dois dígitos, a vírgula é
//     o separador decimal e pontos são agrupamento ("R$ 1.234,56" → 1234.56);
//   - caso contrário todos os pontos e vírgulas são agrupamento e a sequência
//     de dígitos é um inteiro ("586.671.556" → 586671556, estilo dong).
//
// Entrada vazia ou não numérica resulta em 0.
func ParsePrice(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		return parsePriceString(v)
	default:
		return 0
	}
}

func parsePriceString(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return 0
	}

	// Vírgula decimal brasileira: exatamente dois dígitos após a última vírgula
	if idx := strings.LastIndex(cleaned, ","); idx >= 0 && len(cleaned)-idx-1 == 2 && !strings.ContainsAny(cleaned[idx+1:], ".,") {
		integerPart := strings.NewReplacer(".", "", ",", "").Replace(cleaned[:idx])
		parsed, err := strconv.ParseFloat(integerPart+"."+cleaned[idx+1:], 64)
		if err != nil {
			return 0
		}
		return parsed
	}

	digits := strings.NewReplacer(".", "", ",", "").Replace(cleaned)
	parsed, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// ResolveListingPrice aplica a cadeia de fallback de preço de um anúncio:
// preço mínimo, depois preço máximo, depois a string de exibição. O primeiro
// candidato que resolve para um valor utilizável (> 0 e finito) vence;
// nenhum usável resulta em 0.
func ResolveListingPrice(floorPrice, ceilingPrice any, formatPrice string) float64 {
	candidates := []float64{
		ParsePrice(floorPrice),
		ParsePrice(ceilingPrice),
		ParsePrice(formatPrice),
	}

	for _, candidate := range candidates {
		if candidate > 0 && !math.IsInf(candidate, 1) {
			return candidate
		}
	}

	return 0
}
