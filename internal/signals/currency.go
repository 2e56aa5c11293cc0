package signals

import "strings"

// NormalizeCurrency resolve o código de moeda do produto normalizado: BRL
// quando qualquer sinal brasileiro foi detectado, senão a moeda declarada,
// senão USD.
func NormalizeCurrency(currency, formatPrice string, brazilSignals bool) string {
	if brazilSignals || HasBrazilianCurrency(formatPrice, currency) {
		return "BRL"
	}

	if trimmed := strings.TrimSpace(currency); trimmed != "" {
		return trimmed
	}

	return "USD"
}
