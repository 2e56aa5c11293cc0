package signals

import (
	"strings"
	"unicode"
)

// Nomes completos dos estados e marcadores de país, comparados por substring.
var brazilianRegionNames = []string{
	"ACRE",
	"ALAGOAS",
	"AMAPÁ",
	"AMAZONAS",
	"BAHIA",
	"CEARÁ",
	"DISTRITO FEDERAL",
	"ESPÍRITO SANTO",
	"GOIÁS",
	"MARANHÃO",
	"MATO GROSSO",
	"MATO GROSSO DO SUL",
	"MINAS GERAIS",
	"PARÁ",
	"PARAÍBA",
	"PARANÁ",
	"PERNAMBUCO",
	"PIAUÍ",
	"RIO DE JANEIRO",
	"RIO GRANDE DO NORTE",
	"RIO GRANDE DO SUL",
	"RONDÔNIA",
	"RORAIMA",
	"SANTA CATARINA",
	"SÃO PAULO",
	"SERGIPE",
	"TOCANTINS",
	"BRASIL",
	"BRAZIL",
}

// Siglas das 27 UFs mais o marcador de país "BR". Comparadas como token
// isolado: substring pura faria "Vietnam" casar com "AM".
var brazilianShortCodes = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true,
	"CE": true, "DF": true, "ES": true, "GO": true, "MA": true,
	"MT": true, "MS": true, "MG": true, "PA": true, "PB": true,
	"PR": true, "PE": true, "PI": true, "RJ": true, "RN": true,
	"RS": true, "RO": true, "RR": true, "SC": true, "SP": true,
	"SE": true, "TO": true, "BR": true,
}

// IsBrazilianWarehouse classifica o descritor de região/armazém de um anúncio
// como brasileiro. Nomes completos casam por substring após caixa alta;
// siglas casam como token delimitado. Tokens curtos continuam gerando falsos
// positivos propositais ("TO" isolado casa com Tocantins mesmo quando
// significa outra coisa) — afrouxamento aceito em favor de recall.
func IsBrazilianWarehouse(region string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(region))
	if normalized == "" {
		return false
	}

	for _, name := range brazilianRegionNames {
		if strings.Contains(normalized, name) {
			return true
		}
	}

	tokens := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, token := range tokens {
		if brazilianShortCodes[token] {
			return true
		}
	}

	return false
}

// HasBrazilianCurrency detecta o sinal de moeda brasileira: código BRL ou o
// literal R$, no campo de moeda ou embutido na string de preço formatada.
func HasBrazilianCurrency(formatPrice, currency string) bool {
	trimmed := strings.TrimSpace(currency)
	if trimmed == "BRL" || trimmed == "R$" {
		return true
	}

	return strings.Contains(formatPrice, "R$") || strings.Contains(formatPrice, "BRL")
}
