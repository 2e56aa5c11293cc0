// Package filtering decide quais anúncios brutos pertencem de fato ao
// mercado brasileiro antes da normalização.
package filtering

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/Dorilitre/caau-apify-actor/internal/domain"
	"github.com/Dorilitre/caau-apify-actor/internal/signals"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tokens buscados no texto serializado de URLs e sub-estruturas de schema
var urlSignalTokens = []string{".br/", "/br-", "brazil", "brasil"}

// Filter aplica a política de admissão de anúncios ao mercado brasileiro
type Filter interface {
	FilterBrazil(listings []domain.RawListing, opts Options) []domain.RawListing
}

// Observer recebe os contadores de cada lote filtrado. É instrumentação
// injetável: o núcleo do filtro permanece livre de efeitos colaterais.
type Observer interface {
	BatchFiltered(input, kept, dropped int)
}

// Options configura as três verificações independentes do filtro. Limites de
// preço ausentes significam sem limite.
type Options struct {
	RequireBrazilSignals bool
	MinPrice             *float64
	MaxPrice             *float64
	DropIfNoImage        bool
}

// DefaultOptions exige sinais brasileiros e imagem utilizável, sem limites
// de preço.
func DefaultOptions() Options {
	return Options{
		RequireBrazilSignals: true,
		DropIfNoImage:        true,
	}
}

type Service struct {
	observer Observer
}

// NewService cria o filtro de mercado. Com observer nil os contadores de
// lote vão para o log da aplicação.
func NewService(observer Observer) Filter {
	if observer == nil {
		observer = logObserver{}
	}

	return &Service{observer: observer}
}

// FilterBrazil aplica as verificações de admissão em AND lógico, preservando
// a ordem relativa dos anúncios aprovados. A sequência de entrada nunca é
// modificada.
func (s *Service) FilterBrazil(listings []domain.RawListing, opts Options) []domain.RawListing {
	kept := make([]domain.RawListing, 0, len(listings))

	for _, listing := range listings {
		if s.admit(listing, opts) {
			kept = append(kept, listing)
		}
	}

	s.observer.BatchFiltered(len(listings), len(kept), len(listings)-len(kept))

	return kept
}

func (s *Service) admit(listing domain.RawListing, opts Options) bool {
	brazilSignals := hasBrazilSignals(listing)

	if opts.RequireBrazilSignals && !brazilSignals {
		return false
	}

	if opts.DropIfNoImage && signals.PickImageURL(listing.Cover, listing.Images) == nil {
		return false
	}

	return admitPriceRange(listing, brazilSignals, opts)
}

// admitPriceRange compara o preço resolvido com os limites configurados.
// Preço imensurável (nenhum candidato parseável) passa sem filtro, EXCETO
// quando o anúncio não tem nenhum sinal brasileiro e declara moeda
// estrangeira: um preço estrangeiro inconversível não pode ser comparado com
// limites em BRL, então o anúncio é reprovado.
func admitPriceRange(listing domain.RawListing, brazilSignals bool, opts Options) bool {
	if opts.MinPrice == nil && opts.MaxPrice == nil {
		return true
	}

	price := signals.ResolveListingPrice(listing.FloorPrice, listing.CeilingPrice, listing.FormatPrice)
	if price == 0 {
		return brazilSignals || !declaresForeignCurrency(listing.Currency)
	}

	if opts.MinPrice != nil && price < *opts.MinPrice {
		return false
	}
	if opts.MaxPrice != nil && price > *opts.MaxPrice {
		return false
	}

	return true
}

// hasBrazilSignals é o sinal composto do filtro: moeda, armazém ou URL.
// Mais amplo que o par de sinais diretos usado na normalização de moeda.
func hasBrazilSignals(listing domain.RawListing) bool {
	if signals.HasBrazilianCurrency(listing.FormatPrice, listing.Currency) {
		return true
	}

	if signals.IsBrazilianWarehouse(listing.WarehouseRegion) {
		return true
	}

	return hasURLSignal(listing)
}

// hasURLSignal serializa as sub-estruturas de schema/link do anúncio e busca
// marcadores brasileiros no texto resultante.
func hasURLSignal(listing domain.RawListing) bool {
	var haystack strings.Builder
	haystack.WriteString(listing.ProductURL)

	if listing.Schema != nil {
		if serialized, err := json.Marshal(listing.Schema); err == nil {
			haystack.Write(serialized)
		}
	}

	for key, value := range listing.Extra {
		if !isLinkLikeKey(key) || value == nil {
			continue
		}
		if serialized, err := json.Marshal(value); err == nil {
			haystack.Write(serialized)
		}
	}

	lowered := strings.ToLower(haystack.String())
	for _, token := range urlSignalTokens {
		if strings.Contains(lowered, token) {
			return true
		}
	}

	return false
}

func isLinkLikeKey(key string) bool {
	lowered := strings.ToLower(key)
	return strings.Contains(lowered, "schema") ||
		strings.Contains(lowered, "link") ||
		strings.Contains(lowered, "url")
}

func declaresForeignCurrency(currency string) bool {
	trimmed := strings.TrimSpace(currency)
	return trimmed != "" && trimmed != "BRL" && trimmed != "R$"
}

// logObserver é o Observer padrão: registra os contadores do lote no log
type logObserver struct{}

func (logObserver) BatchFiltered(input, kept, dropped int) {
	logrus.WithFields(logrus.Fields{
		"input":   input,
		"kept":    kept,
		"dropped": dropped,
	}).Info("Filtro de mercado brasileiro aplicado ao lote")
}
