// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"github.com/mitchellh/mapstructure"
)

// SellerInfo agrupa os dados do vendedor embutidos no anúncio bruto.
// O identificador pode chegar como número ou string, em duas chaves distintas.
type SellerInfo struct {
	Name        string `json:"name" mapstructure:"name"`
	SellerID    any    `json:"seller_id" mapstructure:"seller_id"`
	SellerIDStr string `json:"seller_id_str" mapstructure:"seller_id_str"`
}

// RawListing representa um anúncio bruto vindo do dataset raspado. Os campos
// são todos opcionais e de tipagem heterogênea: preços e contadores podem
// chegar como número ou string dependendo da versão do scraper. Chaves não
// reconhecidas são preservadas em Extra sem interpretação.
type RawListing struct {
	ProductID       any         `json:"product_id" mapstructure:"product_id"`
	ProductIDStr    string      `json:"product_id_str" mapstructure:"product_id_str"`
	Title           string      `json:"title" mapstructure:"title"`
	Cover           string      `json:"cover" mapstructure:"cover"`
	Images          []string    `json:"images" mapstructure:"images"`
	FloorPrice      any         `json:"floor_price" mapstructure:"floor_price"`
	CeilingPrice    any         `json:"ceiling_price" mapstructure:"ceiling_price"`
	FormatPrice     string      `json:"format_price" mapstructure:"format_price"`
	Currency        string      `json:"currency" mapstructure:"currency"`
	WarehouseRegion string      `json:"warehouse_region" mapstructure:"warehouse_region"`
	SellerInfo      *SellerInfo `json:"seller_info" mapstructure:"seller_info"`
	ProductRating   any         `json:"product_rating" mapstructure:"product_rating"`
	ReviewCount     any         `json:"review_count" mapstructure:"review_count"`
	SoldCount       any         `json:"sold_count" mapstructure:"sold_count"`
	GlobalSoldCount any         `json:"global_sold_count" mapstructure:"global_sold_count"`
	Schema          any         `json:"schema" mapstructure:"schema"`
	ProductURL      string      `json:"product_url" mapstructure:"product_url"`

	// Extra recebe as chaves não mapeadas do item original
	Extra map[string]any `json:"-" mapstructure:",remain"`
}

// ListingFromMap converte um item do dataset em RawListing. Campos conhecidos
// com tipo divergente são coagidos quando possível; um item estruturalmente
// incompatível (ex.: seller_info que não é objeto) retorna erro para que a
// fonte registre e descarte o item.
func ListingFromMap(item map[string]any) (*RawListing, error) {
	listing := &RawListing{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           listing,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(item); err != nil {
		return nil, err
	}

	return listing, nil
}
