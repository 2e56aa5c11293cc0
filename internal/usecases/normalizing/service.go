// Package normalizing converte anúncios brutos coletados para o esquema de
// produtos persistido no Supabase. A conversão nunca falha: campos ausentes
// ou malformados degradam para valores neutros e o anúncio segue no lote.
package normalizing

import (
	"math"
	"strings"

	"github.com/Dorilitre/caau-apify-actor/internal/domain"
	"github.com/Dorilitre/caau-apify-actor/internal/signals"
	"github.com/Dorilitre/caau-apify-actor/pkg/utils"
)

type Mapper interface {
	MapToSupabase(listing domain.RawListing) domain.Product
}

type Service struct{}

func NewService() Mapper {
	return &Service{}
}

// MapToSupabase projeta um anúncio bruto no registro de produto. Todo campo
// numérico sai não negativo e platform_id nunca sai vazio.
func (s *Service) MapToSupabase(listing domain.RawListing) domain.Product {
	title := strings.TrimSpace(listing.Title)
	if title == "" {
		title = "Untitled Product"
	}

	orders := utils.ToInt(listing.SoldCount)
	if orders <= 0 {
		orders = utils.ToInt(listing.GlobalSoldCount)
	}
	if orders < 0 {
		orders = 0
	}

	rating := utils.ToFloat64(listing.ProductRating)
	if math.IsNaN(rating) || rating < 0 {
		rating = 0
	}

	reviews := utils.ToInt(listing.ReviewCount)
	if reviews < 0 {
		reviews = 0
	}

	brazilSignals := signals.HasBrazilianCurrency(listing.FormatPrice, listing.Currency) ||
		signals.IsBrazilianWarehouse(listing.WarehouseRegion)

	var sellerName *string
	if listing.SellerInfo != nil {
		sellerName = optionalString(listing.SellerInfo.Name)
	}

	return domain.Product{
		PlatformID:   resolvePlatformID(listing),
		Title:        title,
		ImageURL:     signals.PickImageURL(listing.Cover, listing.Images),
		Price:        signals.ResolveListingPrice(listing.FloorPrice, listing.CeilingPrice, listing.FormatPrice),
		Orders24h:    orders,
		Rating:       rating,
		ReviewsCount: reviews,
		TrendingScore: signals.CalculateTrendingScore(
			orders,
			rating,
			signals.DefaultMaxSoldCount,
			signals.DefaultMaxRating,
		),
		ShopName:   sellerName,
		SellerID:   resolveSellerID(listing.SellerInfo),
		SellerName: sellerName,
		Currency:   signals.NormalizeCurrency(listing.Currency, listing.FormatPrice, brazilSignals),
	}
}

// O identificador textual tem precedência sobre o numérico porque ids do
// TikTok estouram a precisão de float64 ao atravessar JSON.
func resolvePlatformID(listing domain.RawListing) string {
	if id := signals.StringifyID(listing.ProductIDStr); id != "" {
		return id
	}
	return signals.CleanPlatformID(listing.ProductID)
}

func resolveSellerID(info *domain.SellerInfo) *string {
	if info == nil {
		return nil
	}

	if id := signals.StringifyID(info.SellerIDStr); id != "" {
		return &id
	}
	if id := signals.StringifyID(info.SellerID); id != "" {
		return &id
	}
	return nil
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
