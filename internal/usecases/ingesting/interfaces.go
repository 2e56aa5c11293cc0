package ingesting

import (
	"context"

	"github.com/Dorilitre/caau-apify-actor/internal/domain"
)

// ListingSource define a interface para obter anúncios brutos de uma origem externa
type ListingSource interface {
	// FetchListings busca todos os anúncios disponíveis na origem
	FetchListings(ctx context.Context) ([]domain.RawListing, error)

	// Name identifica a origem nos logs e no relatório de ingestão
	Name() string
}
