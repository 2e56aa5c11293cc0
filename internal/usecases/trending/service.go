package trending

import (
	"strings"

	"github.com/Dorilitre/caau-apify-actor/infrastructure/repository"
	"github.com/Dorilitre/caau-apify-actor/internal/domain"
	"github.com/pkg/errors"
)

const defaultLimit = 50

// ErrInvalidPlatformID indica que o identificador informado está vazio ou malformado
var ErrInvalidPlatformID = errors.New("invalid platform id")

type TrendingService interface {
	GetTrendingProducts(limit int) ([]*domain.Product, error)
	GetProductByPlatformID(platformID string) (*domain.Product, error)
}

type ProductTrendingService struct {
	ProductRepository repository.ProductRepository
}

func NewProductTrendingService(productRepository repository.ProductRepository) TrendingService {
	return &ProductTrendingService{
		ProductRepository: productRepository,
	}
}

func (s *ProductTrendingService) GetTrendingProducts(limit int) ([]*domain.Product, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	products, err := s.ProductRepository.ListTrending(limit)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductTrendingService) GetProductByPlatformID(platformID string) (*domain.Product, error) {
	platformID = strings.TrimSpace(platformID)
	if platformID == "" {
		return nil, ErrInvalidPlatformID
	}

	product, err := s.ProductRepository.GetByPlatformID(platformID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar produto por platform_id")
	}
	return product, nil
}
