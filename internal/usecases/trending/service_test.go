package trending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Dorilitre/caau-apify-actor/infrastructure/repository/mocks"
	"github.com/Dorilitre/caau-apify-actor/internal/domain"
)

func TestProductTrendingService_GetTrendingProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewProductTrendingService(mockProductRepo)

	tests := []struct {
		name     string
		limit    int
		setup    func()
		validate func(t *testing.T, products []*domain.Product, err error)
	}{
		{
			name:  "Deve repassar o limite informado ao repositório",
			limit: 10,
			setup: func() {
				mockProductRepo.EXPECT().
					ListTrending(10).
					Return([]*domain.Product{
						{PlatformID: "111", TrendingScore: 0.93},
						{PlatformID: "222", TrendingScore: 0.45},
					}, nil)
			},
			validate: func(t *testing.T, products []*domain.Product, err error) {
				assert.NoError(t, err)
				assert.Len(t, products, 2)
				assert.Equal(t, "111", products[0].PlatformID)
			},
		},
		{
			name:  "Limite não informado usa o padrão",
			limit: 0,
			setup: func() {
				mockProductRepo.EXPECT().
					ListTrending(defaultLimit).
					Return([]*domain.Product{}, nil)
			},
			validate: func(t *testing.T, products []*domain.Product, err error) {
				assert.NoError(t, err)
				assert.Empty(t, products)
			},
		},
		{
			name:  "Erro do repositório é propagado",
			limit: 5,
			setup: func() {
				mockProductRepo.EXPECT().
					ListTrending(5).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, products []*domain.Product, err error) {
				assert.Error(t, err)
				assert.Nil(t, products)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			products, err := service.GetTrendingProducts(tt.limit)

			tt.validate(t, products, err)
		})
	}
}

func TestProductTrendingService_GetProductByPlatformID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewProductTrendingService(mockProductRepo)

	tests := []struct {
		name       string
		platformID string
		setup      func()
		validate   func(t *testing.T, product *domain.Product, err error)
	}{
		{
			name:       "Deve retornar o produto quando encontrado",
			platformID: "123456789",
			setup: func() {
				mockProductRepo.EXPECT().
					GetByPlatformID("123456789").
					Return(&domain.Product{PlatformID: "123456789", Title: "Fone Bluetooth"}, nil)
			},
			validate: func(t *testing.T, product *domain.Product, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, product)
				assert.Equal(t, "Fone Bluetooth", product.Title)
			},
		},
		{
			name:       "Deve remover espaços do identificador antes de consultar",
			platformID: "  123456789  ",
			setup: func() {
				mockProductRepo.EXPECT().
					GetByPlatformID("123456789").
					Return(&domain.Product{PlatformID: "123456789"}, nil)
			},
			validate: func(t *testing.T, product *domain.Product, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, product)
			},
		},
		{
			name:       "Identificador vazio retorna erro de validação",
			platformID: "   ",
			setup:      func() {},
			validate: func(t *testing.T, product *domain.Product, err error) {
				assert.ErrorIs(t, err, ErrInvalidPlatformID)
				assert.Nil(t, product)
			},
		},
		{
			name:       "Produto inexistente retorna nil sem erro",
			platformID: "999",
			setup: func() {
				mockProductRepo.EXPECT().
					GetByPlatformID("999").
					Return(nil, nil)
			},
			validate: func(t *testing.T, product *domain.Product, err error) {
				assert.NoError(t, err)
				assert.Nil(t, product)
			},
		},
		{
			name:       "Erro do repositório é envolvido e propagado",
			platformID: "123",
			setup: func() {
				mockProductRepo.EXPECT().
					GetByPlatformID("123").
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, product *domain.Product, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "erro ao buscar produto por platform_id")
				assert.Nil(t, product)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			product, err := service.GetProductByPlatformID(tt.platformID)

			tt.validate(t, product, err)
		})
	}
}
