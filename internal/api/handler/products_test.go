package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Dorilitre/caau-apify-actor/internal/api/handler/router"
	"github.com/Dorilitre/caau-apify-actor/internal/domain"
	"github.com/Dorilitre/caau-apify-actor/internal/usecases/trending"
	"github.com/Dorilitre/caau-apify-actor/internal/usecases/trending/mocks"
	"github.com/Dorilitre/caau-apify-actor/pkg/apiErrors"
)

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetTrendingProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockTrendingService(ctrl)
	rt := router.New(router.WithRoutes(Products(mockService)...))

	tests := []struct {
		name     string
		target   string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Deve retornar os produtos em tendência",
			target: "/v1/products/trending?limit=2",
			setup: func() {
				mockService.EXPECT().
					GetTrendingProducts(2).
					Return([]*domain.Product{
						{PlatformID: "111", Title: "Produto A", TrendingScore: 0.91},
						{PlatformID: "222", Title: "Produto B", TrendingScore: 0.77},
					}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var resp TrendingProductsResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, 2, resp.Total)
				assert.Equal(t, "111", resp.Products[0].PlatformID)
				assert.Equal(t, "222", resp.Products[1].PlatformID)
			},
		},
		{
			name:   "Sem parâmetro limit o serviço decide o padrão",
			target: "/v1/products/trending",
			setup: func() {
				mockService.EXPECT().
					GetTrendingProducts(0).
					Return([]*domain.Product{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var resp TrendingProductsResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, 0, resp.Total)
				assert.NotNil(t, resp.Products)
			},
		},
		{
			name:   "Limite acima do máximo é reduzido",
			target: "/v1/products/trending?limit=99999",
			setup: func() {
				mockService.EXPECT().
					GetTrendingProducts(maxTrendingLimit).
					Return(nil, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "Parâmetro limit inválido retorna 400",
			target: "/v1/products/trending?limit=abc",
			setup:  func() {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:   "Erro do serviço retorna 500",
			target: "/v1/products/trending",
			setup: func() {
				mockService.EXPECT().
					GetTrendingProducts(0).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)

			rt.ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestGetProductByPlatformID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockTrendingService(ctrl)
	rt := router.New(router.WithRoutes(Products(mockService)...))

	tests := []struct {
		name     string
		target   string
		setup    func()
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Deve retornar o produto pelo platform_id",
			target: "/v1/products/platform/123456789",
			setup: func() {
				mockService.EXPECT().
					GetProductByPlatformID("123456789").
					Return(&domain.Product{PlatformID: "123456789", Title: "Fone Bluetooth"}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var product domain.Product
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
				assert.Equal(t, "Fone Bluetooth", product.Title)
			},
		},
		{
			name:   "Produto inexistente retorna 404",
			target: "/v1/products/platform/000",
			setup: func() {
				mockService.EXPECT().
					GetProductByPlatformID("000").
					Return(nil, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Equal(t, apiErrors.ErrResourceNotFound, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:   "Identificador rejeitado pelo serviço retorna 400",
			target: "/v1/products/platform/%20%20",
			setup: func() {
				mockService.EXPECT().
					GetProductByPlatformID("  ").
					Return(nil, trending.ErrInvalidPlatformID)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:   "Erro do serviço retorna 500",
			target: "/v1/products/platform/123",
			setup: func() {
				mockService.EXPECT().
					GetProductByPlatformID("123").
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)

			rt.ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}
