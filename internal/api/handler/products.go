package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Dorilitre/caau-apify-actor/internal/domain"
	"github.com/Dorilitre/caau-apify-actor/internal/usecases/trending"
	"github.com/Dorilitre/caau-apify-actor/pkg/apiErrors"
)

// Limite máximo de produtos por requisição para evitar respostas gigantes
const maxTrendingLimit = 200

// TrendingProductsResponse agrupa os produtos retornados e o total
type TrendingProductsResponse struct {
	Products []*domain.Product `json:"products"`
	Total    int               `json:"total"`
}

// GetTrendingProducts retorna os produtos ordenados pelo score de tendência
func GetTrendingProducts(service trending.TrendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				logrus.Error(err)
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		if limit > maxTrendingLimit {
			limit = maxTrendingLimit
		}

		// Buscar os produtos em tendência
		products, err := service.GetTrendingProducts(limit)
		if err != nil {
			logrus.Error("Erro ao buscar produtos em tendência:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produtos em tendência", nil)
			return
		}

		if products == nil {
			products = []*domain.Product{}
		}

		// Enviar resposta
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(TrendingProductsResponse{
			Products: products,
			Total:    len(products),
		})
		if err != nil {
			logrus.Error("Erro ao enviar resposta dos produtos:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetProductByPlatformID retorna um produto pelo identificador na plataforma de origem
func GetProductByPlatformID(service trending.TrendingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platformID := httprouter.ParamsFromContext(r.Context()).ByName("platform_id")
		if platformID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "platform_id não fornecido", nil)
			return
		}

		product, err := service.GetProductByPlatformID(platformID)
		if err != nil {
			if errors.Is(err, trending.ErrInvalidPlatformID) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "platform_id inválido", nil)
				return
			}

			logrus.Error("Erro ao buscar produto:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto", nil)
			return
		}

		if product == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Produto não encontrado", nil)
			return
		}

		// Enviar resposta
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(product)
		if err != nil {
			logrus.Error("Erro ao enviar resposta do produto:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
