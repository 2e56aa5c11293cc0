// Package apify lê anúncios brutos de um dataset produzido por um ator do
// Apify, paginando até esgotar os itens disponíveis.
package apify

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/Dorilitre/caau-apify-actor/infrastructure/integrator/apify/apifyclient"
	"github.com/Dorilitre/caau-apify-actor/internal/config"
	"github.com/Dorilitre/caau-apify-actor/internal/domain"
	"github.com/Dorilitre/caau-apify-actor/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultPageSize = 500

type DatasetSource struct {
	cfg    *config.Config
	Client apifyclient.Client
}

func New(cfg *config.Config, client apifyclient.Client) *DatasetSource {
	return &DatasetSource{
		cfg:    cfg,
		Client: client,
	}
}

func (s *DatasetSource) Name() string {
	return "apify"
}

// FetchListings percorre o dataset página a página. Itens que não têm a
// estrutura de um anúncio são registrados e ignorados sem abortar a coleta.
func (s *DatasetSource) FetchListings(ctx context.Context) ([]domain.RawListing, error) {
	pageSize := s.cfg.Apify.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	listings := make([]domain.RawListing, 0)
	offset := 0

	for {
		items, err := s.Client.GetDatasetItems(ctx, apifyclient.DatasetItemsParams{
			DatasetID: s.cfg.Apify.DatasetID,
			Offset:    offset,
			Limit:     pageSize,
		})
		if err != nil {
			return nil, err
		}

		for _, item := range items {
			listing, err := domain.ListingFromMap(item)
			if err != nil {
				raw, _ := json.Marshal(item)
				logrus.WithError(err).
					WithField("item", utils.PrettyJson(raw)).
					Warn("Item do dataset com estrutura inesperada ignorado")
				continue
			}
			listings = append(listings, *listing)
		}

		if len(items) < pageSize {
			break
		}
		offset += pageSize
	}

	logrus.WithFields(logrus.Fields{
		"dataset_id": s.cfg.Apify.DatasetID,
		"total":      len(listings),
	}).Info("Anúncios obtidos do dataset do Apify")

	return listings, nil
}
