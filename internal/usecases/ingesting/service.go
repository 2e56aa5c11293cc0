// Package ingesting orquestra o pipeline de ingestão: busca anúncios brutos
// na origem configurada, filtra para o mercado brasileiro, converte para o
// esquema de produtos e grava o resultado em lotes.
package ingesting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Dorilitre/caau-apify-actor/infrastructure/repository"
	"github.com/Dorilitre/caau-apify-actor/internal/domain"
	"github.com/Dorilitre/caau-apify-actor/internal/usecases/filtering"
	"github.com/Dorilitre/caau-apify-actor/internal/usecases/normalizing"
)

const (
	defaultMaxConcurrentJobs = 4
	defaultBatchSize         = 100
)

type Ingester interface {
	RunOnce(ctx context.Context) (*domain.IngestReport, error)
}

// Config representa os parâmetros de execução de uma ingestão
type Config struct {
	FilterOptions     filtering.Options
	MaxConcurrentJobs int
	BatchSize         int
}

type Service struct {
	source      ListingSource
	filter      filtering.Filter
	mapper      normalizing.Mapper
	productRepo repository.ProductRepository
	config      Config
}

func NewService(
	source ListingSource,
	filter filtering.Filter,
	mapper normalizing.Mapper,
	productRepo repository.ProductRepository,
	config Config,
) Ingester {
	if config.MaxConcurrentJobs <= 0 {
		config.MaxConcurrentJobs = defaultMaxConcurrentJobs
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaultBatchSize
	}

	return &Service{
		source:      source,
		filter:      filter,
		mapper:      mapper,
		productRepo: productRepo,
		config:      config,
	}
}

// RunOnce executa uma ingestão completa e retorna o relatório do lote.
// Falhas na origem ou no banco abortam a execução; anúncios malformados não.
func (s *Service) RunOnce(ctx context.Context) (*domain.IngestReport, error) {
	report := &domain.IngestReport{
		BatchID:   uuid.NewString(),
		Source:    s.source.Name(),
		StartedAt: time.Now(),
	}

	logrus.WithFields(logrus.Fields{
		"batch_id": report.BatchID,
		"source":   report.Source,
	}).Info("Iniciando ingestão de anúncios")

	listings, err := s.source.FetchListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	report.Fetched = len(listings)

	kept := s.filter.FilterBrazil(listings, s.config.FilterOptions)
	report.Kept = len(kept)
	report.Dropped = report.Fetched - report.Kept

	products := s.mapListings(kept)

	unique := dedupeByPlatformID(products)
	report.Duplicates = len(products) - len(unique)

	for start := 0; start < len(unique); start += s.config.BatchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := start + s.config.BatchSize
		if end > len(unique) {
			end = len(unique)
		}

		if err := s.productRepo.SaveOrUpdateProducts(unique[start:end]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreProducts, err)
		}
		report.Stored += end - start
	}

	report.FinishedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"batch_id":   report.BatchID,
		"source":     report.Source,
		"fetched":    report.Fetched,
		"kept":       report.Kept,
		"dropped":    report.Dropped,
		"duplicates": report.Duplicates,
		"stored":     report.Stored,
		"duration":   report.FinishedAt.Sub(report.StartedAt).String(),
	}).Info("Ingestão de anúncios concluída")

	return report, nil
}

// mapListings converte os anúncios em paralelo preservando a ordem de entrada
func (s *Service) mapListings(listings []domain.RawListing) []*domain.Product {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	results := make([]*domain.Product, len(listings))
	var wg sync.WaitGroup

	for i, listing := range listings {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(idx int, l domain.RawListing) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			product := s.mapper.MapToSupabase(l)
			results[idx] = &product
		}(i, listing)
	}

	wg.Wait()

	return results
}

// O upsert grava o lote em uma única instrução e o Postgres rejeita o mesmo
// platform_id duas vezes na mesma instrução. O primeiro anúncio vence.
func dedupeByPlatformID(products []*domain.Product) []*domain.Product {
	seen := make(map[string]bool, len(products))
	unique := make([]*domain.Product, 0, len(products))

	for _, product := range products {
		if seen[product.PlatformID] {
			logrus.WithField("platform_id", product.PlatformID).
				Debug("Anúncio duplicado no lote descartado")
			continue
		}
		seen[product.PlatformID] = true
		unique = append(unique, product)
	}

	return unique
}
