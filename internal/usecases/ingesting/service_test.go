package ingesting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	repomocks "github.com/Dorilitre/caau-apify-actor/infrastructure/repository/mocks"
	"github.com/Dorilitre/caau-apify-actor/internal/domain"
	"github.com/Dorilitre/caau-apify-actor/internal/usecases/filtering"
	"github.com/Dorilitre/caau-apify-actor/internal/usecases/ingesting/mocks"
	"github.com/Dorilitre/caau-apify-actor/internal/usecases/normalizing"
)

type quietObserver struct{}

func (quietObserver) BatchFiltered(input, kept, dropped int) {}

func brazilListing(id string) domain.RawListing {
	return domain.RawListing{
		ProductIDStr: id,
		Title:        "Produto " + id,
		Cover:        "https://cdn.example.com/" + id + ".jpg",
		FormatPrice:  "R$ 99,99",
		Currency:     "BRL",
	}
}

func vietnamListing(id string) domain.RawListing {
	return domain.RawListing{
		ProductIDStr:    id,
		Title:           "Sản phẩm " + id,
		Cover:           "https://cdn.example.com/" + id + ".jpg",
		Currency:        "VND",
		WarehouseRegion: "Ho Chi Minh, Vietnam",
	}
}

func TestIngestService_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockListingSource(ctrl)
	mockProductRepo := repomocks.NewMockProductRepository(ctrl)

	mockSource.EXPECT().Name().Return("apify").AnyTimes()

	// Cada chamada de gravação é capturada aqui para inspeção
	var saved [][]*domain.Product

	captureSave := func(products []*domain.Product) error {
		saved = append(saved, products)
		return nil
	}

	tests := []struct {
		name     string
		config   Config
		setup    func()
		validate func(t *testing.T, report *domain.IngestReport, err error)
	}{
		{
			name:   "Deve buscar, filtrar, mapear e armazenar anúncios brasileiros",
			config: Config{FilterOptions: filtering.DefaultOptions()},
			setup: func() {
				mockSource.EXPECT().
					FetchListings(gomock.Any()).
					Return([]domain.RawListing{
						brazilListing("br-1"),
						vietnamListing("vn-1"),
						brazilListing("br-2"),
					}, nil)

				mockProductRepo.EXPECT().
					SaveOrUpdateProducts(gomock.Any()).
					DoAndReturn(captureSave)
			},
			validate: func(t *testing.T, report *domain.IngestReport, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, report.BatchID)
				assert.Equal(t, "apify", report.Source)
				assert.Equal(t, 3, report.Fetched)
				assert.Equal(t, 2, report.Kept)
				assert.Equal(t, 1, report.Dropped)
				assert.Equal(t, 0, report.Duplicates)
				assert.Equal(t, 2, report.Stored)

				// A ordem de chegada é preservada até a gravação
				assert.Len(t, saved, 1)
				assert.Equal(t, "br-1", saved[0][0].PlatformID)
				assert.Equal(t, "br-2", saved[0][1].PlatformID)
				assert.Equal(t, "BRL", saved[0][0].Currency)
			},
		},
		{
			name:   "Anúncios duplicados no lote colapsam no primeiro",
			config: Config{FilterOptions: filtering.DefaultOptions()},
			setup: func() {
				first := brazilListing("777")
				first.Title = "Primeiro"
				second := brazilListing("777")
				second.Title = "Segundo"

				mockSource.EXPECT().
					FetchListings(gomock.Any()).
					Return([]domain.RawListing{first, second}, nil)

				mockProductRepo.EXPECT().
					SaveOrUpdateProducts(gomock.Any()).
					DoAndReturn(captureSave)
			},
			validate: func(t *testing.T, report *domain.IngestReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, report.Duplicates)
				assert.Equal(t, 1, report.Stored)

				assert.Len(t, saved, 1)
				assert.Len(t, saved[0], 1)
				assert.Equal(t, "Primeiro", saved[0][0].Title)
			},
		},
		{
			name: "Lote maior que o tamanho configurado é gravado em partes",
			config: Config{
				FilterOptions: filtering.DefaultOptions(),
				BatchSize:     2,
			},
			setup: func() {
				mockSource.EXPECT().
					FetchListings(gomock.Any()).
					Return([]domain.RawListing{
						brazilListing("br-1"),
						brazilListing("br-2"),
						brazilListing("br-3"),
						brazilListing("br-4"),
						brazilListing("br-5"),
					}, nil)

				mockProductRepo.EXPECT().
					SaveOrUpdateProducts(gomock.Any()).
					DoAndReturn(captureSave).
					Times(3)
			},
			validate: func(t *testing.T, report *domain.IngestReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 5, report.Stored)

				assert.Len(t, saved, 3)
				assert.Len(t, saved[0], 2)
				assert.Len(t, saved[1], 2)
				assert.Len(t, saved[2], 1)
				assert.Equal(t, "br-1", saved[0][0].PlatformID)
				assert.Equal(t, "br-5", saved[2][0].PlatformID)
			},
		},
		{
			name:   "Erro na origem aborta a ingestão",
			config: Config{FilterOptions: filtering.DefaultOptions()},
			setup: func() {
				mockSource.EXPECT().
					FetchListings(gomock.Any()).
					Return(nil, errors.New("apify indisponível"))
			},
			validate: func(t *testing.T, report *domain.IngestReport, err error) {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrSourceUnavailable))
				assert.Nil(t, report)
				assert.Empty(t, saved)
			},
		},
		{
			name:   "Erro de banco aborta a ingestão",
			config: Config{FilterOptions: filtering.DefaultOptions()},
			setup: func() {
				mockSource.EXPECT().
					FetchListings(gomock.Any()).
					Return([]domain.RawListing{brazilListing("br-1")}, nil)

				mockProductRepo.EXPECT().
					SaveOrUpdateProducts(gomock.Any()).
					Return(assert.AnError)
			},
			validate: func(t *testing.T, report *domain.IngestReport, err error) {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrStoreProducts))
				assert.Nil(t, report)
			},
		},
		{
			name:   "Origem vazia produz relatório zerado",
			config: Config{FilterOptions: filtering.DefaultOptions()},
			setup: func() {
				mockSource.EXPECT().
					FetchListings(gomock.Any()).
					Return([]domain.RawListing{}, nil)
			},
			validate: func(t *testing.T, report *domain.IngestReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, report.Fetched)
				assert.Equal(t, 0, report.Stored)
				assert.Empty(t, saved)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved = nil
			tt.setup()

			service := NewService(
				mockSource,
				filtering.NewService(quietObserver{}),
				normalizing.NewService(),
				mockProductRepo,
				tt.config,
			)

			report, err := service.RunOnce(context.Background())

			tt.validate(t, report, err)
		})
	}
}

func TestIngestService_RunOnce_ContextoCancelado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockListingSource(ctrl)
	mockProductRepo := repomocks.NewMockProductRepository(ctrl)

	mockSource.EXPECT().Name().Return("apify")
	mockSource.EXPECT().
		FetchListings(gomock.Any()).
		Return([]domain.RawListing{brazilListing("br-1")}, nil)

	service := NewService(
		mockSource,
		filtering.NewService(quietObserver{}),
		normalizing.NewService(),
		mockProductRepo,
		Config{FilterOptions: filtering.DefaultOptions()},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := service.RunOnce(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
}
