package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dorilitre/caau-apify-actor/infrastructure/database/postgres"
	"github.com/Dorilitre/caau-apify-actor/infrastructure/feed"
	"github.com/Dorilitre/caau-apify-actor/infrastructure/integrator/apify"
	"github.com/Dorilitre/caau-apify-actor/infrastructure/integrator/apify/apifyclient"
	"github.com/Dorilitre/caau-apify-actor/infrastructure/repository"
	"github.com/Dorilitre/caau-apify-actor/internal/api"
	"github.com/Dorilitre/caau-apify-actor/internal/config"
	"github.com/Dorilitre/caau-apify-actor/internal/scheduler"
	"github.com/Dorilitre/caau-apify-actor/internal/usecases/filtering"
	"github.com/Dorilitre/caau-apify-actor/internal/usecases/ingesting"
	"github.com/Dorilitre/caau-apify-actor/internal/usecases/normalizing"
	"github.com/Dorilitre/caau-apify-actor/internal/usecases/trending"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	productRepo := repository.NewProductRepository(pgConn)

	filterService := filtering.NewService(nil)
	mapperService := normalizing.NewService()

	ingestService := ingesting.NewService(
		listingSource(cfg),
		filterService,
		mapperService,
		productRepo,
		ingesting.Config{
			FilterOptions:     filterOptions(cfg.Filter),
			MaxConcurrentJobs: cfg.IngestSync.MaxConcurrentJobs,
			BatchSize:         cfg.IngestSync.BatchSize,
		},
	)

	trendingService := trending.NewProductTrendingService(productRepo)

	// Inicializa o agendador de ingestão
	ingestSyncService := scheduler.NewIngestSyncService(ingestService, cfg)

	if err := ingestSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de ingestão de anúncios")
	} else {
		logrus.Info("Agendador de ingestão de anúncios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		trendingService,
		ingestSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// listingSource escolhe a origem dos anúncios conforme a configuração
func listingSource(cfg *config.Config) ingesting.ListingSource {
	if cfg.IngestSync.SourceKind == "feed" {
		logrus.WithField("path", cfg.IngestSync.FeedFilePath).Info("Usando feed local como origem de anúncios")
		return feed.NewFileSource(cfg.IngestSync.FeedFilePath)
	}

	client := apifyclient.NewClient(cfg)
	return apify.New(cfg, client)
}

// filterOptions monta as opções do filtro a partir da configuração.
// Limites de preço menores ou iguais a zero significam sem limite.
func filterOptions(cfg config.Filter) filtering.Options {
	opts := filtering.Options{
		RequireBrazilSignals: cfg.RequireBrazilSignals,
		DropIfNoImage:        cfg.DropIfNoImage,
	}

	if cfg.MinPrice > 0 {
		opts.MinPrice = &cfg.MinPrice
	}
	if cfg.MaxPrice > 0 {
		opts.MaxPrice = &cfg.MaxPrice
	}

	return opts
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
