package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Dorilitre/caau-apify-actor/internal/config"
	"github.com/Dorilitre/caau-apify-actor/internal/domain"
	"github.com/Dorilitre/caau-apify-actor/internal/usecases/ingesting"
)

// IngestSyncConfig representa a configuração do agendador de ingestão de anúncios
type IngestSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	BatchSize         int
	SyncEnabled       bool
}

// IngestSyncService gerencia o agendamento e execução da ingestão de anúncios
type IngestSyncService struct {
	scheduler           *gocron.Scheduler
	config              IngestSyncConfig
	appConfig           *config.Config
	ingester            ingesting.Ingester
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.IngestReport
}

// NewIngestSyncService cria uma nova instância do serviço de ingestão agendada
func NewIngestSyncService(
	ingester ingesting.Ingester,
	appConfig *config.Config,
) *IngestSyncService {
	// Criar a configuração com base na config global
	syncConfig := IngestSyncConfig{
		CronSchedule:      appConfig.IngestSync.CronSchedule,
		MaxConcurrentJobs: appConfig.IngestSync.MaxConcurrentJobs,
		BatchSize:         appConfig.IngestSync.BatchSize,
		SyncEnabled:       appConfig.IngestSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"batch_size":          syncConfig.BatchSize,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de ingestão carregada")

	return &IngestSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		ingester:    ingester,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *IngestSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Ingestão agendada de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de ingestão de anúncios")

	// Agendar a ingestão
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runIngest(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ingestão de anúncios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de ingestão de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// runIngest executa uma ingestão completa, garantindo uma execução por vez
func (s *IngestSyncService) runIngest(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ingestão de anúncios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando ingestão de anúncios")

	report, err := s.ingester.RunOnce(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na ingestão agendada de anúncios")
		return
	}

	s.lastReport = report
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"batch_id": report.BatchID,
		"fetched":  report.Fetched,
		"stored":   report.Stored,
		"duration": time.Since(startTime).String(),
	}).Info("Ingestão agendada de anúncios concluída")
}

// TriggerManualSync inicia manualmente uma ingestão de anúncios
func (s *IngestSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Ingestão de anúncios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando ingestão manual de anúncios")
	go s.runIngest(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *IngestSyncService) GetStatus() domain.IngestSyncStatus {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return domain.IngestSyncStatus{
		Enabled:         s.config.SyncEnabled,
		CronSchedule:    s.config.CronSchedule,
		Running:         running,
		LastStartedAt:   s.lastSyncStartedAt,
		LastCompletedAt: s.lastSyncCompletedAt,
		LastReport:      s.lastReport,
	}
}
