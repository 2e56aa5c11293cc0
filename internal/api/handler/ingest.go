package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Dorilitre/caau-apify-actor/internal/scheduler"
	"github.com/Dorilitre/caau-apify-actor/pkg/apiErrors"
)

// IngestJobServices contém os serviços de ingestão necessários para executar manualmente
type IngestJobServices struct {
	IngestSyncService *scheduler.IngestSyncService
}

// RunIngestJob dispara manualmente uma rodada de ingestão de anúncios
func RunIngestJob(services IngestJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunIngestJob")

		if services.IngestSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de ingestão não disponível", nil)
			return
		}

		services.IngestSyncService.TriggerManualSync()

		// Responder com sucesso
		response := map[string]any{
			"message": "Ingestão iniciada com sucesso",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetIngestStatus retorna o status da ingestão agendada
func GetIngestStatus(services IngestJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetIngestStatus")

		if services.IngestSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de ingestão não disponível", nil)
			return
		}

		status := services.IngestSyncService.GetStatus()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
