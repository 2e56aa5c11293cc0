package domain

import "time"

// IngestReport resume o resultado de uma execução completa do pipeline de
// ingestão: busca, filtro, normalização e gravação.
type IngestReport struct {
	BatchID    string    `json:"batch_id"`
	Source     string    `json:"source"`
	Fetched    int       `json:"fetched"`
	Kept       int       `json:"kept"`
	Dropped    int       `json:"dropped"`
	Duplicates int       `json:"duplicates"`
	Stored     int       `json:"stored"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// IngestSyncStatus é o instantâneo do agendador de ingestão exposto pela API
type IngestSyncStatus struct {
	Enabled         bool          `json:"sync_enabled"`
	CronSchedule    string        `json:"sync_cron"`
	Running         bool          `json:"sync_running"`
	LastStartedAt   time.Time     `json:"last_sync_started_at"`
	LastCompletedAt time.Time     `json:"last_sync_completed_at"`
	LastReport      *IngestReport `json:"last_report"`
}
