package service

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

// StatusReport is the diagnostic payload. Env var fields report presence
// only, never values.
type StatusReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// StatusService reports backend and database health. Check never fails:
// every error is rendered into the status strings.
type StatusService interface {
	Check(ctx context.Context) StatusReport
}

type statusService struct {
	store DocumentStore
	log   zerolog.Logger
}

// NewStatusService creates a new status service.
func NewStatusService(store DocumentStore, log zerolog.Logger) StatusService {
	return &statusService{store: store, log: log}
}

// Check probes the store by listing collection names and reports distinct
// states for "not configured", "connected" and "connected but listing failed".
func (s *statusService) Check(ctx context.Context) StatusReport {
	report := StatusReport{
		Backend:          "Running",
		Database:         "Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.store.Configured() {
		report.ConnectionStatus = "Connected"
		collections, err := s.store.ListCollections(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("diagnostic collection listing failed")
			report.Database = "Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			report.Collections = collections
			report.Database = "Connected & Working"
		}
	}

	report.DatabaseURL = setOrNot("DATABASE_URL")
	report.DatabaseName = setOrNot("DATABASE_NAME")
	return report
}

func setOrNot(key string) string {
	if os.Getenv(key) != "" {
		return "Set"
	}
	return "Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
