package main

import (
	"log"
	"time"

	"github.com/halcyon-rp/depthub/internal/application"
	"github.com/halcyon-rp/depthub/internal/config"
	"github.com/halcyon-rp/depthub/internal/config/db"
	"github.com/halcyon-rp/depthub/internal/repository"
)

// One-shot expiry sweep for running out of band (e.g. from a host cron) when
// the API server's background ticker is disabled.
func main() {
	config.LoadConfig()
	db.Init()

	if err := db.Migrate(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repos := repository.NewRepositories(db.DB)
	expiry := application.NewExpiryService(repos, nil)

	result := expiry.RunExpirySweep(time.Now())
	log.Printf("Expiry sweep completed: loa=%d warnings=%d suspensions=%d",
		result.LeaveOfAbsence, result.Warnings, result.Suspensions)

	audit := application.NewAuditService(repos)
	if err := audit.CleanupOldLogs(config.AuditRetentionDays); err != nil {
		log.Printf("Failed to cleanup old audit logs: %v", err)
	}
}
