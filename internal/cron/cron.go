package cron

import (
	"log"
	"time"

	"github.com/halcyon-rp/depthub/internal/application"
	"github.com/halcyon-rp/depthub/internal/config"
)

// StartExpirySweep runs the disciplinary/LOA expiry sweep on the configured
// interval. The first pass runs immediately so restarts do not delay overdue
// reversions.
func StartExpirySweep(expiryService *application.ExpiryService) {
	interval, err := time.ParseDuration(config.SweepInterval)
	if err != nil {
		log.Printf("Invalid SWEEP_INTERVAL %q, falling back to 1h: %v", config.SweepInterval, err)
		interval = time.Hour
	}

	go func() {
		log.Printf("Starting expiry sweep task (interval: %s)", interval)

		result := expiryService.RunExpirySweep(time.Now())
		log.Printf("Expiry sweep completed: loa=%d warnings=%d suspensions=%d",
			result.LeaveOfAbsence, result.Warnings, result.Suspensions)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			result := expiryService.RunExpirySweep(time.Now())
			log.Printf("Expiry sweep completed: loa=%d warnings=%d suspensions=%d",
				result.LeaveOfAbsence, result.Warnings, result.Suspensions)
		}
	}()
}

// StartCleanupTask prunes audit logs past the configured retention every
// 24 hours.
func StartCleanupTask(auditService *application.AuditService) {
	retention := config.AuditRetentionDays

	go func() {
		log.Printf("Starting background cleanup task (retention: %d days)", retention)

		if err := auditService.CleanupOldLogs(retention); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			log.Println("Running scheduled audit log cleanup...")
			if err := auditService.CleanupOldLogs(retention); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			} else {
				log.Println("Audit log cleanup completed successfully")
			}
		}
	}()
}
