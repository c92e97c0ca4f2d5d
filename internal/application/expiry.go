package application

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/halcyon-rp/depthub/internal/domain/audit"
	"github.com/halcyon-rp/depthub/internal/domain/discipline"
	"github.com/halcyon-rp/depthub/internal/domain/member"
	"github.com/halcyon-rp/depthub/internal/repository"
)

// RoleRestorer re-grants external role assignments (Discord) once a
// time-boxed action ends. The default implementation only logs; the real sync
// lives outside this service.
type RoleRestorer interface {
	RestoreRoles(memberID uint, discordID string) error
}

type logRoleRestorer struct{}

func (logRoleRestorer) RestoreRoles(memberID uint, discordID string) error {
	log.Printf("role restore requested for member %d (discord %s)", memberID, discordID)
	return nil
}

func NewLogRoleRestorer() RoleRestorer { return logRoleRestorer{} }

type SweepResult struct {
	LeaveOfAbsence int `json:"leave_of_absence"`
	Warnings       int `json:"warnings"`
	Suspensions    int `json:"suspensions"`
}

// ExpiryService reverts time-boxed member states once their disciplinary
// action rows expire. A sweep is idempotent: rows are selected on
// is_active = true, so re-running after a partial failure only touches
// what is still pending.
type ExpiryService struct {
	Repos *repository.Repos
	Roles RoleRestorer
}

func NewExpiryService(repos *repository.Repos, roles RoleRestorer) *ExpiryService {
	if roles == nil {
		roles = NewLogRoleRestorer()
	}
	return &ExpiryService{Repos: repos, Roles: roles}
}

// RunExpirySweep processes each action type independently. A single row's
// failure is logged and skipped; the sweep never stops early.
func (s *ExpiryService) RunExpirySweep(now time.Time) SweepResult {
	return SweepResult{
		LeaveOfAbsence: s.sweepType(discipline.ActionLeaveOfAbsence, now),
		Warnings:       s.sweepType(discipline.ActionWarning, now),
		Suspensions:    s.sweepType(discipline.ActionSuspension, now),
	}
}

func (s *ExpiryService) sweepType(actionType discipline.ActionType, now time.Time) int {
	rows, err := s.Repos.Discipline.ListExpired(actionType, now)
	if err != nil {
		log.Printf("expiry sweep: listing expired %s rows: %v", actionType, err)
		return 0
	}

	reverted := 0
	for _, row := range rows {
		err := s.Repos.ExecTx(func(tx *repository.Repos) error {
			return s.expireOne(tx, row.ID, now)
		})
		if err != nil {
			log.Printf("expiry sweep: action %d (%s): %v", row.ID, actionType, err)
			continue
		}
		reverted++
	}
	return reverted
}

func (s *ExpiryService) expireOne(tx *repository.Repos, actionID uint, now time.Time) error {
	// Re-read inside the transaction; a concurrent sweep may have
	// deactivated the row since the listing.
	action, err := tx.Discipline.GetByID(actionID)
	if err != nil {
		return err
	}
	if !action.IsActive {
		return nil
	}

	m, err := tx.Member.GetByIDForUpdate(action.MemberID)
	if err != nil {
		return err
	}

	oldStatus := m.Status
	var auditAction string

	switch action.ActionType {
	case discipline.ActionLeaveOfAbsence:
		m.Status = member.StatusActive
		auditAction = audit.ActionLOAReturned
	case discipline.ActionSuspension:
		m.Status = member.StatusActive
		auditAction = audit.ActionUnsuspended
	case discipline.ActionWarning:
		// Each expiring warning steps down exactly one notch, even when
		// several expire in the same sweep.
		m.Status = member.StepDownWarning(m.Status)
		auditAction = audit.ActionWarningExpired
	default:
		return fmt.Errorf("action type %s is not time-boxed", action.ActionType)
	}

	action.IsActive = false
	if err := tx.Discipline.Save(action); err != nil {
		return err
	}
	if err := tx.Member.Save(m); err != nil {
		return err
	}

	oldData, _ := json.Marshal(map[string]any{"status": oldStatus})
	newData, _ := json.Marshal(map[string]any{"status": m.Status, "action_id": action.ID})
	entry := &audit.AuditLog{
		CorrelationID: uuid.NewString(),
		UserID:        m.UserID,
		Action:        auditAction,
		ResourceType:  "member",
		ResourceID:    fmt.Sprintf("%d", m.ID),
		OldData:       oldData,
		NewData:       newData,
		Description:   fmt.Sprintf("%s expired at %s", action.ActionType, now.Format(time.RFC3339)),
	}
	if err := tx.Audit.CreateAuditLog(entry); err != nil {
		return err
	}

	if action.ActionType != discipline.ActionWarning {
		if err := s.Roles.RestoreRoles(m.ID, m.DiscordID); err != nil {
			// External role sync failures do not roll back the revert.
			log.Printf("expiry sweep: restoring roles for member %d: %v", m.ID, err)
		}
	}
	return nil
}
