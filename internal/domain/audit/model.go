package audit

import (
	"time"

	"gorm.io/datatypes"
)

// Well-known audit actions written by the core state machines.
const (
	ActionResponseSubmitted = "response_submitted"
	ActionDraftSaved        = "draft_saved"
	ActionResponseReviewed  = "response_reviewed"
	ActionResponseApproved  = "response_approved"
	ActionResponseDenied    = "response_denied"
	ActionLOAReturned       = "loa_returned"
	ActionUnsuspended       = "unsuspended"
	ActionWarningExpired    = "warning_expired"
	ActionShiftScheduled    = "shift_scheduled"
	ActionShiftCancelled    = "shift_cancelled"
	ActionDisciplineIssued  = "discipline_issued"
)

type AuditLog struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	CorrelationID string         `json:"correlation_id" gorm:"index"`
	UserID        uint           `json:"user_id" gorm:"index"`
	Action        string         `json:"action" gorm:"index"`
	ResourceType  string         `json:"resource_type" gorm:"index"`
	ResourceID    string         `json:"resource_id"`
	OldData       datatypes.JSON `json:"old_data"`
	NewData       datatypes.JSON `json:"new_data"`
	Description   string         `json:"description"`
	CreatedAt     time.Time      `json:"created_at"`
}
