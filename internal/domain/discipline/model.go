package discipline

import "time"

type ActionType string

const (
	ActionWarning        ActionType = "warning"
	ActionSuspension     ActionType = "suspension"
	ActionLeaveOfAbsence ActionType = "leave_of_absence"
	ActionDemotion       ActionType = "demotion"
	ActionTermination    ActionType = "termination"
)

// DisciplinaryAction is a time-boxed action against a member. Only the expiry
// sweep flips IsActive to false based on ExpiresAt; issuing actions is a
// business mutation handled by the admin surface.
type DisciplinaryAction struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	MemberID   uint       `json:"member_id" gorm:"index"`
	IssuerID   uint       `json:"issuer_id"`
	ActionType ActionType `json:"action_type" gorm:"index"`
	Reason     string     `json:"reason"`
	IssuedAt   time.Time  `json:"issued_at"`
	ExpiresAt  *time.Time `json:"expires_at" gorm:"index"`
	IsActive   bool       `json:"is_active" gorm:"index;default:true"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type IssueActionDTO struct {
	MemberID   uint       `json:"member_id" binding:"required"`
	ActionType ActionType `json:"action_type" binding:"required"`
	Reason     string     `json:"reason"`
	ExpiresAt  *time.Time `json:"expires_at"`
}
