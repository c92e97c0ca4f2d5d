package shift

import "time"

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

type Shift struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	DepartmentID uint      `json:"department_id" gorm:"index"`
	MemberID     uint      `json:"member_id" gorm:"index"`
	StartTime    time.Time `json:"start_time" gorm:"index"`
	EndTime      time.Time `json:"end_time"`
	ShiftType    string    `json:"shift_type"`
	Status       Status    `json:"status" gorm:"default:'scheduled'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ConflictType string

const (
	ConflictOverlap          ConflictType = "overlap"
	ConflictInsufficientRest ConflictType = "insufficient_rest"
)

// Conflict describes why a proposed shift clashes with an existing one. A
// single existing shift can produce both conflict types.
type Conflict struct {
	Type    ConflictType `json:"type"`
	ShiftID uint         `json:"shift_id"`
	Detail  string       `json:"detail"`
}

type CreateShiftDTO struct {
	DepartmentID uint      `json:"department_id" binding:"required"`
	MemberID     uint      `json:"member_id" binding:"required"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
	ShiftType    string    `json:"shift_type"`
}
