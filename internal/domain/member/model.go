package member

import "time"

type Status string

const (
	StatusInTraining     Status = "in_training"
	StatusPending        Status = "pending"
	StatusActive         Status = "active"
	StatusInactive       Status = "inactive"
	StatusLeaveOfAbsence Status = "leave_of_absence"
	StatusWarned1        Status = "warned_1"
	StatusWarned2        Status = "warned_2"
	StatusWarned3        Status = "warned_3"
	StatusSuspended      Status = "suspended"
	StatusBlacklisted    Status = "blacklisted"
)

// StepDownWarning returns the status one warning notch below s. Each expiring
// warning steps exactly one level; a member not currently warned is unchanged.
func StepDownWarning(s Status) Status {
	switch s {
	case StatusWarned3:
		return StatusWarned2
	case StatusWarned2:
		return StatusWarned1
	case StatusWarned1:
		return StatusActive
	default:
		return s
	}
}

// Member is a department roster entry. The expiry sweep is the only part of
// the core that mutates Status automatically.
type Member struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	DepartmentID  uint       `json:"department_id" gorm:"index"`
	UserID        uint       `json:"user_id" gorm:"index"`
	DiscordID     string     `json:"discord_id" gorm:"index"`
	Callsign      string     `json:"callsign"`
	Status        Status     `json:"status" gorm:"index;default:'pending'"`
	RankID        *uint      `json:"rank_id"`
	PrimaryTeamID *uint      `json:"primary_team_id"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	JoinedAt      *time.Time `json:"joined_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
