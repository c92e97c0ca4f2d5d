package forms

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionShortAnswer    QuestionType = "short_answer"
	QuestionParagraph      QuestionType = "paragraph"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionCheckboxes     QuestionType = "checkboxes"
	QuestionBoolean        QuestionType = "boolean"
)

// FormDefinition is the admin-managed schema for a submittable form. Empty
// role lists mean open access for the corresponding gate.
type FormDefinition struct {
	ID                    uint                        `json:"id" gorm:"primaryKey"`
	DepartmentID          uint                        `json:"department_id" gorm:"index"`
	Title                 string                      `json:"title"`
	Description           string                      `json:"description"`
	Category              string                      `json:"category"`
	AccessRoleIDs         datatypes.JSONSlice[string] `json:"access_role_ids"`
	ReviewerRoleIDs       datatypes.JSONSlice[string] `json:"reviewer_role_ids"`
	FinalApproverRoleIDs  datatypes.JSONSlice[string] `json:"final_approver_role_ids"`
	RequiredReviewers     int                         `json:"required_reviewers"`
	RequiresFinalApproval bool                        `json:"requires_final_approval"`
	Questions             []Question                  `json:"questions" gorm:"foreignKey:FormID"`
	CreatedAt             time.Time                   `json:"created_at"`
	UpdatedAt             time.Time                   `json:"updated_at"`
	DeletedAt             gorm.DeletedAt              `json:"-" gorm:"index"`
}

type Question struct {
	ID       uint                        `json:"id" gorm:"primaryKey"`
	FormID   uint                        `json:"form_id" gorm:"index"`
	Prompt   string                      `json:"prompt"`
	Type     QuestionType                `json:"type"`
	Required bool                        `json:"required"`
	Choices  datatypes.JSONSlice[string] `json:"choices"`
	Position int                         `json:"position"`
}

type Status string

const (
	StatusDraft            Status = "draft"
	StatusPendingReview    Status = "pending_review"
	StatusPendingApproval  Status = "pending_approval"
	StatusApproved         Status = "approved"
	StatusDeniedByReview   Status = "denied_by_review"
	StatusDeniedByApproval Status = "denied_by_approval"
)

// Terminal reports whether no further transition can leave s.
func (s Status) Terminal() bool {
	switch s {
	case StatusApproved, StatusDeniedByReview, StatusDeniedByApproval:
		return true
	}
	return false
}

type Decision string

const (
	DecisionYes Decision = "yes"
	DecisionNo  Decision = "no"
)

// Answer holds one submitted answer. Value is a string, a list of strings
// (checkboxes) or a bool, mirroring the question type.
type Answer struct {
	QuestionID uint `json:"question_id"`
	Value      any  `json:"value"`
}

type FormResponse struct {
	ID      uint                        `json:"id" gorm:"primaryKey"`
	FormID  uint                        `json:"form_id" gorm:"index"`
	UserID  uint                        `json:"user_id" gorm:"index"`
	Answers datatypes.JSONSlice[Answer] `json:"answers"`
	Status  Status                      `json:"status" gorm:"index"`

	Decisions              []ReviewerDecision `json:"reviewer_decisions" gorm:"foreignKey:ResponseID"`
	ReviewersApprovedCount int                `json:"reviewers_approved_count"`
	ReviewersDeniedCount   int                `json:"reviewers_denied_count"`

	FinalApproverID       *uint      `json:"final_approver_id"`
	FinalApprovalDecision *bool      `json:"final_approval_decision"`
	FinalApprovedAt       *time.Time `json:"final_approved_at"`
	FinalApprovalComments string     `json:"final_approval_comments"`

	SubmittedAt *time.Time `json:"submitted_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ReviewerDecision struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ResponseID uint      `json:"response_id" gorm:"index"`
	UserID     uint      `json:"user_id"`
	Decision   Decision  `json:"decision"`
	Comments   string    `json:"comments"`
	ReviewedAt time.Time `json:"reviewed_at"`
}

// HasReviewed reports whether userID already recorded a decision.
func (r *FormResponse) HasReviewed(userID uint) bool {
	for _, d := range r.Decisions {
		if d.UserID == userID {
			return true
		}
	}
	return false
}
