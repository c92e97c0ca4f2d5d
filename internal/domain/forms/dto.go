package forms

type QuestionInput struct {
	Prompt   string       `json:"prompt" binding:"required"`
	Type     QuestionType `json:"type" binding:"required"`
	Required bool         `json:"required"`
	Choices  []string     `json:"choices"`
}

type CreateFormDTO struct {
	DepartmentID          uint            `json:"department_id"`
	Title                 string          `json:"title" binding:"required"`
	Description           string          `json:"description"`
	Category              string          `json:"category"`
	AccessRoleIDs         []string        `json:"access_role_ids"`
	ReviewerRoleIDs       []string        `json:"reviewer_role_ids"`
	FinalApproverRoleIDs  []string        `json:"final_approver_role_ids"`
	RequiredReviewers     int             `json:"required_reviewers"`
	RequiresFinalApproval bool            `json:"requires_final_approval"`
	Questions             []QuestionInput `json:"questions"`
}

type UpdateFormDTO struct {
	Title                 *string  `json:"title"`
	Description           *string  `json:"description"`
	Category              *string  `json:"category"`
	AccessRoleIDs         []string `json:"access_role_ids"`
	ReviewerRoleIDs       []string `json:"reviewer_role_ids"`
	FinalApproverRoleIDs  []string `json:"final_approver_role_ids"`
	RequiredReviewers     *int     `json:"required_reviewers"`
	RequiresFinalApproval *bool    `json:"requires_final_approval"`
}

// ReorderOp names a question reordering operation.
type ReorderOp string

const (
	ReorderUp        ReorderOp = "up"
	ReorderDown      ReorderOp = "down"
	ReorderTop       ReorderOp = "top"
	ReorderBottom    ReorderOp = "bottom"
	ReorderToIndex   ReorderOp = "toIndex"
	ReorderFullOrder ReorderOp = "fullOrder"
)

type ReorderQuestionsDTO struct {
	Operation  ReorderOp `json:"operation" binding:"required"`
	QuestionID uint      `json:"question_id"`
	ToIndex    *int      `json:"to_index"`
	FullOrder  []uint    `json:"full_order"`
}

type SubmitFormDTO struct {
	Answers []Answer `json:"answers" binding:"required"`
}

type SaveDraftDTO struct {
	Answers    []Answer `json:"answers" binding:"required"`
	ResponseID *uint    `json:"response_id"`
}

type ReviewDTO struct {
	Decision Decision `json:"decision" binding:"required"`
	Comments string   `json:"comments"`
}

type ApproveDTO struct {
	Approve  *bool  `json:"approve" binding:"required"`
	Comments string `json:"comments"`
}
