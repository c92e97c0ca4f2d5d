package application

import (
	"fmt"

	"github.com/halcyon-rp/depthub/internal/domain/forms"
	"github.com/halcyon-rp/depthub/internal/repository"
	"github.com/halcyon-rp/depthub/pkg/apperrors"
	"github.com/halcyon-rp/depthub/pkg/types"
	"github.com/halcyon-rp/depthub/pkg/utils"
)

type FormService struct {
	Repos *repository.Repos
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{Repos: repos}
}

func (s *FormService) CreateForm(input forms.CreateFormDTO) (*forms.FormDefinition, error) {
	if input.RequiredReviewers < 0 {
		return nil, apperrors.BadRequest("required_reviewers must be >= 0")
	}
	def := &forms.FormDefinition{
		DepartmentID:          input.DepartmentID,
		Title:                 input.Title,
		Description:           input.Description,
		Category:              input.Category,
		AccessRoleIDs:         input.AccessRoleIDs,
		ReviewerRoleIDs:       input.ReviewerRoleIDs,
		FinalApproverRoleIDs:  input.FinalApproverRoleIDs,
		RequiredReviewers:     input.RequiredReviewers,
		RequiresFinalApproval: input.RequiresFinalApproval,
	}
	for i, q := range input.Questions {
		def.Questions = append(def.Questions, forms.Question{
			Prompt:   q.Prompt,
			Type:     q.Type,
			Required: q.Required,
			Choices:  q.Choices,
			Position: i,
		})
	}
	return def, s.Repos.Form.Create(def)
}

func (s *FormService) GetForm(id uint) (*forms.FormDefinition, error) {
	def, err := s.Repos.Form.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "form")
	}
	return def, nil
}

// ListAccessibleForms returns active forms the principal may submit to.
func (s *FormService) ListAccessibleForms(p types.Principal, departmentID uint) ([]forms.FormDefinition, error) {
	defs, err := s.Repos.Form.ListActive(departmentID)
	if err != nil {
		return nil, err
	}
	var visible []forms.FormDefinition
	for _, def := range defs {
		if p.IsAdmin || utils.HasRequiredRole(p.RoleIDs, def.AccessRoleIDs) {
			visible = append(visible, def)
		}
	}
	return visible, nil
}

func (s *FormService) UpdateForm(id uint, input forms.UpdateFormDTO) (*forms.FormDefinition, error) {
	def, err := s.Repos.Form.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "form")
	}
	if input.Title != nil {
		def.Title = *input.Title
	}
	if input.Description != nil {
		def.Description = *input.Description
	}
	if input.Category != nil {
		def.Category = *input.Category
	}
	if input.AccessRoleIDs != nil {
		def.AccessRoleIDs = input.AccessRoleIDs
	}
	if input.ReviewerRoleIDs != nil {
		def.ReviewerRoleIDs = input.ReviewerRoleIDs
	}
	if input.FinalApproverRoleIDs != nil {
		def.FinalApproverRoleIDs = input.FinalApproverRoleIDs
	}
	if input.RequiredReviewers != nil {
		if *input.RequiredReviewers < 0 {
			return nil, apperrors.BadRequest("required_reviewers must be >= 0")
		}
		def.RequiredReviewers = *input.RequiredReviewers
	}
	if input.RequiresFinalApproval != nil {
		def.RequiresFinalApproval = *input.RequiresFinalApproval
	}
	return def, s.Repos.Form.Save(def)
}

func (s *FormService) DeleteForm(id uint) error {
	if _, err := s.Repos.Form.GetByID(id); err != nil {
		return notFoundOr(err, "form")
	}
	return s.Repos.Form.SoftDelete(id)
}

// ReorderQuestions applies one reorder operation. Question identity and count
// are preserved; only positions change, written in a single transaction.
func (s *FormService) ReorderQuestions(formID uint, input forms.ReorderQuestionsDTO) (*forms.FormDefinition, error) {
	def, err := s.Repos.Form.GetByID(formID)
	if err != nil {
		return nil, notFoundOr(err, "form")
	}

	ordered := make([]forms.Question, len(def.Questions))
	copy(ordered, def.Questions)

	if input.Operation == forms.ReorderFullOrder {
		ordered, err = applyFullOrder(ordered, input.FullOrder)
	} else {
		ordered, err = applySingleMove(ordered, input)
	}
	if err != nil {
		return nil, err
	}

	positions := make(map[uint]int, len(ordered))
	for i, q := range ordered {
		positions[q.ID] = i
	}
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		return tx.Form.SaveQuestionPositions(formID, positions)
	})
	if err != nil {
		return nil, err
	}

	return s.Repos.Form.GetByID(formID)
}

func applySingleMove(ordered []forms.Question, input forms.ReorderQuestionsDTO) ([]forms.Question, error) {
	from := -1
	for i, q := range ordered {
		if q.ID == input.QuestionID {
			from = i
			break
		}
	}
	if from < 0 {
		return nil, apperrors.BadRequest("question does not belong to this form")
	}

	var to int
	switch input.Operation {
	case forms.ReorderUp:
		to = from - 1
	case forms.ReorderDown:
		to = from + 1
	case forms.ReorderTop:
		to = 0
	case forms.ReorderBottom:
		to = len(ordered) - 1
	case forms.ReorderToIndex:
		if input.ToIndex == nil {
			return nil, apperrors.BadRequest("to_index is required for toIndex operation")
		}
		to = *input.ToIndex
	default:
		return nil, apperrors.BadRequest(fmt.Sprintf("unknown reorder operation %q", input.Operation))
	}

	if to < 0 || to >= len(ordered) {
		return nil, apperrors.BadRequest("reorder target index out of range")
	}
	if to == from {
		return ordered, nil
	}

	q := ordered[from]
	ordered = append(ordered[:from], ordered[from+1:]...)
	ordered = append(ordered[:to], append([]forms.Question{q}, ordered[to:]...)...)
	return ordered, nil
}

func applyFullOrder(ordered []forms.Question, fullOrder []uint) ([]forms.Question, error) {
	if len(fullOrder) != len(ordered) {
		return nil, apperrors.BadRequest("full_order must list every question exactly once")
	}
	byID := make(map[uint]forms.Question, len(ordered))
	for _, q := range ordered {
		byID[q.ID] = q
	}
	result := make([]forms.Question, 0, len(fullOrder))
	seen := make(map[uint]bool, len(fullOrder))
	for _, id := range fullOrder {
		q, ok := byID[id]
		if !ok || seen[id] {
			return nil, apperrors.BadRequest("full_order must list every question exactly once")
		}
		seen[id] = true
		result = append(result, q)
	}
	return result, nil
}
