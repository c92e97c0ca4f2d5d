package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/halcyon-rp/depthub/internal/domain/audit"
	"github.com/halcyon-rp/depthub/internal/domain/forms"
	"github.com/halcyon-rp/depthub/internal/repository"
	"github.com/halcyon-rp/depthub/pkg/apperrors"
	"github.com/halcyon-rp/depthub/pkg/types"
	"github.com/halcyon-rp/depthub/pkg/utils"
	"gorm.io/gorm"
)

// ResponseService drives the response lifecycle: draft, submission, review
// aggregation and final approval. Every transition loads the current row and
// form metadata, validates all preconditions against that snapshot, then
// writes once inside a transaction holding a row lock.
type ResponseService struct {
	Repos      *repository.Repos
	Moderation *ModerationService
	now        func() time.Time
}

func NewResponseService(repos *repository.Repos, moderation *ModerationService) *ResponseService {
	return &ResponseService{Repos: repos, Moderation: moderation, now: time.Now}
}

func notFoundOr(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(what + " not found")
	}
	return err
}

func (s *ResponseService) SubmitForm(p types.Principal, formID uint, answers []forms.Answer) (*forms.FormResponse, error) {
	def, err := s.Repos.Form.GetByID(formID)
	if err != nil {
		return nil, notFoundOr(err, "form")
	}
	if !utils.HasRequiredRole(p.RoleIDs, def.AccessRoleIDs) {
		return nil, apperrors.Forbidden("you do not have access to this form")
	}

	validation := s.Moderation.ValidateFormContent(ValidateContentInput{
		UserID:  p.UserID,
		FormID:  formID,
		Answers: answers,
	})
	if !validation.IsValid {
		return nil, apperrors.BadRequest("submission rejected: " + strings.Join(validation.Errors, "; "))
	}

	event := forms.SubmitEvent(def.RequiredReviewers, def.RequiresFinalApproval)
	status, err := forms.Transition(forms.StatusDraft, event)
	if err != nil {
		return nil, apperrors.Internal("computing submit transition", err)
	}

	var out *forms.FormResponse
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		now := s.now()

		// An existing draft is promoted in place instead of duplicated.
		draft, err := tx.Response.FindDraft(formID, p.UserID)
		if err != nil {
			return err
		}
		if draft != nil {
			draft.Answers = answers
			draft.Status = status
			draft.SubmittedAt = &now
			if err := tx.Response.Save(draft); err != nil {
				return err
			}
			out = draft
		} else {
			resp := &forms.FormResponse{
				FormID:      formID,
				UserID:      p.UserID,
				Answers:     answers,
				Status:      status,
				SubmittedAt: &now,
			}
			if err := tx.Response.Create(resp); err != nil {
				return err
			}
			if resp.ID == 0 {
				return apperrors.Internal("response insert returned no row", nil)
			}
			out = resp
		}

		s.logTransition(tx, p.UserID, audit.ActionResponseSubmitted, out,
			fmt.Sprintf("form %d submitted, initial status %s", formID, status))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SaveDraft upserts the caller's draft for a form. Drafts are not screened by
// the moderation filter; only submission is.
func (s *ResponseService) SaveDraft(p types.Principal, formID uint, answers []forms.Answer, responseID *uint) (*forms.FormResponse, error) {
	def, err := s.Repos.Form.GetByID(formID)
	if err != nil {
		return nil, notFoundOr(err, "form")
	}
	if !utils.HasRequiredRole(p.RoleIDs, def.AccessRoleIDs) {
		return nil, apperrors.Forbidden("you do not have access to this form")
	}

	var out *forms.FormResponse
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		var draft *forms.FormResponse

		if responseID != nil {
			existing, err := tx.Response.GetByIDForUpdate(*responseID)
			if err != nil {
				return notFoundOr(err, "response")
			}
			if existing.UserID != p.UserID {
				return apperrors.Forbidden("response belongs to another user")
			}
			if existing.FormID != formID {
				return apperrors.BadRequest("response belongs to another form")
			}
			if existing.Status != forms.StatusDraft {
				return apperrors.BadRequest("response is no longer a draft")
			}
			draft = existing
		} else {
			found, err := tx.Response.FindDraft(formID, p.UserID)
			if err != nil {
				return err
			}
			draft = found
		}

		if draft != nil {
			draft.Answers = answers
			if err := tx.Response.Save(draft); err != nil {
				return err
			}
			out = draft
		} else {
			resp := &forms.FormResponse{
				FormID:  formID,
				UserID:  p.UserID,
				Answers: answers,
				Status:  forms.StatusDraft,
			}
			if err := tx.Response.Create(resp); err != nil {
				return err
			}
			out = resp
		}

		s.logTransition(tx, p.UserID, audit.ActionDraftSaved, out, "draft saved")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ResponseService) ReviewResponse(p types.Principal, responseID uint, decision forms.Decision, comments string) (*forms.FormResponse, error) {
	if decision != forms.DecisionYes && decision != forms.DecisionNo {
		return nil, apperrors.BadRequest("decision must be yes or no")
	}

	var out *forms.FormResponse
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		resp, err := tx.Response.GetByIDForUpdate(responseID)
		if err != nil {
			return notFoundOr(err, "response")
		}
		def, err := tx.Form.GetByID(resp.FormID)
		if err != nil {
			return notFoundOr(err, "form")
		}

		if resp.Status != forms.StatusPendingReview {
			return apperrors.BadRequest("response is not pending review")
		}
		if !utils.HasRequiredRole(p.RoleIDs, def.ReviewerRoleIDs) {
			return apperrors.Forbidden("you are not a reviewer for this form")
		}
		if resp.HasReviewed(p.UserID) {
			return apperrors.BadRequest("you have already reviewed this response")
		}

		now := s.now()
		d := &forms.ReviewerDecision{
			ResponseID: resp.ID,
			UserID:     p.UserID,
			Decision:   decision,
			Comments:   comments,
			ReviewedAt: now,
		}
		if err := tx.Response.AppendDecision(d); err != nil {
			return err
		}
		resp.Decisions = append(resp.Decisions, *d)
		if decision == forms.DecisionYes {
			resp.ReviewersApprovedCount++
		} else {
			resp.ReviewersDeniedCount++
		}

		event, resolved := forms.ReviewResolution(
			resp.ReviewersApprovedCount,
			resp.ReviewersDeniedCount,
			def.RequiredReviewers,
			def.RequiresFinalApproval,
		)
		if resolved {
			next, err := forms.Transition(resp.Status, event)
			if err != nil {
				return apperrors.Internal("resolving review transition", err)
			}
			resp.Status = next
		}

		if err := tx.Response.Save(resp); err != nil {
			return err
		}

		s.logTransition(tx, p.UserID, audit.ActionResponseReviewed, resp,
			fmt.Sprintf("review recorded (%s), status %s", decision, resp.Status))
		out = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ResponseService) ApproveResponse(p types.Principal, responseID uint, approve bool, comments string) (*forms.FormResponse, error) {
	var out *forms.FormResponse
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		resp, err := tx.Response.GetByIDForUpdate(responseID)
		if err != nil {
			return notFoundOr(err, "response")
		}
		def, err := tx.Form.GetByID(resp.FormID)
		if err != nil {
			return notFoundOr(err, "form")
		}

		if resp.Status != forms.StatusPendingApproval {
			return apperrors.BadRequest("response is not pending approval")
		}
		if !utils.HasRequiredRole(p.RoleIDs, def.FinalApproverRoleIDs) {
			return apperrors.Forbidden("you are not a final approver for this form")
		}

		event := forms.EventFinalDenied
		action := audit.ActionResponseDenied
		if approve {
			event = forms.EventFinalApproved
			action = audit.ActionResponseApproved
		}
		next, err := forms.Transition(resp.Status, event)
		if err != nil {
			return apperrors.Internal("resolving approval transition", err)
		}

		now := s.now()
		resp.Status = next
		resp.FinalApproverID = &p.UserID
		resp.FinalApprovalDecision = &approve
		resp.FinalApprovedAt = &now
		resp.FinalApprovalComments = comments

		if err := tx.Response.Save(resp); err != nil {
			return err
		}

		s.logTransition(tx, p.UserID, action, resp,
			fmt.Sprintf("final decision %t, status %s", approve, resp.Status))
		out = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetResponse enforces read access: the submitter, a reviewer, a final
// approver or an admin may view a response.
func (s *ResponseService) GetResponse(p types.Principal, responseID uint) (*forms.FormResponse, error) {
	resp, err := s.Repos.Response.GetByID(responseID)
	if err != nil {
		return nil, notFoundOr(err, "response")
	}
	if resp.UserID == p.UserID || p.IsAdmin {
		return resp, nil
	}
	def, err := s.Repos.Form.GetByID(resp.FormID)
	if err != nil {
		return nil, notFoundOr(err, "form")
	}
	if len(def.ReviewerRoleIDs) > 0 && utils.HasRequiredRole(p.RoleIDs, def.ReviewerRoleIDs) {
		return resp, nil
	}
	if len(def.FinalApproverRoleIDs) > 0 && utils.HasRequiredRole(p.RoleIDs, def.FinalApproverRoleIDs) {
		return resp, nil
	}
	return nil, apperrors.Forbidden("you do not have access to this response")
}

func (s *ResponseService) ListMyResponses(p types.Principal) ([]forms.FormResponse, error) {
	return s.Repos.Response.ListByUser(p.UserID)
}

// ListPendingReview returns the review queue: pending_review responses on
// forms whose reviewer role list intersects the caller's roles.
func (s *ResponseService) ListPendingReview(p types.Principal) ([]forms.FormResponse, error) {
	return s.listQueue(p, forms.StatusPendingReview, func(def forms.FormDefinition) []string {
		return def.ReviewerRoleIDs
	})
}

// ListPendingApproval returns the approval queue for the caller.
func (s *ResponseService) ListPendingApproval(p types.Principal) ([]forms.FormResponse, error) {
	return s.listQueue(p, forms.StatusPendingApproval, func(def forms.FormDefinition) []string {
		return def.FinalApproverRoleIDs
	})
}

func (s *ResponseService) listQueue(p types.Principal, status forms.Status, roleList func(forms.FormDefinition) []string) ([]forms.FormResponse, error) {
	defs, err := s.Repos.Form.ListActive(0)
	if err != nil {
		return nil, err
	}
	var formIDs []uint
	for _, def := range defs {
		roles := roleList(def)
		// A queue is only visible through an explicit role grant; open
		// role lists do not expose other members' submissions.
		if len(roles) > 0 && utils.HasRequiredRole(p.RoleIDs, roles) {
			formIDs = append(formIDs, def.ID)
		} else if p.IsAdmin {
			formIDs = append(formIDs, def.ID)
		}
	}
	return s.Repos.Response.ListByStatusForForms(status, formIDs)
}

func (s *ResponseService) logTransition(tx *repository.Repos, actorID uint, action string, resp *forms.FormResponse, description string) {
	newData, _ := json.Marshal(map[string]any{"status": resp.Status, "response_id": resp.ID})
	entry := &audit.AuditLog{
		CorrelationID: uuid.NewString(),
		UserID:        actorID,
		Action:        action,
		ResourceType:  "form_response",
		ResourceID:    fmt.Sprintf("%d", resp.ID),
		NewData:       newData,
		Description:   description,
	}
	if err := tx.Audit.CreateAuditLog(entry); err != nil {
		// Audit failures must not roll back the transition itself.
		log.Printf("failed to record audit %s for response %d: %v", action, resp.ID, err)
	}
}
