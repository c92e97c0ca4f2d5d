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
	"github.com/halcyon-rp/depthub/pkg/apperrors"
	"github.com/halcyon-rp/depthub/pkg/types"
)

type MemberService struct {
	Repos *repository.Repos
}

func NewMemberService(repos *repository.Repos) *MemberService {
	return &MemberService{Repos: repos}
}

func (s *MemberService) GetMember(id uint) (*member.Member, error) {
	m, err := s.Repos.Member.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "member")
	}
	return m, nil
}

func (s *MemberService) ListByDepartment(departmentID uint) ([]member.Member, error) {
	return s.Repos.Member.ListByDepartment(departmentID)
}

// stepUpWarning escalates the member's warning level by one when a warning
// action is issued; warned_3 is the ceiling.
func stepUpWarning(st member.Status) member.Status {
	switch st {
	case member.StatusWarned1:
		return member.StatusWarned2
	case member.StatusWarned2, member.StatusWarned3:
		return member.StatusWarned3
	default:
		return member.StatusWarned1
	}
}

// IssueAction records a disciplinary action and applies the matching member
// status in one transaction.
func (s *MemberService) IssueAction(p types.Principal, input discipline.IssueActionDTO) (*discipline.DisciplinaryAction, error) {
	var out *discipline.DisciplinaryAction
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		m, err := tx.Member.GetByIDForUpdate(input.MemberID)
		if err != nil {
			return notFoundOr(err, "member")
		}

		switch input.ActionType {
		case discipline.ActionWarning:
			m.Status = stepUpWarning(m.Status)
		case discipline.ActionSuspension:
			m.Status = member.StatusSuspended
		case discipline.ActionLeaveOfAbsence:
			m.Status = member.StatusLeaveOfAbsence
		case discipline.ActionDemotion, discipline.ActionTermination:
			// Rank/roster effects are handled by their own admin flows.
		default:
			return apperrors.BadRequest(fmt.Sprintf("unknown action type %q", input.ActionType))
		}

		action := &discipline.DisciplinaryAction{
			MemberID:   input.MemberID,
			IssuerID:   p.UserID,
			ActionType: input.ActionType,
			Reason:     input.Reason,
			IssuedAt:   time.Now(),
			ExpiresAt:  input.ExpiresAt,
			IsActive:   true,
		}
		if err := tx.Discipline.Create(action); err != nil {
			return err
		}
		if err := tx.Member.Save(m); err != nil {
			return err
		}

		newData, _ := json.Marshal(action)
		entry := &audit.AuditLog{
			CorrelationID: uuid.NewString(),
			UserID:        p.UserID,
			Action:        audit.ActionDisciplineIssued,
			ResourceType:  "member",
			ResourceID:    fmt.Sprintf("%d", m.ID),
			NewData:       newData,
			Description:   fmt.Sprintf("%s issued: %s", input.ActionType, input.Reason),
		}
		if err := tx.Audit.CreateAuditLog(entry); err != nil {
			log.Printf("failed to record audit for action %d: %v", action.ID, err)
		}

		out = action
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MemberService) ListActiveActions(memberID uint) ([]discipline.DisciplinaryAction, error) {
	if _, err := s.Repos.Member.GetByID(memberID); err != nil {
		return nil, notFoundOr(err, "member")
	}
	return s.Repos.Discipline.ListActiveByMember(memberID)
}
