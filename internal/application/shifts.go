package application

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/halcyon-rp/depthub/internal/domain/audit"
	"github.com/halcyon-rp/depthub/internal/domain/shift"
	"github.com/halcyon-rp/depthub/internal/repository"
	"github.com/halcyon-rp/depthub/pkg/apperrors"
	"github.com/halcyon-rp/depthub/pkg/types"
)

const (
	minRestPeriod = 8 * time.Hour
	restLookahead = 24 * time.Hour
)

type ShiftService struct {
	Repos *repository.Repos
}

func NewShiftService(repos *repository.Repos) *ShiftService {
	return &ShiftService{Repos: repos}
}

// CheckConflicts validates a proposed [start, end) window against the
// member's existing non-cancelled shifts. Overlap and insufficient-rest are
// evaluated independently; one existing shift can produce both.
func (s *ShiftService) CheckConflicts(memberID uint, start, end time.Time) ([]shift.Conflict, error) {
	if !start.Before(end) {
		return nil, apperrors.BadRequest("start time must be before end time")
	}

	existing, err := s.Repos.Shift.ListAround(memberID, start.Add(-restLookahead), end.Add(restLookahead))
	if err != nil {
		return nil, err
	}

	var conflicts []shift.Conflict
	for _, other := range existing {
		if start.Before(other.EndTime) && end.After(other.StartTime) {
			conflicts = append(conflicts, shift.Conflict{
				Type:    shift.ConflictOverlap,
				ShiftID: other.ID,
				Detail: fmt.Sprintf("overlaps shift %d (%s - %s)",
					other.ID, other.StartTime.Format(time.RFC3339), other.EndTime.Format(time.RFC3339)),
			})
		}

		if gap, ok := restGap(start, end, other.StartTime, other.EndTime); ok && gap < minRestPeriod {
			conflicts = append(conflicts, shift.Conflict{
				Type:    shift.ConflictInsufficientRest,
				ShiftID: other.ID,
				Detail: fmt.Sprintf("only %s of rest around shift %d (minimum %s)",
					gap.Round(time.Minute), other.ID, minRestPeriod),
			})
		}
	}
	return conflicts, nil
}

// restGap returns the rest period between the proposed window and an
// existing one. Overlapping windows report a zero gap.
func restGap(start, end, otherStart, otherEnd time.Time) (time.Duration, bool) {
	if !otherEnd.After(start) {
		return start.Sub(otherEnd), true
	}
	if !end.After(otherStart) {
		return otherStart.Sub(end), true
	}
	return 0, true
}

// CreateShift persists a shift after the conflict check. Any conflict blocks
// the write; the HTTP layer decides how to surface the details.
func (s *ShiftService) CreateShift(p types.Principal, input shift.CreateShiftDTO) (*shift.Shift, error) {
	if _, err := s.Repos.Member.GetByID(input.MemberID); err != nil {
		return nil, notFoundOr(err, "member")
	}

	conflicts, err := s.CheckConflicts(input.MemberID, input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		details := make([]string, len(conflicts))
		for i, c := range conflicts {
			details[i] = c.Detail
		}
		return nil, apperrors.BadRequest("shift conflicts: " + strings.Join(details, "; "))
	}

	created := &shift.Shift{
		DepartmentID: input.DepartmentID,
		MemberID:     input.MemberID,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		ShiftType:    input.ShiftType,
		Status:       shift.StatusScheduled,
	}
	if err := s.Repos.Shift.Create(created); err != nil {
		return nil, err
	}

	s.logShift(p.UserID, audit.ActionShiftScheduled, created)
	return created, nil
}

func (s *ShiftService) CancelShift(p types.Principal, shiftID uint) (*shift.Shift, error) {
	row, err := s.Repos.Shift.GetByID(shiftID)
	if err != nil {
		return nil, notFoundOr(err, "shift")
	}
	if row.Status != shift.StatusScheduled && row.Status != shift.StatusInProgress {
		return nil, apperrors.BadRequest("only scheduled or in-progress shifts can be cancelled")
	}
	row.Status = shift.StatusCancelled
	if err := s.Repos.Shift.Save(row); err != nil {
		return nil, err
	}
	s.logShift(p.UserID, audit.ActionShiftCancelled, row)
	return row, nil
}

func (s *ShiftService) ListByMember(memberID uint) ([]shift.Shift, error) {
	return s.Repos.Shift.ListByMember(memberID)
}

func (s *ShiftService) ListByDepartment(departmentID uint) ([]shift.Shift, error) {
	return s.Repos.Shift.ListByDepartment(departmentID)
}

func (s *ShiftService) logShift(actorID uint, action string, row *shift.Shift) {
	newData, _ := json.Marshal(row)
	entry := &audit.AuditLog{
		CorrelationID: uuid.NewString(),
		UserID:        actorID,
		Action:        action,
		ResourceType:  "shift",
		ResourceID:    fmt.Sprintf("%d", row.ID),
		NewData:       newData,
	}
	if err := s.Repos.Audit.CreateAuditLog(entry); err != nil {
		log.Printf("failed to record audit %s for shift %d: %v", action, row.ID, err)
	}
}
