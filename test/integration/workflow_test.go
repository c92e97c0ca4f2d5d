package integration

import (
	"testing"
	"time"

	"github.com/halcyon-rp/depthub/internal/domain/discipline"
	"github.com/halcyon-rp/depthub/internal/domain/forms"
	"github.com/halcyon-rp/depthub/internal/domain/member"
	"github.com/halcyon-rp/depthub/internal/domain/shift"
	"github.com/stretchr/testify/require"
)

// --------------------- Approval workflow ---------------------

func TestFormApprovalWorkflow(t *testing.T) {
	admin := principalFor(t, "alice")
	submitter := principalFor(t, "bob")
	reviewerA := principalFor(t, "carol")
	reviewerB := principalFor(t, "dave")
	approver := principalFor(t, "erin")

	def, err := services.Form.CreateForm(forms.CreateFormDTO{
		DepartmentID:          1,
		Title:                 "Patrol Activity Report",
		Category:              "activity",
		ReviewerRoleIDs:       []string{"supervisor"},
		FinalApproverRoleIDs:  []string{"command"},
		RequiredReviewers:     2,
		RequiresFinalApproval: true,
		Questions: []forms.QuestionInput{
			{Prompt: "Summarize the patrol", Type: forms.QuestionParagraph, Required: true},
			{Prompt: "Any incidents?", Type: forms.QuestionBoolean},
		},
	})
	require.NoError(t, err)
	require.Len(t, def.Questions, 2)

	answers := []forms.Answer{
		{QuestionID: def.Questions[0].ID, Value: "Routine patrol along the coastal highway, nothing unusual."},
		{QuestionID: def.Questions[1].ID, Value: false},
	}

	resp, err := services.Response.SubmitForm(submitter, def.ID, answers)
	require.NoError(t, err)
	require.Equal(t, forms.StatusPendingReview, resp.Status)
	require.NotNil(t, resp.SubmittedAt)

	// Submission is visible in the reviewer queue but not to the approver yet.
	queue, err := services.Response.ListPendingReview(reviewerA)
	require.NoError(t, err)
	require.Len(t, queue, 1)
	require.Equal(t, resp.ID, queue[0].ID)

	approvalQueue, err := services.Response.ListPendingApproval(approver)
	require.NoError(t, err)
	require.Empty(t, approvalQueue)

	resp, err = services.Response.ReviewResponse(reviewerA, resp.ID, forms.DecisionYes, "looks good")
	require.NoError(t, err)
	require.Equal(t, forms.StatusPendingReview, resp.Status)
	require.Equal(t, 1, resp.ReviewersApprovedCount)

	// The same reviewer cannot vote twice.
	_, err = services.Response.ReviewResponse(reviewerA, resp.ID, forms.DecisionYes, "again")
	require.Error(t, err)

	resp, err = services.Response.ReviewResponse(reviewerB, resp.ID, forms.DecisionYes, "")
	require.NoError(t, err)
	require.Equal(t, forms.StatusPendingApproval, resp.Status)

	// Reviewers cannot final-approve.
	_, err = services.Response.ApproveResponse(reviewerA, resp.ID, true, "")
	require.Error(t, err)

	resp, err = services.Response.ApproveResponse(approver, resp.ID, true, "approved")
	require.NoError(t, err)
	require.Equal(t, forms.StatusApproved, resp.Status)
	require.NotNil(t, resp.FinalApprovedAt)

	// Terminal responses reject further decisions.
	_, err = services.Response.ApproveResponse(approver, resp.ID, false, "")
	require.Error(t, err)

	got, err := services.Response.GetResponse(admin, resp.ID)
	require.NoError(t, err)
	require.Len(t, got.Decisions, 2)
}

// --------------------- Expiry sweep ---------------------

func TestExpirySweepIsIdempotent(t *testing.T) {
	joined := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	m := member.Member{
		DepartmentID: 2,
		UserID:       9001,
		DiscordID:    "100000000000000009",
		Callsign:     "2A-07",
		Status:       member.StatusWarned1,
		JoinedAt:     &joined,
	}
	require.NoError(t, gormDB.Create(&m).Error)

	expired := time.Now().Add(-48 * time.Hour)
	action := discipline.DisciplinaryAction{
		MemberID:   m.ID,
		IssuerID:   1,
		ActionType: discipline.ActionWarning,
		Reason:     "late report",
		IssuedAt:   expired.Add(-7 * 24 * time.Hour),
		ExpiresAt:  &expired,
		IsActive:   true,
	}
	require.NoError(t, gormDB.Create(&action).Error)

	result := services.Expiry.RunExpirySweep(time.Now())
	require.Equal(t, 1, result.Warnings)

	var fresh member.Member
	require.NoError(t, gormDB.First(&fresh, m.ID).Error)
	require.Equal(t, member.StatusActive, fresh.Status)

	var freshAction discipline.DisciplinaryAction
	require.NoError(t, gormDB.First(&freshAction, action.ID).Error)
	require.False(t, freshAction.IsActive)

	// A second pass finds nothing to do.
	result = services.Expiry.RunExpirySweep(time.Now())
	require.Equal(t, 0, result.Warnings)

	require.NoError(t, gormDB.First(&fresh, m.ID).Error)
	require.Equal(t, member.StatusActive, fresh.Status)
}

// --------------------- Shift conflicts ---------------------

func TestShiftConflictDetection(t *testing.T) {
	admin := principalFor(t, "alice")

	joined := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	m := member.Member{
		DepartmentID: 3,
		UserID:       9002,
		DiscordID:    "100000000000000010",
		Callsign:     "3A-01",
		Status:       member.StatusActive,
		JoinedAt:     &joined,
	}
	require.NoError(t, gormDB.Create(&m).Error)

	day := time.Now().UTC().Add(72 * time.Hour).Truncate(24 * time.Hour)
	first, err := services.Shift.CreateShift(admin, shift.CreateShiftDTO{
		DepartmentID: 3,
		MemberID:     m.ID,
		StartTime:    day.Add(9 * time.Hour),
		EndTime:      day.Add(17 * time.Hour),
		ShiftType:    "patrol",
	})
	require.NoError(t, err)
	require.Equal(t, shift.StatusScheduled, first.Status)

	// An overlapping window reports the overlap and the zero rest gap.
	conflicts, err := services.Shift.CheckConflicts(m.ID, day.Add(16*time.Hour), day.Add(20*time.Hour))
	require.NoError(t, err)
	require.Len(t, conflicts, 2)
	require.Equal(t, shift.ConflictOverlap, conflicts[0].Type)
	require.Equal(t, shift.ConflictInsufficientRest, conflicts[1].Type)

	_, err = services.Shift.CreateShift(admin, shift.CreateShiftDTO{
		DepartmentID: 3,
		MemberID:     m.ID,
		StartTime:    day.Add(16 * time.Hour),
		EndTime:      day.Add(20 * time.Hour),
	})
	require.Error(t, err)

	// Eight hours after the shift ends is enough rest.
	conflicts, err = services.Shift.CheckConflicts(m.ID, day.Add(25*time.Hour), day.Add(29*time.Hour))
	require.NoError(t, err)
	require.Empty(t, conflicts)

	second, err := services.Shift.CreateShift(admin, shift.CreateShiftDTO{
		DepartmentID: 3,
		MemberID:     m.ID,
		StartTime:    day.Add(25 * time.Hour),
		EndTime:      day.Add(29 * time.Hour),
	})
	require.NoError(t, err)

	cancelled, err := services.Shift.CancelShift(admin, second.ID)
	require.NoError(t, err)
	require.Equal(t, shift.StatusCancelled, cancelled.Status)

	// Cancelled shifts no longer block the window.
	conflicts, err = services.Shift.CheckConflicts(m.ID, day.Add(25*time.Hour), day.Add(29*time.Hour))
	require.NoError(t, err)
	require.Empty(t, conflicts)
}
