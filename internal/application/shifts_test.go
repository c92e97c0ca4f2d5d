package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/halcyon-rp/depthub/internal/domain/shift"
	"github.com/halcyon-rp/depthub/internal/repository"
	"github.com/halcyon-rp/depthub/internal/repository/mock"
	"github.com/halcyon-rp/depthub/pkg/apperrors"
	"github.com/halcyon-rp/depthub/pkg/types"
	"github.com/stretchr/testify/assert"
)

// --------------------- Setup ---------------------
func setupShiftServiceMocks(t *testing.T) (*ShiftService, *mock.MockShiftRepo, *mock.MockMemberRepo, *mock.MockAuditRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockShift := mock.NewMockShiftRepo(ctrl)
	mockMember := mock.NewMockMemberRepo(ctrl)
	mockAudit := mock.NewMockAuditRepo(ctrl)
	repos := &repository.Repos{
		Shift:  mockShift,
		Member: mockMember,
		Audit:  mockAudit,
	}
	return NewShiftService(repos), mockShift, mockMember, mockAudit
}

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 1, hour, min, 0, 0, time.UTC)
}

var scheduler = types.Principal{UserID: 1, DisplayName: "dispatch"}

// --------------------- CheckConflicts ---------------------
func TestCheckConflicts_Overlap(t *testing.T) {
	svc, mockShift, _, _ := setupShiftServiceMocks(t)

	existing := []shift.Shift{{ID: 10, MemberID: 5, StartTime: at(9, 0), EndTime: at(17, 0)}}
	mockShift.EXPECT().ListAround(uint(5), gomock.Any(), gomock.Any()).Return(existing, nil)

	conflicts, err := svc.CheckConflicts(5, at(16, 0), at(20, 0))
	assert.NoError(t, err)
	assert.Equal(t, shift.ConflictOverlap, conflicts[0].Type)
	assert.Equal(t, uint(10), conflicts[0].ShiftID)
}

func TestCheckConflicts_AdjacentShiftsDoNotOverlap(t *testing.T) {
	svc, mockShift, _, _ := setupShiftServiceMocks(t)

	existing := []shift.Shift{{ID: 10, MemberID: 5, StartTime: at(1, 0), EndTime: at(9, 0)}}
	mockShift.EXPECT().ListAround(uint(5), gomock.Any(), gomock.Any()).Return(existing, nil)

	// Half-open windows: ending at 09:00 and starting at 17:00 leaves exactly
	// eight hours of rest, which is acceptable.
	conflicts, err := svc.CheckConflicts(5, at(17, 0), at(23, 0))
	assert.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckConflicts_InsufficientRest(t *testing.T) {
	svc, mockShift, _, _ := setupShiftServiceMocks(t)

	existing := []shift.Shift{{ID: 10, MemberID: 5, StartTime: at(9, 0), EndTime: at(17, 0)}}
	mockShift.EXPECT().ListAround(uint(5), gomock.Any(), gomock.Any()).Return(existing, nil)

	// Six hours between 17:00 and 23:00 is under the eight-hour minimum.
	conflicts, err := svc.CheckConflicts(5, at(23, 0), at(23, 59))
	assert.NoError(t, err)
	assert.Len(t, conflicts, 1)
	assert.Equal(t, shift.ConflictInsufficientRest, conflicts[0].Type)
}

func TestCheckConflicts_OverlapAlsoReportsRest(t *testing.T) {
	svc, mockShift, _, _ := setupShiftServiceMocks(t)

	existing := []shift.Shift{{ID: 10, MemberID: 5, StartTime: at(9, 0), EndTime: at(17, 0)}}
	mockShift.EXPECT().ListAround(uint(5), gomock.Any(), gomock.Any()).Return(existing, nil)

	conflicts, err := svc.CheckConflicts(5, at(16, 0), at(20, 0))
	assert.NoError(t, err)
	// An overlapping window also has a zero rest gap, so both types fire.
	assert.Len(t, conflicts, 2)
	assert.Equal(t, shift.ConflictOverlap, conflicts[0].Type)
	assert.Equal(t, shift.ConflictInsufficientRest, conflicts[1].Type)
}

func TestCheckConflicts_BothTypesFromOneShift(t *testing.T) {
	svc, mockShift, _, _ := setupShiftServiceMocks(t)

	existing := []shift.Shift{
		{ID: 10, MemberID: 5, StartTime: at(9, 0), EndTime: at(17, 0)},
		{ID: 11, MemberID: 5, StartTime: at(19, 0), EndTime: at(21, 0)},
	}
	mockShift.EXPECT().ListAround(uint(5), gomock.Any(), gomock.Any()).Return(existing, nil)

	// Overlaps shift 11 (zero gap counts as a rest violation too) and rests
	// only two hours after shift 10.
	conflicts, err := svc.CheckConflicts(5, at(19, 0), at(23, 0))
	assert.NoError(t, err)
	assert.Len(t, conflicts, 3)
}

func TestCheckConflicts_InvalidWindow(t *testing.T) {
	svc, _, _, _ := setupShiftServiceMocks(t)

	_, err := svc.CheckConflicts(5, at(17, 0), at(9, 0))
	assert.True(t, apperrors.IsBadRequest(err))

	_, err = svc.CheckConflicts(5, at(9, 0), at(9, 0))
	assert.True(t, apperrors.IsBadRequest(err))
}

// --------------------- CreateShift ---------------------
func TestCreateShift_Success(t *testing.T) {
	svc, mockShift, mockMember, mockAudit := setupShiftServiceMocks(t)

	mockMember.EXPECT().GetByID(uint(5)).Return(memberRow(5), nil)
	mockShift.EXPECT().ListAround(uint(5), gomock.Any(), gomock.Any()).Return(nil, nil)
	mockShift.EXPECT().Create(gomock.Any()).DoAndReturn(func(s *shift.Shift) error {
		s.ID = 20
		return nil
	})
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

	out, err := svc.CreateShift(scheduler, shift.CreateShiftDTO{
		DepartmentID: 2,
		MemberID:     5,
		StartTime:    at(9, 0),
		EndTime:      at(17, 0),
		ShiftType:    "patrol",
	})
	assert.NoError(t, err)
	assert.Equal(t, shift.StatusScheduled, out.Status)
	assert.Equal(t, uint(20), out.ID)
}

func TestCreateShift_BlockedByConflict(t *testing.T) {
	svc, mockShift, mockMember, _ := setupShiftServiceMocks(t)

	existing := []shift.Shift{{ID: 10, MemberID: 5, StartTime: at(9, 0), EndTime: at(17, 0)}}
	mockMember.EXPECT().GetByID(uint(5)).Return(memberRow(5), nil)
	mockShift.EXPECT().ListAround(uint(5), gomock.Any(), gomock.Any()).Return(existing, nil)

	_, err := svc.CreateShift(scheduler, shift.CreateShiftDTO{
		DepartmentID: 2,
		MemberID:     5,
		StartTime:    at(16, 0),
		EndTime:      at(20, 0),
	})
	assert.True(t, apperrors.IsBadRequest(err))
}

// --------------------- CancelShift ---------------------
func TestCancelShift_Scheduled(t *testing.T) {
	svc, mockShift, _, mockAudit := setupShiftServiceMocks(t)

	row := &shift.Shift{ID: 20, MemberID: 5, Status: shift.StatusScheduled}
	mockShift.EXPECT().GetByID(uint(20)).Return(row, nil)
	mockShift.EXPECT().Save(row).Return(nil)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any()).Return(nil)

	out, err := svc.CancelShift(scheduler, 20)
	assert.NoError(t, err)
	assert.Equal(t, shift.StatusCancelled, out.Status)
}

func TestCancelShift_CompletedRejected(t *testing.T) {
	svc, mockShift, _, _ := setupShiftServiceMocks(t)

	row := &shift.Shift{ID: 20, MemberID: 5, Status: shift.StatusCompleted}
	mockShift.EXPECT().GetByID(uint(20)).Return(row, nil)

	_, err := svc.CancelShift(scheduler, 20)
	assert.True(t, apperrors.IsBadRequest(err))
}

// --------------------- restGap ---------------------
func TestRestGap(t *testing.T) {
	gap, ok := restGap(at(23, 0), at(23, 59), at(9, 0), at(17, 0))
	assert.True(t, ok)
	assert.Equal(t, 6*time.Hour, gap)

	gap, ok = restGap(at(1, 0), at(3, 0), at(11, 0), at(19, 0))
	assert.True(t, ok)
	assert.Equal(t, 8*time.Hour, gap)

	gap, ok = restGap(at(16, 0), at(20, 0), at(9, 0), at(17, 0))
	assert.True(t, ok)
	assert.Equal(t, time.Duration(0), gap)
}
