package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition_SubmitPaths(t *testing.T) {
	next, err := Transition(StatusDraft, EventSubmitForReview)
	assert.NoError(t, err)
	assert.Equal(t, StatusPendingReview, next)

	next, err = Transition(StatusDraft, EventSubmitForApproval)
	assert.NoError(t, err)
	assert.Equal(t, StatusPendingApproval, next)

	next, err = Transition(StatusDraft, EventSubmitAutoApprove)
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, next)
}

func TestTransition_ReviewPaths(t *testing.T) {
	next, err := Transition(StatusPendingReview, EventReviewsPassed)
	assert.NoError(t, err)
	assert.Equal(t, StatusPendingApproval, next)

	next, err = Transition(StatusPendingReview, EventReviewsApproved)
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, next)

	next, err = Transition(StatusPendingReview, EventReviewsDenied)
	assert.NoError(t, err)
	assert.Equal(t, StatusDeniedByReview, next)
}

func TestTransition_ApprovalPaths(t *testing.T) {
	next, err := Transition(StatusPendingApproval, EventFinalApproved)
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, next)

	next, err = Transition(StatusPendingApproval, EventFinalDenied)
	assert.NoError(t, err)
	assert.Equal(t, StatusDeniedByApproval, next)
}

func TestTransition_Illegal(t *testing.T) {
	_, err := Transition(StatusPendingApproval, EventReviewsDenied)
	assert.Error(t, err)

	_, err = Transition(StatusApproved, EventFinalApproved)
	assert.Error(t, err)

	_, err = Transition(StatusDraft, EventFinalApproved)
	assert.Error(t, err)
}

func TestSubmitEvent(t *testing.T) {
	assert.Equal(t, EventSubmitForReview, SubmitEvent(2, true))
	assert.Equal(t, EventSubmitForReview, SubmitEvent(1, false))
	assert.Equal(t, EventSubmitForApproval, SubmitEvent(0, true))
	assert.Equal(t, EventSubmitAutoApprove, SubmitEvent(0, false))
}

func TestReviewResolution_Pending(t *testing.T) {
	event, ok := ReviewResolution(1, 0, 2, true)
	assert.False(t, ok)
	assert.Empty(t, event)
}

func TestReviewResolution_PassEscalates(t *testing.T) {
	event, ok := ReviewResolution(2, 0, 2, true)
	assert.True(t, ok)
	assert.Equal(t, EventReviewsPassed, event)

	event, ok = ReviewResolution(2, 1, 3, false)
	assert.True(t, ok)
	assert.Equal(t, EventReviewsApproved, event)
}

func TestReviewResolution_TieDenies(t *testing.T) {
	event, ok := ReviewResolution(1, 1, 2, true)
	assert.True(t, ok)
	assert.Equal(t, EventReviewsDenied, event)

	event, ok = ReviewResolution(2, 2, 4, false)
	assert.True(t, ok)
	assert.Equal(t, EventReviewsDenied, event)
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusDeniedByReview.Terminal())
	assert.True(t, StatusDeniedByApproval.Terminal())
	assert.False(t, StatusDraft.Terminal())
	assert.False(t, StatusPendingReview.Terminal())
	assert.False(t, StatusPendingApproval.Terminal())
}
