package forms

import (
	"fmt"

	"github.com/anggasct/fluo"
)

// Lifecycle events. Submission picks one of the three submit events based on
// the form's reviewer configuration; review aggregation and final approval
// drive the rest.
const (
	EventSubmitForReview   = "submit_for_review"
	EventSubmitForApproval = "submit_for_approval"
	EventSubmitAutoApprove = "submit_auto_approve"
	EventReviewsPassed     = "reviews_passed"
	EventReviewsApproved   = "reviews_approved"
	EventReviewsDenied     = "reviews_denied"
	EventFinalApproved     = "final_approved"
	EventFinalDenied       = "final_denied"
)

var lifecycle = newLifecycle()

func newLifecycle() fluo.MachineDefinition {
	return fluo.NewMachine().
		State(string(StatusDraft)).Initial().
		To(string(StatusPendingReview)).On(EventSubmitForReview).
		To(string(StatusPendingApproval)).On(EventSubmitForApproval).
		To(string(StatusApproved)).On(EventSubmitAutoApprove).
		State(string(StatusPendingReview)).
		To(string(StatusPendingApproval)).On(EventReviewsPassed).
		To(string(StatusApproved)).On(EventReviewsApproved).
		To(string(StatusDeniedByReview)).On(EventReviewsDenied).
		State(string(StatusPendingApproval)).
		To(string(StatusApproved)).On(EventFinalApproved).
		To(string(StatusDeniedByApproval)).On(EventFinalDenied).
		State(string(StatusApproved)).Final().
		State(string(StatusDeniedByReview)).Final().
		State(string(StatusDeniedByApproval)).Final().
		Build()
}

// Transition validates event against the lifecycle machine from the given
// status and returns the resulting status. Illegal transitions error.
func Transition(from Status, event string) (Status, error) {
	m := lifecycle.CreateInstance()
	if err := m.Start(); err != nil {
		return "", err
	}
	if err := m.SetState(string(from)); err != nil {
		return "", fmt.Errorf("unknown status %q: %w", from, err)
	}
	res := m.HandleEvent(event, nil)
	if res.Error != nil {
		return "", res.Error
	}
	if !res.Processed || !res.StateChanged {
		return "", fmt.Errorf("event %s is not valid in status %s", event, from)
	}
	return Status(res.CurrentState), nil
}

// SubmitEvent returns the submit transition for a form's reviewer setup.
// Forms with no required reviewers skip pending_review entirely.
func SubmitEvent(requiredReviewers int, requiresFinalApproval bool) string {
	if requiredReviewers > 0 {
		return EventSubmitForReview
	}
	if requiresFinalApproval {
		return EventSubmitForApproval
	}
	return EventSubmitAutoApprove
}

// ReviewResolution returns the transition to apply once a decision has been
// appended, or ok=false while the response stays in pending_review. An exact
// tie between approvals and denials denies.
func ReviewResolution(approved, denied, requiredReviewers int, requiresFinalApproval bool) (event string, ok bool) {
	if approved+denied < requiredReviewers {
		return "", false
	}
	if approved > denied {
		if requiresFinalApproval {
			return EventReviewsPassed, true
		}
		return EventReviewsApproved, true
	}
	return EventReviewsDenied, true
}
