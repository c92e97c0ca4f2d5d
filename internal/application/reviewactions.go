package application

import (
	"fmt"
	"log"
)

// RecommendedAction is a performance-review outcome applied to a member.
// Every variant must be handled in Apply; NoAction is explicit so a new
// variant cannot silently fall through.
type RecommendedAction string

const (
	ActionPromotion          RecommendedAction = "promotion"
	ActionCommendation       RecommendedAction = "commendation"
	ActionAdditionalTraining RecommendedAction = "additional_training"
	ActionNoAction           RecommendedAction = "no_action"
)

type ReviewActionService struct{}

func NewReviewActionService() *ReviewActionService {
	return &ReviewActionService{}
}

// Apply dispatches one recommended action. The concrete effects (rank
// changes, commendation records, training assignments) are carried out by
// their own admin surfaces; this dispatch records the decision trail.
func (s *ReviewActionService) Apply(memberID uint, action RecommendedAction) error {
	switch action {
	case ActionPromotion:
		log.Printf("review action: promotion recommended for member %d", memberID)
	case ActionCommendation:
		log.Printf("review action: commendation recommended for member %d", memberID)
	case ActionAdditionalTraining:
		log.Printf("review action: additional training recommended for member %d", memberID)
	case ActionNoAction:
		// Explicit no-op.
	default:
		return fmt.Errorf("unknown recommended action %q", action)
	}
	return nil
}

// ApplyAll applies every approved action, collecting the first failure.
func (s *ReviewActionService) ApplyAll(memberID uint, actions []RecommendedAction) error {
	for _, a := range actions {
		if err := s.Apply(memberID, a); err != nil {
			return err
		}
	}
	return nil
}
