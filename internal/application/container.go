package application

import (
	"github.com/halcyon-rp/depthub/internal/repository"
)

type Services struct {
	Audit        *AuditService
	User         *UserService
	Form         *FormService
	Response     *ResponseService
	Member       *MemberService
	Shift        *ShiftService
	Expiry       *ExpiryService
	Principal    *PrincipalService
	ReviewAction *ReviewActionService
	Moderation   *ModerationService
	Limiter      *RateLimiter
}

func New(repos *repository.Repos) *Services {
	limiter := NewRateLimiter(NewMemoryRateLimitStore())
	moderation := NewModerationService(DefaultModerationConfig(), limiter)
	return &Services{
		Audit:        NewAuditService(repos),
		User:         NewUserService(repos),
		Form:         NewFormService(repos),
		Response:     NewResponseService(repos, moderation),
		Member:       NewMemberService(repos),
		Shift:        NewShiftService(repos),
		Expiry:       NewExpiryService(repos, nil),
		Principal:    NewPrincipalService(repos),
		ReviewAction: NewReviewActionService(),
		Moderation:   moderation,
		Limiter:      limiter,
	}
}
