package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-rp/depthub/internal/application"
	"github.com/halcyon-rp/depthub/pkg/apperrors"
	"github.com/halcyon-rp/depthub/pkg/response"
)

type Handlers struct {
	User     *UserHandler
	Form     *FormHandler
	Response *ResponseHandler
	Member   *MemberHandler
	Shift    *ShiftHandler
	Audit    *AuditHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		User:     NewUserHandler(svc.User, svc.Principal),
		Form:     NewFormHandler(svc.Form),
		Response: NewResponseHandler(svc.Response, svc.Moderation),
		Member:   NewMemberHandler(svc.Member, svc.ReviewAction),
		Shift:    NewShiftHandler(svc.Shift),
		Audit:    NewAuditHandler(svc.Audit),
	}
}

func statusOf(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusOf(err), response.ErrorResponse{Error: err.Error()})
}
