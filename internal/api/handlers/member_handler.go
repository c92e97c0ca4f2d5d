package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-rp/depthub/internal/application"
	"github.com/halcyon-rp/depthub/internal/domain/discipline"
	"github.com/halcyon-rp/depthub/pkg/response"
	"github.com/halcyon-rp/depthub/pkg/utils"
)

type MemberHandler struct {
	service       *application.MemberService
	reviewActions *application.ReviewActionService
}

func NewMemberHandler(service *application.MemberService, reviewActions *application.ReviewActionService) *MemberHandler {
	return &MemberHandler{service: service, reviewActions: reviewActions}
}

type ApplyReviewActionsDTO struct {
	Actions []application.RecommendedAction `json:"actions" binding:"required"`
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	m, err := h.service.GetMember(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: m})
}

func (h *MemberHandler) ListByDepartment(c *gin.Context) {
	departmentID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	members, err := h.service.ListByDepartment(departmentID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: members})
}

func (h *MemberHandler) IssueAction(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input discipline.IssueActionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	action, err := h.service.IssueAction(p, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: action})
}

// ApplyReviewActions records the outcome of a performance review for a
// member. The member must exist; any unknown action rejects the whole batch.
func (h *MemberHandler) ApplyReviewActions(c *gin.Context) {
	memberID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input ApplyReviewActionsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if _, err := h.service.GetMember(memberID); err != nil {
		writeError(c, err)
		return
	}

	if err := h.reviewActions.ApplyAll(memberID, input.Actions); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "review actions applied"})
}

func (h *MemberHandler) ListActiveActions(c *gin.Context) {
	memberID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	actions, err := h.service.ListActiveActions(memberID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: actions})
}
