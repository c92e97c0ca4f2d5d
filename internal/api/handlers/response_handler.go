package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-rp/depthub/internal/application"
	"github.com/halcyon-rp/depthub/internal/domain/forms"
	"github.com/halcyon-rp/depthub/pkg/response"
	"github.com/halcyon-rp/depthub/pkg/utils"
)

type ResponseHandler struct {
	service    *application.ResponseService
	moderation *application.ModerationService
}

func NewResponseHandler(service *application.ResponseService, moderation *application.ModerationService) *ResponseHandler {
	return &ResponseHandler{service: service, moderation: moderation}
}

func (h *ResponseHandler) SubmitForm(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	formID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input forms.SubmitFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.SubmitForm(p, formID, input.Answers)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: resp})
}

type PrecheckDTO struct {
	Text string `json:"text" binding:"required"`
}

// Precheck lets the dashboard screen answer text before submission. It runs
// the content heuristics only; the rate limiter is not consulted.
func (h *ResponseHandler) Precheck(c *gin.Context) {
	var input PrecheckDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: h.moderation.Analyze(input.Text)})
}

func (h *ResponseHandler) SaveDraft(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	formID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input forms.SaveDraftDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.SaveDraft(p, formID, input.Answers, input.ResponseID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: resp})
}

func (h *ResponseHandler) Review(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	responseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input forms.ReviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.ReviewResponse(p, responseID, input.Decision, input.Comments)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: resp})
}

func (h *ResponseHandler) Approve(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	responseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input forms.ApproveDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.ApproveResponse(p, responseID, *input.Approve, input.Comments)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: resp})
}

func (h *ResponseHandler) GetResponse(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	responseID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.GetResponse(p, responseID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: resp})
}

func (h *ResponseHandler) ListMine(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	list, err := h.service.ListMyResponses(p)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: list})
}

func (h *ResponseHandler) ListPendingReview(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	list, err := h.service.ListPendingReview(p)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: list})
}

func (h *ResponseHandler) ListPendingApproval(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	list, err := h.service.ListPendingApproval(p)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: list})
}
