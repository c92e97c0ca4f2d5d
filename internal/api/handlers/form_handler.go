package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-rp/depthub/internal/application"
	"github.com/halcyon-rp/depthub/internal/domain/forms"
	"github.com/halcyon-rp/depthub/pkg/response"
	"github.com/halcyon-rp/depthub/pkg/utils"
)

type FormHandler struct {
	service *application.FormService
}

func NewFormHandler(service *application.FormService) *FormHandler {
	return &FormHandler{service: service}
}

func (h *FormHandler) CreateForm(c *gin.Context) {
	var input forms.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	def, err := h.service.CreateForm(input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: def})
}

func (h *FormHandler) GetForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	def, err := h.service.GetForm(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: def})
}

func (h *FormHandler) ListForms(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var departmentID uint
	if raw := c.Query("department_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid department_id"})
			return
		}
		departmentID = uint(parsed)
	}

	defs, err := h.service.ListAccessibleForms(p, departmentID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: defs})
}

func (h *FormHandler) UpdateForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input forms.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	def, err := h.service.UpdateForm(id, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: def})
}

func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.DeleteForm(id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Form deleted"})
}

func (h *FormHandler) ReorderQuestions(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input forms.ReorderQuestionsDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	def, err := h.service.ReorderQuestions(id, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: def})
}
