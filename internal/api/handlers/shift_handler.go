package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-rp/depthub/internal/application"
	"github.com/halcyon-rp/depthub/internal/domain/shift"
	"github.com/halcyon-rp/depthub/pkg/response"
	"github.com/halcyon-rp/depthub/pkg/utils"
)

type ShiftHandler struct {
	service *application.ShiftService
}

func NewShiftHandler(service *application.ShiftService) *ShiftHandler {
	return &ShiftHandler{service: service}
}

func (h *ShiftHandler) CreateShift(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input shift.CreateShiftDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.CreateShift(p, input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: created})
}

func (h *ShiftHandler) CancelShift(c *gin.Context) {
	p, err := utils.GetPrincipalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	row, err := h.service.CancelShift(p, id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: row})
}

// CheckConflicts is a dry-run endpoint so the scheduler UI can show conflicts
// before the member commits to a slot.
func (h *ShiftHandler) CheckConflicts(c *gin.Context) {
	memberID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid start parameter"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid end parameter"})
		return
	}

	conflicts, err := h.service.CheckConflicts(memberID, start, end)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: conflicts})
}

func (h *ShiftHandler) ListByMember(c *gin.Context) {
	memberID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	shifts, err := h.service.ListByMember(memberID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: shifts})
}

func (h *ShiftHandler) ListByDepartment(c *gin.Context) {
	departmentID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	shifts, err := h.service.ListByDepartment(departmentID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: shifts})
}
