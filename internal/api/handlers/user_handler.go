package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-rp/depthub/internal/application"
	"github.com/halcyon-rp/depthub/internal/domain/user"
	"github.com/halcyon-rp/depthub/pkg/response"
	"github.com/halcyon-rp/depthub/pkg/utils"
)

type UserHandler struct {
	service    *application.UserService
	principals *application.PrincipalService
}

func NewUserHandler(service *application.UserService, principals *application.PrincipalService) *UserHandler {
	return &UserHandler{service: service, principals: principals}
}

func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.RegisterUser(input); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.MessageResponse{Message: "User registered successfully"})
}

func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	u, token, err := h.service.LoginUser(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid username or password"})
		return
	}

	c.SetCookie("token", token, 3600*24, "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		UserID:   u.ID,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logged out"})
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	u, err := h.service.GetUser(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: u})
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	u, err := h.service.GetUser(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{Data: u})
}

// ResolvePrincipal maps an internal id or Discord snowflake to a display
// view. Always 200; unresolved identifiers come back with placeholder values.
func (h *UserHandler) ResolvePrincipal(c *gin.Context) {
	identifier := c.Param("identifier")
	c.JSON(http.StatusOK, response.SuccessResponse{Data: h.principals.Resolve(identifier)})
}
