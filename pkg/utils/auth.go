package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-rp/depthub/pkg/types"
)

// HasRequiredRole reports whether a principal's role set intersects the
// required role list. A nil or empty required list means open access. This is
// the single role gate used for submit, review and approval checks.
func HasRequiredRole(userRoles []string, requiredRoles []string) bool {
	if len(requiredRoles) == 0 {
		return true
	}
	if len(userRoles) == 0 {
		return false
	}
	held := make(map[string]struct{}, len(userRoles))
	for _, r := range userRoles {
		held[r] = struct{}{}
	}
	for _, r := range requiredRoles {
		if _, ok := held[r]; ok {
			return true
		}
	}
	return false
}

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func GetPrincipalFromContext(c *gin.Context) (types.Principal, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return types.Principal{}, err
	}
	return claims.Principal(), nil
}

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, errors.New("invalid " + name + " parameter")
	}
	return uint(id), nil
}
