package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload. RoleIDs carries the Discord role grants synced
// for the user at login time.
type Claims struct {
	UserID   uint     `json:"user_id"`
	Username string   `json:"username"`
	RoleIDs  []string `json:"role_ids"`
	IsAdmin  bool     `json:"is_admin"`
	jwt.RegisteredClaims
}

// Principal is the authorization view services operate on.
type Principal struct {
	UserID      uint
	DisplayName string
	RoleIDs     []string
	IsAdmin     bool
}

func (c *Claims) Principal() Principal {
	return Principal{
		UserID:      c.UserID,
		DisplayName: c.Username,
		RoleIDs:     c.RoleIDs,
		IsAdmin:     c.IsAdmin,
	}
}
