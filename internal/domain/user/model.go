package user

import (
	"time"

	"gorm.io/datatypes"
)

// User is the principal source for the whole application. RoleIDs mirrors the
// role grants synced from the community's Discord guild; DiscordID is the
// external identity used by that sync.
type User struct {
	ID          uint                        `json:"id" gorm:"primaryKey"`
	Username    string                      `json:"username" gorm:"size:50;not null;unique"`
	Password    string                      `json:"-" gorm:"size:255;not null"`
	DisplayName string                      `json:"display_name" gorm:"size:100"`
	DiscordID   string                      `json:"discord_id" gorm:"size:32;index"`
	RoleIDs     datatypes.JSONSlice[string] `json:"role_ids"`
	IsAdmin     bool                        `json:"is_admin" gorm:"default:false"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

type CreateUserInput struct {
	Username    string   `json:"username" binding:"required,min=3,max=50"`
	Password    string   `json:"password" binding:"required,min=6"`
	DisplayName string   `json:"display_name"`
	DiscordID   string   `json:"discord_id"`
	RoleIDs     []string `json:"role_ids"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResolvedPrincipal is the normalized view returned by the principal
// resolver. Listing and analytics paths rely on its fallback values instead
// of lookup errors.
type ResolvedPrincipal struct {
	UserID      uint     `json:"user_id"`
	DisplayName string   `json:"display_name"`
	RoleIDs     []string `json:"role_ids"`
	Resolved    bool     `json:"resolved"`
}
