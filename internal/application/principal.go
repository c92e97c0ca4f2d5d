package application

import (
	"errors"
	"log"
	"strconv"

	"github.com/halcyon-rp/depthub/internal/domain/user"
	"github.com/halcyon-rp/depthub/internal/repository"
	"gorm.io/gorm"
)

// PrincipalService reconciles the two identifier spaces in play: internal
// numeric user ids and Discord snowflakes. Listing and analytics paths must
// never fail on an unresolved id, so lookups fall back to placeholder values
// instead of returning errors.
type PrincipalService struct {
	Repos *repository.Repos
}

func NewPrincipalService(repos *repository.Repos) *PrincipalService {
	return &PrincipalService{Repos: repos}
}

const unknownDisplayName = "Unknown Member"

// Resolve accepts either identifier shape and returns a normalized principal
// view. Numeric identifiers are tried as internal ids first, then as Discord
// snowflakes (which are also numeric but far larger).
func (s *PrincipalService) Resolve(identifier string) user.ResolvedPrincipal {
	if n, err := strconv.ParseUint(identifier, 10, 64); err == nil && n <= 1<<31 {
		if u, err := s.Repos.User.GetByID(uint(n)); err == nil {
			return resolved(u)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("principal resolve: user id %s: %v", identifier, err)
		}
	}

	if u, err := s.Repos.User.GetByDiscordID(identifier); err == nil {
		return resolved(u)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("principal resolve: discord id %s: %v", identifier, err)
	}

	return user.ResolvedPrincipal{DisplayName: unknownDisplayName}
}

func resolved(u user.User) user.ResolvedPrincipal {
	name := u.DisplayName
	if name == "" {
		name = u.Username
	}
	return user.ResolvedPrincipal{
		UserID:      u.ID,
		DisplayName: name,
		RoleIDs:     u.RoleIDs,
		Resolved:    true,
	}
}
