package application

import (
	"errors"
	"time"

	"github.com/halcyon-rp/depthub/internal/api/middleware"
	"github.com/halcyon-rp/depthub/internal/domain/user"
	"github.com/halcyon-rp/depthub/internal/repository"
	"github.com/halcyon-rp/depthub/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrUsernameTaken = apperrors.BadRequest("username already taken")

const tokenLifetime = 24 * time.Hour

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) RegisterUser(input user.CreateUserInput) error {
	_, err := s.Repos.User.GetByUsername(input.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := &user.User{
		Username:    input.Username,
		Password:    string(hashed),
		DisplayName: input.DisplayName,
		DiscordID:   input.DiscordID,
		RoleIDs:     input.RoleIDs,
	}
	return s.Repos.User.Save(u)
}

func (s *UserService) LoginUser(username, password string) (user.User, string, error) {
	u, err := s.Repos.User.GetByUsername(username)
	if err != nil {
		return user.User{}, "", apperrors.Forbidden("invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return user.User{}, "", apperrors.Forbidden("invalid username or password")
	}

	token, err := middleware.GenerateToken(u, tokenLifetime)
	if err != nil {
		return user.User{}, "", err
	}
	return u, token, nil
}

func (s *UserService) GetUser(id uint) (user.User, error) {
	u, err := s.Repos.User.GetByID(id)
	if err != nil {
		return user.User{}, notFoundOr(err, "user")
	}
	return u, nil
}
