package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/halcyon-rp/depthub/internal/api/middleware"
	"github.com/halcyon-rp/depthub/internal/domain/user"
	"github.com/halcyon-rp/depthub/internal/repository"
	"github.com/halcyon-rp/depthub/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{User: mockUser}
	return NewUserService(repos), mockUser
}

// --------------------- RegisterUser ---------------------
func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Save(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.NotEqual(t, "123456", u.Password)
		return nil
	})

	err := svc.RegisterUser(user.CreateUserInput{
		Username:    "alice",
		Password:    "123456",
		DisplayName: "Alice",
		DiscordID:   "190550415488909312",
		RoleIDs:     []string{"member"},
	})
	assert.NoError(t, err)
}

func TestRegisterUser_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("admin").Return(user.User{ID: 1}, nil)

	err := svc.RegisterUser(user.CreateUserInput{Username: "admin", Password: "123456"})
	assert.Equal(t, ErrUsernameTaken, err)
}

// --------------------- LoginUser ---------------------
func TestLoginUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	u := user.User{ID: 1, Username: "bob", Password: string(hashed)}
	mockUser.EXPECT().GetByUsername("bob").Return(u, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(u user.User, expire time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	out, token, err := svc.LoginUser("bob", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob", out.Username)
	assert.Equal(t, "token123", token)
}

func TestLoginUser_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	u := user.User{ID: 1, Username: "bob", Password: string(hashed)}
	mockUser.EXPECT().GetByUsername("bob").Return(u, nil)

	_, token, err := svc.LoginUser("bob", "wrong")
	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestLoginUser_UserNotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.LoginUser("ghost", "123456")
	assert.Error(t, err)
}
