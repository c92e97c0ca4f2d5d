package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/halcyon-rp/depthub/internal/domain/user"
	"github.com/halcyon-rp/depthub/internal/repository"
	"github.com/halcyon-rp/depthub/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupPrincipalServiceMocks(t *testing.T) (*PrincipalService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{User: mockUser}
	return NewPrincipalService(repos), mockUser
}

func TestResolve_InternalID(t *testing.T) {
	svc, mockUser := setupPrincipalServiceMocks(t)

	u := user.User{ID: 42, Username: "alice", DisplayName: "Alice", RoleIDs: []string{"member"}}
	mockUser.EXPECT().GetByID(uint(42)).Return(u, nil)

	p := svc.Resolve("42")
	assert.True(t, p.Resolved)
	assert.Equal(t, uint(42), p.UserID)
	assert.Equal(t, "Alice", p.DisplayName)
	assert.Equal(t, []string{"member"}, p.RoleIDs)
}

func TestResolve_FallsBackToUsername(t *testing.T) {
	svc, mockUser := setupPrincipalServiceMocks(t)

	u := user.User{ID: 42, Username: "alice"}
	mockUser.EXPECT().GetByID(uint(42)).Return(u, nil)

	p := svc.Resolve("42")
	assert.Equal(t, "alice", p.DisplayName)
}

func TestResolve_DiscordSnowflake(t *testing.T) {
	svc, mockUser := setupPrincipalServiceMocks(t)

	// Snowflakes are numeric but far above the internal id range, so the
	// internal lookup is skipped entirely.
	u := user.User{ID: 42, Username: "alice", DiscordID: "190550415488909312"}
	mockUser.EXPECT().GetByDiscordID("190550415488909312").Return(u, nil)

	p := svc.Resolve("190550415488909312")
	assert.True(t, p.Resolved)
	assert.Equal(t, uint(42), p.UserID)
}

func TestResolve_NumericTriesBothSpaces(t *testing.T) {
	svc, mockUser := setupPrincipalServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(42)).Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().GetByDiscordID("42").Return(user.User{ID: 7, Username: "bob"}, nil)

	p := svc.Resolve("42")
	assert.True(t, p.Resolved)
	assert.Equal(t, uint(7), p.UserID)
}

func TestResolve_UnknownNeverErrors(t *testing.T) {
	svc, mockUser := setupPrincipalServiceMocks(t)

	mockUser.EXPECT().GetByID(uint(42)).Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().GetByDiscordID("42").Return(user.User{}, gorm.ErrRecordNotFound)

	p := svc.Resolve("42")
	assert.False(t, p.Resolved)
	assert.Equal(t, "Unknown Member", p.DisplayName)
	assert.Zero(t, p.UserID)
}

func TestResolve_NonNumericIdentifier(t *testing.T) {
	svc, mockUser := setupPrincipalServiceMocks(t)

	mockUser.EXPECT().GetByDiscordID("not-a-number").Return(user.User{}, gorm.ErrRecordNotFound)

	p := svc.Resolve("not-a-number")
	assert.False(t, p.Resolved)
	assert.Equal(t, "Unknown Member", p.DisplayName)
}
