package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/halcyon-rp/depthub/internal/application"
	"github.com/halcyon-rp/depthub/internal/domain/member"
	"github.com/halcyon-rp/depthub/internal/repository"
	"github.com/halcyon-rp/depthub/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupMemberHandler(t *testing.T) (*gin.Engine, *mock.MockMemberRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockMember := mock.NewMockMemberRepo(ctrl)
	repos := &repository.Repos{Member: mockMember}
	h := NewMemberHandler(application.NewMemberService(repos), application.NewReviewActionService())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/members/:id/review-actions", h.ApplyReviewActions)
	return r, mockMember
}

// --------------------- ApplyReviewActions ---------------------

func TestApplyReviewActions_Applied(t *testing.T) {
	r, mockMember := setupMemberHandler(t)

	mockMember.EXPECT().GetByID(uint(5)).Return(&member.Member{ID: 5, Status: member.StatusActive}, nil)

	body := bytes.NewBufferString(`{"actions":["commendation","no_action"]}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/members/5/review-actions", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "applied")
}

func TestApplyReviewActions_UnknownActionRejected(t *testing.T) {
	r, mockMember := setupMemberHandler(t)

	mockMember.EXPECT().GetByID(uint(5)).Return(&member.Member{ID: 5, Status: member.StatusActive}, nil)

	body := bytes.NewBufferString(`{"actions":["promotion","demotion_to_cadet"]}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/members/5/review-actions", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown recommended action")
}

func TestApplyReviewActions_MemberNotFound(t *testing.T) {
	r, mockMember := setupMemberHandler(t)

	mockMember.EXPECT().GetByID(uint(99)).Return(nil, gorm.ErrRecordNotFound)

	body := bytes.NewBufferString(`{"actions":["no_action"]}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/members/99/review-actions", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
