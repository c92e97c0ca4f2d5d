package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/halcyon-rp/depthub/internal/domain/forms"
	"github.com/halcyon-rp/depthub/internal/repository"
	"github.com/halcyon-rp/depthub/internal/repository/mock"
	"github.com/halcyon-rp/depthub/pkg/apperrors"
	"github.com/halcyon-rp/depthub/pkg/types"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupFormServiceMocks(t *testing.T) (*FormService, *mock.MockFormRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock.NewMockFormRepo(ctrl)
	repos := &repository.Repos{Form: mockForm}
	return NewFormService(repos), mockForm
}

func formWithQuestions(ids ...uint) *forms.FormDefinition {
	def := &forms.FormDefinition{ID: 1, Title: "Application"}
	for i, id := range ids {
		def.Questions = append(def.Questions, forms.Question{ID: id, FormID: 1, Position: i})
	}
	return def
}

func questionOrder(def *forms.FormDefinition) []uint {
	out := make([]uint, len(def.Questions))
	for i, q := range def.Questions {
		out[i] = q.ID
	}
	return out
}

// --------------------- CreateForm ---------------------
func TestCreateForm_AssignsPositions(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().Create(gomock.Any()).DoAndReturn(func(def *forms.FormDefinition) error {
		def.ID = 1
		return nil
	})

	def, err := svc.CreateForm(forms.CreateFormDTO{
		DepartmentID: 2,
		Title:        "LOA Request",
		Questions: []forms.QuestionInput{
			{Prompt: "Reason", Type: forms.QuestionParagraph, Required: true},
			{Prompt: "Return date", Type: forms.QuestionShortAnswer, Required: true},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, def.Questions[0].Position)
	assert.Equal(t, 1, def.Questions[1].Position)
}

func TestCreateForm_NegativeReviewers(t *testing.T) {
	svc, _ := setupFormServiceMocks(t)

	_, err := svc.CreateForm(forms.CreateFormDTO{Title: "x", RequiredReviewers: -1})
	assert.True(t, apperrors.IsBadRequest(err))
}

// --------------------- ListAccessibleForms ---------------------
func TestListAccessibleForms_FiltersOnAccessRoles(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	defs := []forms.FormDefinition{
		{ID: 1, AccessRoleIDs: []string{"member"}},
		{ID: 2, AccessRoleIDs: []string{"staff"}},
		{ID: 3}, // open access
	}
	mockForm.EXPECT().ListActive(uint(0)).Return(defs, nil)

	p := types.Principal{UserID: 42, RoleIDs: []string{"member"}}
	visible, err := svc.ListAccessibleForms(p, 0)
	assert.NoError(t, err)
	assert.Len(t, visible, 2)
	assert.Equal(t, uint(1), visible[0].ID)
	assert.Equal(t, uint(3), visible[1].ID)
}

// --------------------- UpdateForm ---------------------
func TestUpdateForm_PatchesOnlyProvidedFields(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	def := &forms.FormDefinition{ID: 1, Title: "Old", Description: "keep me", RequiredReviewers: 2}
	mockForm.EXPECT().GetByID(uint(1)).Return(def, nil)
	mockForm.EXPECT().Save(def).Return(nil)

	title := "New"
	out, err := svc.UpdateForm(1, forms.UpdateFormDTO{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, "New", out.Title)
	assert.Equal(t, "keep me", out.Description)
	assert.Equal(t, 2, out.RequiredReviewers)
}

func TestUpdateForm_NotFound(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetByID(uint(9)).Return(nil, gorm.ErrRecordNotFound)

	title := "x"
	_, err := svc.UpdateForm(9, forms.UpdateFormDTO{Title: &title})
	assert.True(t, apperrors.IsNotFound(err))
}

// --------------------- ReorderQuestions ---------------------
func expectReorder(mockForm *mock.MockFormRepo, def *forms.FormDefinition, want map[uint]int) {
	mockForm.EXPECT().GetByID(def.ID).Return(def, nil)
	mockForm.EXPECT().SaveQuestionPositions(def.ID, want).Return(nil)
	mockForm.EXPECT().GetByID(def.ID).Return(def, nil)
}

func TestReorderQuestions_MoveUp(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	def := formWithQuestions(10, 11, 12)
	expectReorder(mockForm, def, map[uint]int{11: 0, 10: 1, 12: 2})

	_, err := svc.ReorderQuestions(1, forms.ReorderQuestionsDTO{Operation: forms.ReorderUp, QuestionID: 11})
	assert.NoError(t, err)
}

func TestReorderQuestions_MoveTopAndBottom(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	def := formWithQuestions(10, 11, 12)
	expectReorder(mockForm, def, map[uint]int{12: 0, 10: 1, 11: 2})
	_, err := svc.ReorderQuestions(1, forms.ReorderQuestionsDTO{Operation: forms.ReorderTop, QuestionID: 12})
	assert.NoError(t, err)

	def2 := formWithQuestions(10, 11, 12)
	expectReorder(mockForm, def2, map[uint]int{11: 0, 12: 1, 10: 2})
	_, err = svc.ReorderQuestions(1, forms.ReorderQuestionsDTO{Operation: forms.ReorderBottom, QuestionID: 10})
	assert.NoError(t, err)
}

func TestReorderQuestions_ToIndex(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	def := formWithQuestions(10, 11, 12, 13)
	expectReorder(mockForm, def, map[uint]int{11: 0, 12: 1, 10: 2, 13: 3})

	to := 2
	_, err := svc.ReorderQuestions(1, forms.ReorderQuestionsDTO{
		Operation:  forms.ReorderToIndex,
		QuestionID: 10,
		ToIndex:    &to,
	})
	assert.NoError(t, err)
}

func TestReorderQuestions_FullOrder(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	def := formWithQuestions(10, 11, 12)
	expectReorder(mockForm, def, map[uint]int{12: 0, 10: 1, 11: 2})

	_, err := svc.ReorderQuestions(1, forms.ReorderQuestionsDTO{
		Operation: forms.ReorderFullOrder,
		FullOrder: []uint{12, 10, 11},
	})
	assert.NoError(t, err)
}

func TestReorderQuestions_UpFromTopRejected(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetByID(uint(1)).Return(formWithQuestions(10, 11), nil)

	_, err := svc.ReorderQuestions(1, forms.ReorderQuestionsDTO{Operation: forms.ReorderUp, QuestionID: 10})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestReorderQuestions_ForeignQuestionRejected(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetByID(uint(1)).Return(formWithQuestions(10, 11), nil)

	_, err := svc.ReorderQuestions(1, forms.ReorderQuestionsDTO{Operation: forms.ReorderUp, QuestionID: 99})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestReorderQuestions_FullOrderMustBePermutation(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().GetByID(uint(1)).Return(formWithQuestions(10, 11, 12), nil).Times(3)

	cases := [][]uint{
		{10, 11},         // missing one
		{10, 11, 11},     // duplicate
		{10, 11, 12, 13}, // wrong length
	}
	for _, order := range cases {
		_, err := svc.ReorderQuestions(1, forms.ReorderQuestionsDTO{
			Operation: forms.ReorderFullOrder,
			FullOrder: order,
		})
		assert.True(t, apperrors.IsBadRequest(err), "order %v", order)
	}
}

// --------------------- Pure helpers ---------------------
func TestApplySingleMove_NoOpWhenAlreadyThere(t *testing.T) {
	def := formWithQuestions(10, 11, 12)

	out, err := applySingleMove(def.Questions, forms.ReorderQuestionsDTO{
		Operation:  forms.ReorderTop,
		QuestionID: 10,
	})
	assert.NoError(t, err)
	assert.Equal(t, []uint{10, 11, 12}, questionOrder(&forms.FormDefinition{Questions: out}))
}

func TestApplySingleMove_PreservesCount(t *testing.T) {
	def := formWithQuestions(10, 11, 12, 13, 14)

	out, err := applySingleMove(def.Questions, forms.ReorderQuestionsDTO{
		Operation:  forms.ReorderDown,
		QuestionID: 12,
	})
	assert.NoError(t, err)
	assert.Len(t, out, 5)
	assert.Equal(t, []uint{10, 11, 13, 12, 14}, questionOrder(&forms.FormDefinition{Questions: out}))
}
