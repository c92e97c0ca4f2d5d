package repository

import (
	"errors"

	"github.com/halcyon-rp/depthub/internal/domain/forms"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponseRepo interface {
	Create(resp *forms.FormResponse) error
	GetByID(id uint) (*forms.FormResponse, error)
	// GetByIDForUpdate takes a row lock; only valid inside a transaction.
	GetByIDForUpdate(id uint) (*forms.FormResponse, error)
	FindDraft(formID, userID uint) (*forms.FormResponse, error)
	Save(resp *forms.FormResponse) error
	AppendDecision(d *forms.ReviewerDecision) error
	ListByUser(userID uint) ([]forms.FormResponse, error)
	ListByStatusForForms(status forms.Status, formIDs []uint) ([]forms.FormResponse, error)
	WithTx(tx *gorm.DB) ResponseRepo
}

type DBResponseRepo struct {
	db *gorm.DB
}

func NewResponseRepo(db *gorm.DB) *DBResponseRepo {
	return &DBResponseRepo{db: db}
}

func decisionsOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("reviewed_at asc, id asc")
}

func (r *DBResponseRepo) Create(resp *forms.FormResponse) error {
	return r.db.Create(resp).Error
}

func (r *DBResponseRepo) GetByID(id uint) (*forms.FormResponse, error) {
	var resp forms.FormResponse
	err := r.db.Preload("Decisions", decisionsOrdered).First(&resp, id).Error
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *DBResponseRepo) GetByIDForUpdate(id uint) (*forms.FormResponse, error) {
	var resp forms.FormResponse
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&resp, id).Error
	if err != nil {
		return nil, err
	}
	err = r.db.Where("response_id = ?", id).Order("reviewed_at asc, id asc").
		Find(&resp.Decisions).Error
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *DBResponseRepo) FindDraft(formID, userID uint) (*forms.FormResponse, error) {
	var resp forms.FormResponse
	err := r.db.
		Where("form_id = ? AND user_id = ? AND status = ?", formID, userID, forms.StatusDraft).
		First(&resp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resp, nil
}

func (r *DBResponseRepo) Save(resp *forms.FormResponse) error {
	return r.db.Omit("Decisions").Save(resp).Error
}

func (r *DBResponseRepo) AppendDecision(d *forms.ReviewerDecision) error {
	return r.db.Create(d).Error
}

func (r *DBResponseRepo) ListByUser(userID uint) ([]forms.FormResponse, error) {
	var resps []forms.FormResponse
	err := r.db.
		Where("user_id = ?", userID).
		Preload("Decisions", decisionsOrdered).
		Order("created_at desc").
		Find(&resps).Error
	return resps, err
}

func (r *DBResponseRepo) ListByStatusForForms(status forms.Status, formIDs []uint) ([]forms.FormResponse, error) {
	if len(formIDs) == 0 {
		return nil, nil
	}
	var resps []forms.FormResponse
	err := r.db.
		Where("status = ? AND form_id IN ?", status, formIDs).
		Preload("Decisions", decisionsOrdered).
		Order("submitted_at asc").
		Find(&resps).Error
	return resps, err
}

func (r *DBResponseRepo) WithTx(tx *gorm.DB) ResponseRepo {
	if tx == nil {
		return r
	}
	return &DBResponseRepo{db: tx}
}
