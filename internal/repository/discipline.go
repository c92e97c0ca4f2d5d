package repository

import (
	"time"

	"github.com/halcyon-rp/depthub/internal/domain/discipline"
	"gorm.io/gorm"
)

type DisciplineRepo interface {
	Create(a *discipline.DisciplinaryAction) error
	GetByID(id uint) (*discipline.DisciplinaryAction, error)
	// ListExpired returns active rows of one action type whose expiry has
	// passed, oldest expiry first so each is processed in arrival order.
	ListExpired(actionType discipline.ActionType, now time.Time) ([]discipline.DisciplinaryAction, error)
	ListActiveByMember(memberID uint) ([]discipline.DisciplinaryAction, error)
	Save(a *discipline.DisciplinaryAction) error
	WithTx(tx *gorm.DB) DisciplineRepo
}

type DBDisciplineRepo struct {
	db *gorm.DB
}

func NewDisciplineRepo(db *gorm.DB) *DBDisciplineRepo {
	return &DBDisciplineRepo{db: db}
}

func (r *DBDisciplineRepo) Create(a *discipline.DisciplinaryAction) error {
	return r.db.Create(a).Error
}

func (r *DBDisciplineRepo) GetByID(id uint) (*discipline.DisciplinaryAction, error) {
	var a discipline.DisciplinaryAction
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *DBDisciplineRepo) ListExpired(actionType discipline.ActionType, now time.Time) ([]discipline.DisciplinaryAction, error) {
	var actions []discipline.DisciplinaryAction
	err := r.db.
		Where("action_type = ? AND is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?",
			actionType, true, now).
		Order("expires_at asc, id asc").
		Find(&actions).Error
	return actions, err
}

func (r *DBDisciplineRepo) ListActiveByMember(memberID uint) ([]discipline.DisciplinaryAction, error) {
	var actions []discipline.DisciplinaryAction
	err := r.db.
		Where("member_id = ? AND is_active = ?", memberID, true).
		Order("issued_at desc").
		Find(&actions).Error
	return actions, err
}

func (r *DBDisciplineRepo) Save(a *discipline.DisciplinaryAction) error {
	return r.db.Save(a).Error
}

func (r *DBDisciplineRepo) WithTx(tx *gorm.DB) DisciplineRepo {
	if tx == nil {
		return r
	}
	return &DBDisciplineRepo{db: tx}
}
