package repository

import (
	"github.com/halcyon-rp/depthub/internal/domain/member"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepo interface {
	GetByID(id uint) (*member.Member, error)
	// GetByIDForUpdate takes a row lock; only valid inside a transaction.
	GetByIDForUpdate(id uint) (*member.Member, error)
	ListByDepartment(departmentID uint) ([]member.Member, error)
	Save(m *member.Member) error
	WithTx(tx *gorm.DB) MemberRepo
}

type DBMemberRepo struct {
	db *gorm.DB
}

func NewMemberRepo(db *gorm.DB) *DBMemberRepo {
	return &DBMemberRepo{db: db}
}

func (r *DBMemberRepo) GetByID(id uint) (*member.Member, error) {
	var m member.Member
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *DBMemberRepo) GetByIDForUpdate(id uint) (*member.Member, error) {
	var m member.Member
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *DBMemberRepo) ListByDepartment(departmentID uint) ([]member.Member, error) {
	var members []member.Member
	err := r.db.Where("department_id = ?", departmentID).Order("callsign asc").Find(&members).Error
	return members, err
}

func (r *DBMemberRepo) Save(m *member.Member) error {
	return r.db.Save(m).Error
}

func (r *DBMemberRepo) WithTx(tx *gorm.DB) MemberRepo {
	if tx == nil {
		return r
	}
	return &DBMemberRepo{db: tx}
}
