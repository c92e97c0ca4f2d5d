package repository

import (
	"time"

	"github.com/halcyon-rp/depthub/internal/domain/shift"
	"gorm.io/gorm"
)

type ShiftRepo interface {
	Create(s *shift.Shift) error
	GetByID(id uint) (*shift.Shift, error)
	// ListAround returns a member's non-cancelled shifts that touch the
	// window [from, to], which callers widen for rest-period checks.
	ListAround(memberID uint, from, to time.Time) ([]shift.Shift, error)
	ListByMember(memberID uint) ([]shift.Shift, error)
	ListByDepartment(departmentID uint) ([]shift.Shift, error)
	Save(s *shift.Shift) error
	WithTx(tx *gorm.DB) ShiftRepo
}

type DBShiftRepo struct {
	db *gorm.DB
}

func NewShiftRepo(db *gorm.DB) *DBShiftRepo {
	return &DBShiftRepo{db: db}
}

func (r *DBShiftRepo) Create(s *shift.Shift) error {
	return r.db.Create(s).Error
}

func (r *DBShiftRepo) GetByID(id uint) (*shift.Shift, error) {
	var s shift.Shift
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *DBShiftRepo) ListAround(memberID uint, from, to time.Time) ([]shift.Shift, error) {
	var shifts []shift.Shift
	err := r.db.
		Where("member_id = ? AND status <> ? AND start_time < ? AND end_time > ?",
			memberID, shift.StatusCancelled, to, from).
		Order("start_time asc").
		Find(&shifts).Error
	return shifts, err
}

func (r *DBShiftRepo) ListByMember(memberID uint) ([]shift.Shift, error) {
	var shifts []shift.Shift
	err := r.db.Where("member_id = ?", memberID).Order("start_time desc").Find(&shifts).Error
	return shifts, err
}

func (r *DBShiftRepo) ListByDepartment(departmentID uint) ([]shift.Shift, error) {
	var shifts []shift.Shift
	err := r.db.Where("department_id = ?", departmentID).Order("start_time desc").Find(&shifts).Error
	return shifts, err
}

func (r *DBShiftRepo) Save(s *shift.Shift) error {
	return r.db.Save(s).Error
}

func (r *DBShiftRepo) WithTx(tx *gorm.DB) ShiftRepo {
	if tx == nil {
		return r
	}
	return &DBShiftRepo{db: tx}
}
