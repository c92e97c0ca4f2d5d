package repository

import (
	"github.com/halcyon-rp/depthub/internal/domain/forms"
	"gorm.io/gorm"
)

type FormRepo interface {
	Create(f *forms.FormDefinition) error
	GetByID(id uint) (*forms.FormDefinition, error)
	ListActive(departmentID uint) ([]forms.FormDefinition, error)
	Save(f *forms.FormDefinition) error
	SoftDelete(id uint) error
	SaveQuestionPositions(formID uint, positions map[uint]int) error
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{db: db}
}

func (r *DBFormRepo) Create(f *forms.FormDefinition) error {
	return r.db.Create(f).Error
}

func (r *DBFormRepo) GetByID(id uint) (*forms.FormDefinition, error) {
	var f forms.FormDefinition
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *DBFormRepo) ListActive(departmentID uint) ([]forms.FormDefinition, error) {
	var defs []forms.FormDefinition
	query := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Order("created_at desc")
	if departmentID != 0 {
		query = query.Where("department_id = ?", departmentID)
	}
	err := query.Find(&defs).Error
	return defs, err
}

func (r *DBFormRepo) Save(f *forms.FormDefinition) error {
	return r.db.Save(f).Error
}

func (r *DBFormRepo) SoftDelete(id uint) error {
	return r.db.Delete(&forms.FormDefinition{}, id).Error
}

func (r *DBFormRepo) SaveQuestionPositions(formID uint, positions map[uint]int) error {
	for id, pos := range positions {
		err := r.db.Model(&forms.Question{}).
			Where("id = ? AND form_id = ?", id, formID).
			Update("position", pos).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	if tx == nil {
		return r
	}
	return &DBFormRepo{db: tx}
}
