package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Form       FormRepo
	Response   ResponseRepo
	Member     MemberRepo
	Discipline DisciplineRepo
	Shift      ShiftRepo
	User       UserRepo
	Audit      AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Form:       NewFormRepo(db),
		Response:   NewResponseRepo(db),
		Member:     NewMemberRepo(db),
		Discipline: NewDisciplineRepo(db),
		Shift:      NewShiftRepo(db),
		User:       NewUserRepo(db),
		Audit:      NewAuditRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Form:       r.Form.WithTx(tx),
		Response:   r.Response.WithTx(tx),
		Member:     r.Member.WithTx(tx),
		Discipline: r.Discipline.WithTx(tx),
		Shift:      r.Shift.WithTx(tx),
		User:       r.User.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn inside a transaction with every repository bound to it.
// State machine transitions use this so the read-validate-write sequence is
// serialized by row locks.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		// Unit tests wire mocks straight into the container.
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
