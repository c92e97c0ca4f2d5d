package repository

import (
	"github.com/halcyon-rp/depthub/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetByID(id uint) (user.User, error)
	GetByUsername(username string) (user.User, error)
	GetByDiscordID(discordID string) (user.User, error)
	Save(u *user.User) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) GetByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetByDiscordID(discordID string) (user.User, error) {
	var u user.User
	err := r.db.Where("discord_id = ?", discordID).First(&u).Error
	return u, err
}

func (r *DBUserRepo) Save(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
