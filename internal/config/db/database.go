package db

import (
	"fmt"
	"log"

	"github.com/halcyon-rp/depthub/internal/config"
	"github.com/halcyon-rp/depthub/internal/domain/audit"
	"github.com/halcyon-rp/depthub/internal/domain/discipline"
	"github.com/halcyon-rp/depthub/internal/domain/forms"
	"github.com/halcyon-rp/depthub/internal/domain/member"
	"github.com/halcyon-rp/depthub/internal/domain/shift"
	"github.com/halcyon-rp/depthub/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	log.Println("Database connected")
}

// InitWithGormDB wires an externally-created connection; integration tests
// use it with testcontainers.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&member.Member{},
		&forms.FormDefinition{},
		&forms.Question{},
		&forms.FormResponse{},
		&forms.ReviewerDecision{},
		&discipline.DisciplinaryAction{},
		&shift.Shift{},
		&audit.AuditLog{},
	)
}
