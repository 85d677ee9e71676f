package pkg

import (
	"fmt"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/student-tracker/tracker-service/internal/config"
	"github.com/student-tracker/tracker-service/internal/models"
)

var (
	dbOnce sync.Once
	dbConn *gorm.DB
	dbErr  error
)

// InitDatabase opens the shared database handle. The handle is opened once
// per process: concurrent first callers race harmlessly through sync.Once and
// all receive the same connection. It is closed only at process exit.
func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	dbOnce.Do(func() {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			dbErr = fmt.Errorf("failed to open database: %w", err)
			return
		}

		if err := db.AutoMigrate(
			&models.User{},
			&models.Course{},
			&models.Assignment{},
			&models.Activity{},
		); err != nil {
			dbErr = fmt.Errorf("failed to migrate database: %w", err)
			return
		}

		dbConn = db
	})
	return dbConn, dbErr
}
