package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "todolist.com/todolist/internal/models"
)

// NewDatabaseClient opens the task database. The tasks table is created only
// when migrate is set; otherwise it is expected to exist already.
func NewDatabaseClient(dsn string, migrate bool) (*gorm.DB, error) {
	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: dbLogger})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if migrate {
		if err := db.AutoMigrate(&model.Task{}); err != nil {
			return nil, fmt.Errorf("migrate db: %w", err)
		}
	}

	return db, nil
}
