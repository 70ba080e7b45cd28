package repository

import (
	app "frameless/src/app"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the sqlite database and migrates the entity tables.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "can not open database")
	}

	if err := db.AutoMigrate(&app.User{}, &app.Image{}, &app.GeneratedContent{}); err != nil {
		return nil, errors.Wrap(err, "can not migrate tables")
	}
	return db, nil
}
