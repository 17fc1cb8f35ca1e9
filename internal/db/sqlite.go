package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLite открывает встраиваемое файловое хранилище.
func NewSQLite(dbPath string) (*Connection, error) {
	conn, connErr := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if connErr != nil {
		return nil, fmt.Errorf("connect database with path %s error: %w", dbPath, connErr)
	}
	if migrateErr := migrateSchema(conn); migrateErr != nil {
		return nil, fmt.Errorf("migrate database error: %w", migrateErr)
	}
	return &Connection{DB: conn}, nil
}
