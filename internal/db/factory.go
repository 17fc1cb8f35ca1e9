package db

import (
	"errors"
	"fmt"
)

type StorageType string

const (
	StorageTypePostgres StorageType = "postgres"
	StorageTypeSQLite   StorageType = "sqlite"
)

type FactoryConfig struct {
	StorageType  StorageType
	PostgresDSN  string
	SQLiteDBPath string
}

// NewConnection возвращает готовое подключение к выбранному движку.
// Схема мигрируется идемпотентно прямо здесь, при старте процесса.
// Весь код репозиториев дальше работает с *gorm.DB и о движке не знает.
func NewConnection(config FactoryConfig) (*Connection, error) {
	switch config.StorageType {
	case StorageTypePostgres:
		if config.PostgresDSN == "" {
			return nil, errors.New("postgres dsn is empty")
		}
		return NewPostgres(config.PostgresDSN)
	case StorageTypeSQLite:
		if config.SQLiteDBPath == "" {
			return nil, errors.New("sqlite db path is empty")
		}
		return NewSQLite(config.SQLiteDBPath)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.StorageType)
	}
}
