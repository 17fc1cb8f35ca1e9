package db

import (
	"context"
	"fmt"

	"github.com/fsdevblog/tagmark/internal/models"
	"gorm.io/gorm"
)

// Connection обертка над *gorm.DB, скрывающая тип движка от остального кода.
type Connection struct {
	DB *gorm.DB
}

// Ping проверяет живость подключения.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.DB.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("ping storage: %w", err)
	}
	return nil
}

// migrateSchema создает пять таблиц предметной области (create-if-not-exists).
// Вызывается обоими движками, диалектные различия разруливает gorm.
func migrateSchema(conn *gorm.DB) error {
	err := conn.AutoMigrate(
		&models.URL{},
		&models.Tag{},
		&models.URLTag{},
		&models.Snippet{},
		&models.SnippetTag{},
	)
	if err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}
