package services

import (
	"github.com/fsdevblog/tagmark/internal/db"
	"github.com/fsdevblog/tagmark/internal/repositories/sql"
	"github.com/sirupsen/logrus"
)

// Services сервисный слой приложения.
type Services struct {
	URLService     *URLService
	SnippetService *SnippetService
	TagService     *TagService
	ViewsService   *ViewsService
	PingService    *PingService
}

// Factory собирает сервисы поверх подключения. Репозитории написаны один раз
// против *gorm.DB, поэтому отдельных веток под sqlite и postgres здесь нет -
// выбор движка закончился на этапе db.NewConnection.
func Factory(conn *db.Connection, logger *logrus.Logger) *Services {
	return &Services{
		URLService:     NewURLService(sql.NewURLRepo(conn.DB, logger)),
		SnippetService: NewSnippetService(sql.NewSnippetRepo(conn.DB, logger)),
		TagService:     NewTagService(sql.NewTagRepo(conn.DB, logger)),
		ViewsService:   NewViewsService(sql.NewViewsRepo(conn.DB, logger)),
		PingService:    NewPingService(conn),
	}
}
