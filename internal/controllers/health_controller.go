package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController контроллер для проверки работоспособности сервиса.
type HealthController struct {
	conn          ConnectionChecker // Проверяет соединение с базой данных
	indexResponse string
}

func NewHealthController(conn ConnectionChecker, indexResponse string) *HealthController {
	return &HealthController{
		conn:          conn,
		indexResponse: indexResponse,
	}
}

// Index обрабатывает GET / запрос.
func (c *HealthController) Index(ctx *gin.Context) {
	ctx.String(http.StatusOK, c.indexResponse)
}

// Health обрабатывает GET /health запрос.
// Статус хранилища отдаем в теле, сам ответ всегда 200.
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	storageStatus := "ok"
	if err := c.conn.CheckConnection(pingCtx); err != nil {
		_ = ctx.Error(fmt.Errorf("health check: %w", err))
		storageStatus = "error"
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"storage": storageStatus,
	})
}
