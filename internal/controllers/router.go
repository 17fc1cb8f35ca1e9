package controllers

import (
	"github.com/fsdevblog/tagmark/internal/controllers/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterParams struct {
	URLService     URLStore
	SnippetService SnippetStore
	TagService     TagMaintainer
	ViewsService   ViewsProvider
	PingService    ConnectionChecker
	IndexResponse  string
	Logger         *logrus.Logger
}

func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(middlewares.GzipMiddleware())
	// расширение браузера ходит с произвольных origin
	r.Use(cors.Default())

	urlsController := NewURLsController(params.URLService, params.ViewsService)
	snippetsController := NewSnippetsController(params.SnippetService, params.ViewsService)
	tagsController := NewTagsController(params.TagService, params.ViewsService)
	healthController := NewHealthController(params.PingService, params.IndexResponse)

	r.GET("/", healthController.Index)
	r.GET("/health", healthController.Health)

	api := r.Group("/api")

	api.POST("/urls", urlsController.Create)
	api.POST("/urls/tags", urlsController.CreateWithTags)
	api.GET("/urls", urlsController.List)
	api.GET("/urls/tags", urlsController.ListWithTags)
	api.DELETE("/urls/:id", urlsController.DeleteByID)
	api.DELETE("/urls", urlsController.DeleteByURL)

	api.POST("/snippets", snippetsController.Create)
	api.GET("/snippets", snippetsController.List)
	api.DELETE("/snippets/:id", snippetsController.DeleteByID)

	api.GET("/tags", tagsController.List)
	api.POST("/tags/cleanup", tagsController.Cleanup)

	return r
}
