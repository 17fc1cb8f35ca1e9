package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type TagsController struct {
	tagService   TagMaintainer
	viewsService ViewsProvider
}

func NewTagsController(tagService TagMaintainer, viewsService ViewsProvider) *TagsController {
	return &TagsController{
		tagService:   tagService,
		viewsService: viewsService,
	}
}

// List обрабатывает GET /api/tags: каждый тег со своими закладками и
// фрагментами. Группировку, фильтрацию и сворачивание делает клиент.
func (c *TagsController) List(ctx *gin.Context) {
	view, err := c.viewsService.TagsWithURLsAndSnippets(ctx)
	if err != nil {
		abortWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Cleanup обрабатывает POST /api/tags/cleanup - явная чистка тегов без привязок.
func (c *TagsController) Cleanup(ctx *gin.Context) {
	removed, err := c.tagService.RemoveUnused(ctx)
	if err != nil {
		abortWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"removed": removed})
}
