package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SnippetsController struct {
	snippetService SnippetStore
	viewsService   ViewsProvider
}

func NewSnippetsController(snippetService SnippetStore, viewsService ViewsProvider) *SnippetsController {
	return &SnippetsController{
		snippetService: snippetService,
		viewsService:   viewsService,
	}
}

type newSnippetRequest struct {
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Tags    string `json:"tags"`
}

// Create обрабатывает POST /api/snippets. Дедупликации нет, каждый вызов
// создает новую запись.
func (c *SnippetsController) Create(ctx *gin.Context) {
	var req newSnippetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "invalid request body")
		return
	}

	mSnippet, err := c.snippetService.Add(ctx, req.URL, req.Snippet, req.Tags)
	if err != nil {
		abortWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, mSnippet)
}

// List обрабатывает GET /api/snippets, каждый фрагмент со своими тегами.
func (c *SnippetsController) List(ctx *gin.Context) {
	view, err := c.viewsService.SnippetsWithTags(ctx)
	if err != nil {
		abortWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// DeleteByID обрабатывает DELETE /api/snippets/:id.
func (c *SnippetsController) DeleteByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		ctx.String(http.StatusBadRequest, "invalid id")
		return
	}

	found, err := c.snippetService.DeleteByID(ctx, id)
	if err != nil {
		abortWithServiceError(ctx, err)
		return
	}
	if !found {
		ctx.String(http.StatusNotFound, ErrRecordNotFound.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}
