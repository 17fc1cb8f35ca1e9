package controllers

import (
	"net/http"

	"github.com/fsdevblog/tagmark/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type URLsController struct {
	urlService   URLStore
	viewsService ViewsProvider
}

func NewURLsController(urlService URLStore, viewsService ViewsProvider) *URLsController {
	return &URLsController{
		urlService:   urlService,
		viewsService: viewsService,
	}
}

type newURLRequest struct {
	URL string `json:"url"`
}

type newURLWithTagsRequest struct {
	URL  string `json:"url"`
	Tags string `json:"tags"`
}

type deleteURLRequest struct {
	URL string `json:"url"`
}

// Create обрабатывает POST /api/urls.
// Повторная отправка той же строки возвращает существующую запись и 200 вместо 201.
func (c *URLsController) Create(ctx *gin.Context) {
	var req newURLRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "invalid request body")
		return
	}

	mURL, created, err := c.urlService.Add(ctx, req.URL)
	if err != nil {
		abortWithServiceError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, mURL)
}

// CreateWithTags обрабатывает POST /api/urls/tags.
// Теги доливаются к уже привязанным, замены нет.
func (c *URLsController) CreateWithTags(ctx *gin.Context) {
	var req newURLWithTagsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "invalid request body")
		return
	}

	mURL, created, err := c.urlService.AddWithTags(ctx, req.URL, req.Tags)
	if err != nil {
		abortWithServiceError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, mURL)
}

// List обрабатывает GET /api/urls. Свежие записи первыми.
func (c *URLsController) List(ctx *gin.Context) {
	urls, err := c.urlService.GetAll(ctx)
	if err != nil {
		abortWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, urls)
}

// ListWithTags обрабатывает GET /api/urls/tags.
func (c *URLsController) ListWithTags(ctx *gin.Context) {
	view, err := c.viewsService.URLsWithTags(ctx)
	if err != nil {
		abortWithServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// DeleteByID обрабатывает DELETE /api/urls/:id.
// Отсутствие записи отдаем как 404, для клиента это ожидаемый исход, не сбой.
func (c *URLsController) DeleteByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		ctx.String(http.StatusBadRequest, "invalid id")
		return
	}

	found, err := c.urlService.DeleteByID(ctx, id)
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

// DeleteByURL обрабатывает DELETE /api/urls с телом {"url": ...}.
func (c *URLsController) DeleteByURL(ctx *gin.Context) {
	var req deleteURLRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.String(http.StatusBadRequest, "invalid request body")
		return
	}

	found, err := c.urlService.DeleteByURL(ctx, req.URL)
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

// abortWithServiceError единая трансляция ошибок сервисного слоя в статусы.
// Ошибки валидации отличаем от ошибок хранилища: первые это 422 до любого
// обращения к базе, вторые - 500.
func abortWithServiceError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	if errors.Is(err, services.ErrValidation) {
		ctx.String(http.StatusUnprocessableEntity, err.Error())
		return
	}
	ctx.String(http.StatusInternalServerError, ErrInternal.Error())
}
