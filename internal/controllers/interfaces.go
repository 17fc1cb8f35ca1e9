package controllers

import (
	"context"

	"github.com/fsdevblog/tagmark/internal/models"
)

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

// URLStore операции над закладками.
type URLStore interface {
	// Add сохраняет закладку. Возвращает модель, булево значение новая запись или нет и ошибку.
	Add(ctx context.Context, rawURL string) (*models.URL, bool, error)
	// AddWithTags делает то же и доливает теги из строки через запятую.
	AddWithTags(ctx context.Context, rawURL string, rawTags string) (*models.URL, bool, error)
	GetAll(ctx context.Context) ([]models.URL, error)
	DeleteByID(ctx context.Context, id uint) (bool, error)
	DeleteByURL(ctx context.Context, rawURL string) (bool, error)
}

// SnippetStore операции над текстовыми фрагментами.
type SnippetStore interface {
	Add(ctx context.Context, rawURL, text, rawTags string) (*models.Snippet, error)
	DeleteByID(ctx context.Context, id uint) (bool, error)
}

// TagMaintainer операции обслуживания тегов.
type TagMaintainer interface {
	RemoveUnused(ctx context.Context) (int64, error)
}

// ViewsProvider агрегированные проекции для чтения.
type ViewsProvider interface {
	URLsWithTags(ctx context.Context) ([]models.URLWithTags, error)
	SnippetsWithTags(ctx context.Context) ([]models.SnippetWithTags, error)
	TagsWithURLsAndSnippets(ctx context.Context) ([]models.TagWithURLsAndSnippets, error)
}
