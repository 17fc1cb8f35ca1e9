package services

import (
	"context"

	"github.com/fsdevblog/tagmark/internal/models"
)

// URLRepository описывает хранилище закладок.
type URLRepository interface {
	// CreateOrGet вставляет закладку либо возвращает существующую с тем же url_hash.
	CreateOrGet(ctx context.Context, mURL *models.URL) (*models.URL, bool, error)
	// CreateOrGetWithTags делает то же и привязывает теги в одной транзакции.
	CreateOrGetWithTags(ctx context.Context, mURL *models.URL, tagNames []string) (*models.URL, bool, error)
	// GetByHash находит запись по хешу исходной строки URL.
	GetByHash(ctx context.Context, urlHash string) (*models.URL, error)
	// GetAll возвращает все записи, свежие первыми.
	GetAll(ctx context.Context) ([]models.URL, error)
	DeleteByID(ctx context.Context, id uint) (bool, error)
	DeleteByHash(ctx context.Context, urlHash string) (bool, error)
}

// TagRepository описывает хранилище тегов.
type TagRepository interface {
	GetOrCreate(ctx context.Context, name string) (*models.Tag, error)
	GetAll(ctx context.Context) ([]models.Tag, error)
	DeleteUnused(ctx context.Context) (int64, error)
}

// SnippetRepository описывает хранилище текстовых фрагментов.
type SnippetRepository interface {
	CreateWithTags(ctx context.Context, mSnippet *models.Snippet, tagNames []string) (*models.Snippet, error)
	GetAll(ctx context.Context) ([]models.Snippet, error)
	DeleteByID(ctx context.Context, id uint) (bool, error)
}

// ViewsRepository собирает агрегированные проекции для чтения.
type ViewsRepository interface {
	URLsWithTags(ctx context.Context) ([]models.URLWithTags, error)
	SnippetsWithTags(ctx context.Context) ([]models.SnippetWithTags, error)
	TagsWithURLsAndSnippets(ctx context.Context) ([]models.TagWithURLsAndSnippets, error)
}

// Pinger проверяет живость подключения к хранилищу.
type Pinger interface {
	Ping(ctx context.Context) error
}
