package services

import (
	"context"

	"github.com/fsdevblog/tagmark/internal/models"
)

// TagService работает с базой данных в контексте таблицы `tags`.
type TagService struct {
	tagRepo TagRepository
}

func NewTagService(tagRepo TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// GetOrCreate идемпотентно возвращает тег по имени.
func (t *TagService) GetOrCreate(ctx context.Context, name string) (*models.Tag, error) {
	tag, err := t.tagRepo.GetOrCreate(ctx, name)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return tag, nil
}

// GetAll возвращает все теги по имени.
func (t *TagService) GetAll(ctx context.Context) ([]models.Tag, error) {
	tags, err := t.tagRepo.GetAll(ctx)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return tags, nil
}

// RemoveUnused подчищает теги без привязок. Явная операция обслуживания:
// удаление закладок и фрагментов само по себе теги не собирает.
func (t *TagService) RemoveUnused(ctx context.Context) (int64, error) {
	removed, err := t.tagRepo.DeleteUnused(ctx)
	if err != nil {
		return 0, convertRepoError(err)
	}
	return removed, nil
}
