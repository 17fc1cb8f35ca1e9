package services

import (
	"context"

	"github.com/fsdevblog/tagmark/internal/models"
)

// ViewsService отдает агрегированные проекции. Состояние не меняет.
type ViewsService struct {
	viewsRepo ViewsRepository
}

func NewViewsService(viewsRepo ViewsRepository) *ViewsService {
	return &ViewsService{viewsRepo: viewsRepo}
}

func (v *ViewsService) URLsWithTags(ctx context.Context) ([]models.URLWithTags, error) {
	view, err := v.viewsRepo.URLsWithTags(ctx)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return view, nil
}

func (v *ViewsService) SnippetsWithTags(ctx context.Context) ([]models.SnippetWithTags, error) {
	view, err := v.viewsRepo.SnippetsWithTags(ctx)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return view, nil
}

func (v *ViewsService) TagsWithURLsAndSnippets(ctx context.Context) ([]models.TagWithURLsAndSnippets, error) {
	view, err := v.viewsRepo.TagsWithURLsAndSnippets(ctx)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return view, nil
}
