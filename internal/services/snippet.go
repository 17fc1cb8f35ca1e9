package services

import (
	"context"
	"strings"

	"github.com/fsdevblog/tagmark/internal/models"
	"github.com/pkg/errors"
)

// SnippetService работает с базой данных в контексте таблицы `snippets`.
type SnippetService struct {
	snippetRepo SnippetRepository
}

func NewSnippetService(snippetRepo SnippetRepository) *SnippetService {
	return &SnippetService{snippetRepo: snippetRepo}
}

// Add сохраняет фрагмент с тегами. Повторная отправка того же текста дает
// новую запись - каждое выделение пользователя храним отдельно.
func (s *SnippetService) Add(ctx context.Context, rawURL, text, rawTags string) (*models.Snippet, error) {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return nil, errors.Wrap(ErrValidation, "url is blank")
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.Wrap(ErrValidation, "snippet is blank")
	}

	mSnippet := models.Snippet{URL: trimmedURL, Snippet: text}
	res, err := s.snippetRepo.CreateWithTags(ctx, &mSnippet, ParseTagList(rawTags))
	if err != nil {
		return nil, convertRepoError(err)
	}
	return res, nil
}

// GetAll возвращает все фрагменты, свежие первыми.
func (s *SnippetService) GetAll(ctx context.Context) ([]models.Snippet, error) {
	snippets, err := s.snippetRepo.GetAll(ctx)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return snippets, nil
}

// DeleteByID удаляет фрагмент с привязками. false если записи не было.
func (s *SnippetService) DeleteByID(ctx context.Context, id uint) (bool, error) {
	found, err := s.snippetRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, convertRepoError(err)
	}
	return found, nil
}
