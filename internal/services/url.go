package services

import (
	"context"
	"strings"

	"github.com/fsdevblog/tagmark/internal/fingerprint"
	"github.com/fsdevblog/tagmark/internal/models"
	"github.com/fsdevblog/tagmark/internal/repositories"
	"github.com/pkg/errors"
)

// URLService работает с базой данных в контексте таблицы `urls`.
type URLService struct {
	urlRepo URLRepository
}

func NewURLService(urlRepo URLRepository) *URLService {
	return &URLService{urlRepo: urlRepo}
}

// Add сохраняет закладку. Повторная отправка той же строки (после обрезки
// пробелов) возвращает существующую запись и created=false - дубликатов по
// url_hash в хранилище не бывает.
func (u *URLService) Add(ctx context.Context, rawURL string) (*models.URL, bool, error) {
	mURL, validErr := buildURL(rawURL)
	if validErr != nil {
		return nil, false, validErr
	}
	res, created, err := u.urlRepo.CreateOrGet(ctx, mURL)
	if err != nil {
		return nil, false, convertRepoError(err)
	}
	return res, created, nil
}

// AddWithTags сохраняет закладку и доливает теги из строки через запятую.
// Теги сливаются с уже привязанными, а не заменяют их.
func (u *URLService) AddWithTags(ctx context.Context, rawURL string, rawTags string) (*models.URL, bool, error) {
	mURL, validErr := buildURL(rawURL)
	if validErr != nil {
		return nil, false, validErr
	}
	res, created, err := u.urlRepo.CreateOrGetWithTags(ctx, mURL, ParseTagList(rawTags))
	if err != nil {
		return nil, false, convertRepoError(err)
	}
	return res, created, nil
}

// GetAll возвращает все закладки, свежие первыми.
func (u *URLService) GetAll(ctx context.Context) ([]models.URL, error) {
	urls, err := u.urlRepo.GetAll(ctx)
	if err != nil {
		return nil, convertRepoError(err)
	}
	return urls, nil
}

// DeleteByID удаляет закладку с привязками. false если записи не было,
// это не ошибка.
func (u *URLService) DeleteByID(ctx context.Context, id uint) (bool, error) {
	found, err := u.urlRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, convertRepoError(err)
	}
	return found, nil
}

// DeleteByURL удаляет закладку по исходной строке URL (через ее хеш).
func (u *URLService) DeleteByURL(ctx context.Context, rawURL string) (bool, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return false, errors.Wrap(ErrValidation, "url is blank")
	}
	found, err := u.urlRepo.DeleteByHash(ctx, fingerprint.Sum(trimmed))
	if err != nil {
		return false, convertRepoError(err)
	}
	return found, nil
}

// buildURL валидирует сырую строку и собирает модель с дайджестом.
// Синтаксис URL намеренно не проверяем - кривые строки живут как непрозрачные
// идентификаторы, валидация (если нужна) дело вызывающей стороны.
func buildURL(rawURL string) (*models.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, errors.Wrap(ErrValidation, "url is blank")
	}
	return &models.URL{
		URL:     trimmed,
		URLHash: fingerprint.Sum(trimmed),
	}, nil
}

// convertRepoError транслирует сентинели репозитория в сентинели сервиса.
func convertRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return ErrRecordNotFound
	default:
		return ErrUnknown
	}
}
