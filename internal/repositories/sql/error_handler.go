package sql

import (
	"github.com/fsdevblog/tagmark/internal/repositories"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ConvertErrorType транслирует ошибки gorm в сентинели слоя репозиториев.
// Благодаря gorm.Config{TranslateError: true} ошибки уникальности обоих
// движков приходят сюда уже единым gorm.ErrDuplicatedKey.
func ConvertErrorType(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repositories.ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repositories.ErrNotFound
	default:
		return repositories.ErrUnknown
	}
}
