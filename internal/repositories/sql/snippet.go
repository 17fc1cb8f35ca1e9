package sql

import (
	"context"

	"github.com/fsdevblog/tagmark/internal/models"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SnippetRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewSnippetRepo(db *gorm.DB, logger *logrus.Logger) *SnippetRepo {
	return &SnippetRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/snippet"),
	}
}

// CreateWithTags сохраняет фрагмент и привязывает теги в одной транзакции.
// Дедупликации нет: одинаковые фрагменты дают отдельные записи.
func (s *SnippetRepo) CreateWithTags(
	ctx context.Context,
	mSnippet *models.Snippet,
	tagNames []string,
) (*models.Snippet, error) {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mSnippet).Error; err != nil {
			return ConvertErrorType(err)
		}
		for _, name := range tagNames {
			tag, tagErr := getOrCreateTag(tx, name)
			if tagErr != nil {
				return tagErr
			}
			if linkErr := linkSnippetTag(tx, mSnippet.ID, tag.ID); linkErr != nil {
				return linkErr
			}
		}
		return nil
	})
	if txErr != nil {
		s.logger.WithError(txErr).Errorf("failed to create snippet %+v with tags %v", *mSnippet, tagNames)
		return nil, txErr
	}
	return mSnippet, nil
}

// GetAll возвращает все фрагменты, свежие первыми.
func (s *SnippetRepo) GetAll(ctx context.Context) ([]models.Snippet, error) {
	var snippets []models.Snippet
	err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&snippets).Error
	if err != nil {
		s.logger.WithError(err).Error("failed to list snippets")
		return nil, ConvertErrorType(err)
	}
	return snippets, nil
}

// DeleteByID удаляет фрагмент и его привязки. Возвращает false если записи не было.
func (s *SnippetRepo) DeleteByID(ctx context.Context, id uint) (bool, error) {
	var found bool
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mSnippet models.Snippet
		if err := tx.First(&mSnippet, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return ConvertErrorType(err)
		}
		if err := tx.Where("snippet_id = ?", id).Delete(&models.SnippetTag{}).Error; err != nil {
			return ConvertErrorType(err)
		}
		if err := tx.Delete(&models.Snippet{}, id).Error; err != nil {
			return ConvertErrorType(err)
		}
		found = true
		return nil
	})
	if txErr != nil {
		s.logger.WithError(txErr).Errorf("failed to delete snippet %d", id)
		return false, txErr
	}
	return found, nil
}

// linkSnippetTag создает привязку фрагмента к тегу, повторная привязка - no-op.
func linkSnippetTag(tx *gorm.DB, snippetID, tagID uint) error {
	link := models.SnippetTag{SnippetID: snippetID, TagID: tagID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
		return ConvertErrorType(err)
	}
	return nil
}
