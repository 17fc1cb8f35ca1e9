package sql

import (
	"context"

	"github.com/fsdevblog/tagmark/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewTagRepo(db *gorm.DB, logger *logrus.Logger) *TagRepo {
	return &TagRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/tag"),
	}
}

// GetOrCreate идемпотентно возвращает тег по имени, создавая его при отсутствии.
func (t *TagRepo) GetOrCreate(ctx context.Context, name string) (*models.Tag, error) {
	tag, err := getOrCreateTag(t.db.WithContext(ctx), name)
	if err != nil {
		t.logger.WithError(err).Errorf("failed to get or create tag %s", name)
		return nil, err
	}
	return tag, nil
}

func (t *TagRepo) GetAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := t.db.WithContext(ctx).Order("name").Find(&tags).Error; err != nil {
		t.logger.WithError(err).Error("failed to list tags")
		return nil, ConvertErrorType(err)
	}
	return tags, nil
}

// DeleteUnused удаляет теги без единой привязки. Запускается только явно,
// обычные удаления закладок и фрагментов осиротевшие теги не трогают.
func (t *TagRepo) DeleteUnused(ctx context.Context) (int64, error) {
	res := t.db.WithContext(ctx).
		Where("id NOT IN (?)", t.db.Model(&models.URLTag{}).Select("tag_id")).
		Where("id NOT IN (?)", t.db.Model(&models.SnippetTag{}).Select("tag_id")).
		Delete(&models.Tag{})
	if res.Error != nil {
		t.logger.WithError(res.Error).Error("failed to delete unused tags")
		return 0, ConvertErrorType(res.Error)
	}
	return res.RowsAffected, nil
}

// getOrCreateTag общая для репозиториев реализация get-or-create.
// Вставка идет с ON CONFLICT DO NOTHING и перечитыванием существующей записи -
// гонка двух одновременных созданий одного имени разрешается в одну строку.
// Проверка-перед-вставкой здесь не годится, она эту гонку как раз и создает.
func getOrCreateTag(tx *gorm.DB, name string) (*models.Tag, error) {
	tag := models.Tag{Name: name}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error; err != nil {
		return nil, ConvertErrorType(err)
	}
	if tag.ID != 0 {
		return &tag, nil
	}
	var existing models.Tag
	if err := tx.Where("name = ?", name).First(&existing).Error; err != nil {
		return nil, ConvertErrorType(err)
	}
	return &existing, nil
}
