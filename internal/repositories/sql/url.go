package sql

import (
	"context"

	"github.com/fsdevblog/tagmark/internal/models"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type URLRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewURLRepo(db *gorm.DB, logger *logrus.Logger) *URLRepo {
	return &URLRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/url"),
	}
}

// CreateOrGet вставляет закладку либо возвращает существующую с тем же хешем.
// Второе значение true если запись действительно создана.
func (u *URLRepo) CreateOrGet(ctx context.Context, mURL *models.URL) (*models.URL, bool, error) {
	res, created, err := createOrGetURL(u.db.WithContext(ctx), mURL)
	if err != nil {
		u.logger.WithError(err).Errorf("failed to create record %+v", *mURL)
		return nil, false, err
	}
	return res, created, nil
}

// CreateOrGetWithTags то же что CreateOrGet, но дополнительно привязывает теги.
// Вся операция выполняется в одной транзакции: либо закладка появляется вместе
// со всеми привязками, либо не появляется вовсе.
func (u *URLRepo) CreateOrGetWithTags(
	ctx context.Context,
	mURL *models.URL,
	tagNames []string,
) (*models.URL, bool, error) {
	var result *models.URL
	var created bool

	txErr := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		result, created, err = createOrGetURL(tx, mURL)
		if err != nil {
			return err
		}
		for _, name := range tagNames {
			tag, tagErr := getOrCreateTag(tx, name)
			if tagErr != nil {
				return tagErr
			}
			if linkErr := linkURLTag(tx, result.ID, tag.ID); linkErr != nil {
				return linkErr
			}
		}
		return nil
	})
	if txErr != nil {
		u.logger.WithError(txErr).Errorf("failed to create record %+v with tags %v", *mURL, tagNames)
		return nil, false, txErr
	}
	return result, created, nil
}

func (u *URLRepo) GetByHash(ctx context.Context, urlHash string) (*models.URL, error) {
	var mURL models.URL
	if err := u.db.WithContext(ctx).Where("url_hash = ?", urlHash).First(&mURL).Error; err != nil {
		return nil, ConvertErrorType(err)
	}
	return &mURL, nil
}

// GetAll возвращает все закладки, свежие первыми.
func (u *URLRepo) GetAll(ctx context.Context) ([]models.URL, error) {
	var urls []models.URL
	err := u.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&urls).Error
	if err != nil {
		u.logger.WithError(err).Error("failed to list urls")
		return nil, ConvertErrorType(err)
	}
	return urls, nil
}

// DeleteByID удаляет закладку и ее привязки к тегам. Сами теги не трогаем,
// на них могут ссылаться другие записи. Возвращает false если записи не было.
func (u *URLRepo) DeleteByID(ctx context.Context, id uint) (bool, error) {
	return u.deleteWhere(ctx, "id = ?", id)
}

// DeleteByHash удаляет закладку по хешу исходной строки URL.
func (u *URLRepo) DeleteByHash(ctx context.Context, urlHash string) (bool, error) {
	return u.deleteWhere(ctx, "url_hash = ?", urlHash)
}

func (u *URLRepo) deleteWhere(ctx context.Context, query string, arg any) (bool, error) {
	var found bool
	txErr := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var mURL models.URL
		if err := tx.Where(query, arg).First(&mURL).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return ConvertErrorType(err)
		}
		if err := tx.Where("url_id = ?", mURL.ID).Delete(&models.URLTag{}).Error; err != nil {
			return ConvertErrorType(err)
		}
		if err := tx.Delete(&models.URL{}, mURL.ID).Error; err != nil {
			return ConvertErrorType(err)
		}
		found = true
		return nil
	})
	if txErr != nil {
		u.logger.WithError(txErr).Errorf("failed to delete url by %s", query)
		return false, txErr
	}
	return found, nil
}

// createOrGetURL вставка с поглощением конфликта уникальности по url_hash.
// При конфликте перечитываем существующую строку - наивная проверка до вставки
// под конкурентной нагрузкой давала бы дубликаты.
func createOrGetURL(tx *gorm.DB, mURL *models.URL) (*models.URL, bool, error) {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "url_hash"}},
		DoNothing: true,
	}).Create(mURL).Error
	if err != nil {
		return nil, false, ConvertErrorType(err)
	}
	if mURL.ID != 0 {
		return mURL, true, nil
	}
	var existing models.URL
	if err := tx.Where("url_hash = ?", mURL.URLHash).First(&existing).Error; err != nil {
		return nil, false, ConvertErrorType(err)
	}
	return &existing, false, nil
}

// linkURLTag создает привязку закладки к тегу, повторная привязка - no-op.
func linkURLTag(tx *gorm.DB, urlID, tagID uint) error {
	link := models.URLTag{URLID: urlID, TagID: tagID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
		return ConvertErrorType(err)
	}
	return nil
}
