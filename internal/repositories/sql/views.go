package sql

import (
	"context"
	"strings"

	"github.com/fsdevblog/tagmark/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ViewsRepo собирает агрегированные проекции для чтения. Только чтение,
// каждая проекция строится внутри одной транзакции чтобы не увидеть
// полуудаленный граф привязок.
type ViewsRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewViewsRepo(db *gorm.DB, logger *logrus.Logger) *ViewsRepo {
	return &ViewsRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/views"),
	}
}

type urlTagRow struct {
	URLID uint
	TagID uint
	URL   string
	Name  string
}

type snippetTagRow struct {
	SnippetID uint
	TagID     uint
	Name      string
}

// URLsWithTags все закладки (свежие первыми) с именами тегов в порядке
// создания привязок.
func (v *ViewsRepo) URLsWithTags(ctx context.Context) ([]models.URLWithTags, error) {
	var out []models.URLWithTags
	txErr := v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var urls []models.URL
		if err := tx.Order("created_at DESC, id DESC").Find(&urls).Error; err != nil {
			return ConvertErrorType(err)
		}

		var rows []urlTagRow
		err := tx.Model(&models.URLTag{}).
			Select("url_tags.url_id AS url_id, tags.name AS name").
			Joins("JOIN tags ON tags.id = url_tags.tag_id").
			Order("url_tags.id").
			Scan(&rows).Error
		if err != nil {
			return ConvertErrorType(err)
		}

		tagsByURL := make(map[uint][]string, len(urls))
		for _, r := range rows {
			tagsByURL[r.URLID] = append(tagsByURL[r.URLID], r.Name)
		}

		out = make([]models.URLWithTags, 0, len(urls))
		for _, u := range urls {
			tags := tagsByURL[u.ID]
			if tags == nil {
				tags = []string{}
			}
			out = append(out, models.URLWithTags{
				URL:        u.URL,
				DisplayURL: displayURL(u.URL),
				Tags:       tags,
			})
		}
		return nil
	})
	if txErr != nil {
		v.logger.WithError(txErr).Error("failed to build urls with tags view")
		return nil, txErr
	}
	return out, nil
}

// SnippetsWithTags все фрагменты (свежие первыми), каждый со списком его тегов.
func (v *ViewsRepo) SnippetsWithTags(ctx context.Context) ([]models.SnippetWithTags, error) {
	var out []models.SnippetWithTags
	txErr := v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		out, _, err = snippetsWithTags(tx)
		return err
	})
	if txErr != nil {
		v.logger.WithError(txErr).Error("failed to build snippets with tags view")
		return nil, txErr
	}
	return out, nil
}

// TagsWithURLsAndSnippets для каждого тега его закладки и фрагменты.
// Теги без единой привязки в выдачу не попадают. Порядок - по имени тега.
func (v *ViewsRepo) TagsWithURLsAndSnippets(ctx context.Context) ([]models.TagWithURLsAndSnippets, error) {
	var out []models.TagWithURLsAndSnippets
	txErr := v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tags []models.Tag
		if err := tx.Order("name").Find(&tags).Error; err != nil {
			return ConvertErrorType(err)
		}

		var urlRows []urlTagRow
		err := tx.Model(&models.URLTag{}).
			Select("url_tags.tag_id AS tag_id, urls.url AS url").
			Joins("JOIN urls ON urls.id = url_tags.url_id").
			Order("url_tags.id").
			Scan(&urlRows).Error
		if err != nil {
			return ConvertErrorType(err)
		}

		var linkRows []snippetTagRow
		err = tx.Model(&models.SnippetTag{}).
			Select("snippet_tags.snippet_id AS snippet_id, snippet_tags.tag_id AS tag_id").
			Order("snippet_tags.id").
			Scan(&linkRows).Error
		if err != nil {
			return ConvertErrorType(err)
		}

		_, snippetByID, snipErr := snippetsWithTags(tx)
		if snipErr != nil {
			return snipErr
		}

		urlsByTag := make(map[uint][]string)
		for _, r := range urlRows {
			urlsByTag[r.TagID] = append(urlsByTag[r.TagID], r.URL)
		}
		snippetsByTag := make(map[uint][]models.SnippetWithTags)
		for _, r := range linkRows {
			if snip, ok := snippetByID[r.SnippetID]; ok {
				snippetsByTag[r.TagID] = append(snippetsByTag[r.TagID], snip)
			}
		}

		out = make([]models.TagWithURLsAndSnippets, 0, len(tags))
		for _, tag := range tags {
			urls := urlsByTag[tag.ID]
			snippets := snippetsByTag[tag.ID]
			if len(urls) == 0 && len(snippets) == 0 {
				continue
			}
			if urls == nil {
				urls = []string{}
			}
			if snippets == nil {
				snippets = []models.SnippetWithTags{}
			}
			out = append(out, models.TagWithURLsAndSnippets{
				Tag:      tag.Name,
				URLs:     urls,
				Snippets: snippets,
			})
		}
		return nil
	})
	if txErr != nil {
		v.logger.WithError(txErr).Error("failed to build tags view")
		return nil, txErr
	}
	return out, nil
}

// snippetsWithTags общая сборка фрагментов с тегами: слайс в порядке
// свежие-первыми и индекс по id для группировки по тегам.
func snippetsWithTags(tx *gorm.DB) ([]models.SnippetWithTags, map[uint]models.SnippetWithTags, error) {
	var snippets []models.Snippet
	if err := tx.Order("created_at DESC, id DESC").Find(&snippets).Error; err != nil {
		return nil, nil, ConvertErrorType(err)
	}

	var rows []snippetTagRow
	err := tx.Model(&models.SnippetTag{}).
		Select("snippet_tags.snippet_id AS snippet_id, tags.name AS name").
		Joins("JOIN tags ON tags.id = snippet_tags.tag_id").
		Order("snippet_tags.id").
		Scan(&rows).Error
	if err != nil {
		return nil, nil, ConvertErrorType(err)
	}

	tagsBySnippet := make(map[uint][]string, len(snippets))
	for _, r := range rows {
		tagsBySnippet[r.SnippetID] = append(tagsBySnippet[r.SnippetID], r.Name)
	}

	out := make([]models.SnippetWithTags, 0, len(snippets))
	byID := make(map[uint]models.SnippetWithTags, len(snippets))
	for _, s := range snippets {
		tags := tagsBySnippet[s.ID]
		if tags == nil {
			tags = []string{}
		}
		view := models.SnippetWithTags{
			ID:      s.ID,
			URL:     s.URL,
			Snippet: s.Snippet,
			Tags:    tags,
		}
		out = append(out, view)
		byID[s.ID] = view
	}
	return out, byID, nil
}

// displayURL обрезает query строку, для рендера списка закладок.
func displayURL(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}
	return raw
}
