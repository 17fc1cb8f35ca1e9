package sql

import (
	"context"
	"time"

	"github.com/fsdevblog/tagmark/internal/models"
)

func (s *RepoSuite) TestURLsWithTags() {
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	older := s.newURL("https://old.com?utm_source=feed")
	older.CreatedAt = base
	_, _, err := s.urlRepo.CreateOrGetWithTags(ctx, older, []string{"b-tag", "a-tag"})
	s.Require().NoError(err)

	newer := s.newURL("https://new.com")
	newer.CreatedAt = base.Add(time.Minute)
	_, _, err = s.urlRepo.CreateOrGet(ctx, newer)
	s.Require().NoError(err)

	view, err := s.viewsRepo.URLsWithTags(ctx)
	s.Require().NoError(err)
	s.Require().Len(view, 2)

	// свежие первыми, закладка без тегов тоже в выдаче
	s.Equal("https://new.com", view[0].URL)
	s.Empty(view[0].Tags)

	// теги в порядке создания привязок, не по алфавиту
	s.Equal("https://old.com?utm_source=feed", view[1].URL)
	s.Equal("https://old.com", view[1].DisplayURL)
	s.Equal([]string{"b-tag", "a-tag"}, view[1].Tags)
}

func (s *RepoSuite) TestSnippetsWithTags() {
	ctx := context.Background()

	first, err := s.snippetRepo.CreateWithTags(ctx, &models.Snippet{
		URL: "https://example.com", Snippet: "first", CreatedAt: time.Now().Add(-time.Minute),
	}, []string{"y", "z"})
	s.Require().NoError(err)

	second, err := s.snippetRepo.CreateWithTags(ctx, &models.Snippet{
		URL: "https://example.com", Snippet: "second", CreatedAt: time.Now(),
	}, nil)
	s.Require().NoError(err)

	view, err := s.viewsRepo.SnippetsWithTags(ctx)
	s.Require().NoError(err)
	s.Require().Len(view, 2)

	s.Equal(second.ID, view[0].ID)
	s.Empty(view[0].Tags)
	s.Equal(first.ID, view[1].ID)
	s.Equal([]string{"y", "z"}, view[1].Tags)
}

// Полнота агрегации: закладка A с тегами {x,y}, фрагмент B с тегами {y,z}.
// Тег y должен держать и A и B, x - только A, z - только B,
// тег без привязок в выдачу не попадает.
func (s *RepoSuite) TestTagsWithURLsAndSnippets() {
	ctx := context.Background()

	_, _, err := s.urlRepo.CreateOrGetWithTags(ctx, s.newURL("https://a.com"), []string{"x", "y"})
	s.Require().NoError(err)

	snip, err := s.snippetRepo.CreateWithTags(ctx, &models.Snippet{
		URL: "https://b.com", Snippet: "quote B",
	}, []string{"y", "z"})
	s.Require().NoError(err)

	_, err = s.tagRepo.GetOrCreate(ctx, "unused")
	s.Require().NoError(err)

	view, err := s.viewsRepo.TagsWithURLsAndSnippets(ctx)
	s.Require().NoError(err)

	byName := make(map[string]models.TagWithURLsAndSnippets, len(view))
	for _, tv := range view {
		byName[tv.Tag] = tv
	}

	s.Require().Len(view, 3)
	s.NotContains(byName, "unused")

	x := byName["x"]
	s.Equal([]string{"https://a.com"}, x.URLs)
	s.Empty(x.Snippets)

	y := byName["y"]
	s.Equal([]string{"https://a.com"}, y.URLs)
	s.Require().Len(y.Snippets, 1)
	s.Equal(snip.ID, y.Snippets[0].ID)
	// фрагмент несет свой полный список тегов, не только группирующий
	s.Equal([]string{"y", "z"}, y.Snippets[0].Tags)

	z := byName["z"]
	s.Empty(z.URLs)
	s.Require().Len(z.Snippets, 1)
	s.Equal("quote B", z.Snippets[0].Snippet)
}

func (s *RepoSuite) TestTagsViewOrderedByName() {
	ctx := context.Background()

	_, _, err := s.urlRepo.CreateOrGetWithTags(ctx, s.newURL("https://a.com"), []string{"zebra", "alpha", "mid"})
	s.Require().NoError(err)

	view, err := s.viewsRepo.TagsWithURLsAndSnippets(ctx)
	s.Require().NoError(err)
	s.Require().Len(view, 3)
	s.Equal("alpha", view[0].Tag)
	s.Equal("mid", view[1].Tag)
	s.Equal("zebra", view[2].Tag)
}
