package sql

import (
	"context"
	"time"

	"github.com/fsdevblog/tagmark/internal/fingerprint"
	"github.com/fsdevblog/tagmark/internal/models"
)

func (s *RepoSuite) newURL(raw string) *models.URL {
	return &models.URL{URL: raw, URLHash: fingerprint.Sum(raw)}
}

func (s *RepoSuite) TestCreateOrGetDedup() {
	ctx := context.Background()

	first, created, err := s.urlRepo.CreateOrGet(ctx, s.newURL("https://example.com"))
	s.Require().NoError(err)
	s.True(created)
	s.NotZero(first.ID)

	second, created, err := s.urlRepo.CreateOrGet(ctx, s.newURL("https://example.com"))
	s.Require().NoError(err)
	s.False(created)
	s.Equal(first.ID, second.ID)

	s.EqualValues(1, s.count(&models.URL{}, "url_hash = ?", first.URLHash))
}

func (s *RepoSuite) TestTrailingSlashIsDistinct() {
	ctx := context.Background()

	a, _, err := s.urlRepo.CreateOrGet(ctx, s.newURL("https://example.com"))
	s.Require().NoError(err)
	b, created, err := s.urlRepo.CreateOrGet(ctx, s.newURL("https://example.com/"))
	s.Require().NoError(err)

	s.True(created)
	s.NotEqual(a.ID, b.ID)
}

func (s *RepoSuite) TestCreateOrGetWithTagsMerge() {
	ctx := context.Background()

	first, created, err := s.urlRepo.CreateOrGetWithTags(ctx, s.newURL("https://example.com"), []string{"news", "tech"})
	s.Require().NoError(err)
	s.True(created)

	second, created, err := s.urlRepo.CreateOrGetWithTags(ctx, s.newURL("https://example.com"), []string{"tech", "sports"})
	s.Require().NoError(err)
	s.False(created)
	s.Equal(first.ID, second.ID)

	// теги сливаются: {news, tech} + {tech, sports} = три привязки
	s.EqualValues(3, s.count(&models.URLTag{}, "url_id = ?", first.ID))
	s.EqualValues(3, s.count(&models.Tag{}, ""))
}

func (s *RepoSuite) TestLinkDuplicateIsNoop() {
	ctx := context.Background()

	mURL, _, err := s.urlRepo.CreateOrGetWithTags(ctx, s.newURL("https://example.com"), []string{"go", "go"})
	s.Require().NoError(err)

	_, _, err = s.urlRepo.CreateOrGetWithTags(ctx, s.newURL("https://example.com"), []string{"go"})
	s.Require().NoError(err)

	s.EqualValues(1, s.count(&models.URLTag{}, "url_id = ?", mURL.ID))
}

func (s *RepoSuite) TestDeleteByIDCascades() {
	ctx := context.Background()

	mURL, _, err := s.urlRepo.CreateOrGetWithTags(ctx, s.newURL("https://example.com"), []string{"news", "tech"})
	s.Require().NoError(err)

	other, _, err := s.urlRepo.CreateOrGetWithTags(ctx, s.newURL("https://other.com"), []string{"news"})
	s.Require().NoError(err)

	found, err := s.urlRepo.DeleteByID(ctx, mURL.ID)
	s.Require().NoError(err)
	s.True(found)

	// привязки удалены, сами теги остались - на news ссылается other
	s.EqualValues(0, s.count(&models.URLTag{}, "url_id = ?", mURL.ID))
	s.EqualValues(2, s.count(&models.Tag{}, ""))
	s.EqualValues(1, s.count(&models.URLTag{}, "url_id = ?", other.ID))

	found, err = s.urlRepo.DeleteByID(ctx, mURL.ID)
	s.Require().NoError(err)
	s.False(found)
}

func (s *RepoSuite) TestDeleteByHash() {
	ctx := context.Background()

	mURL, _, err := s.urlRepo.CreateOrGet(ctx, s.newURL("https://example.com"))
	s.Require().NoError(err)

	found, err := s.urlRepo.DeleteByHash(ctx, mURL.URLHash)
	s.Require().NoError(err)
	s.True(found)

	found, err = s.urlRepo.DeleteByHash(ctx, fingerprint.Sum("https://nothing-here.com"))
	s.Require().NoError(err)
	s.False(found)
}

func (s *RepoSuite) TestGetAllNewestFirst() {
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	for i, raw := range []string{"https://a.com", "https://b.com", "https://c.com"} {
		mURL := s.newURL(raw)
		mURL.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		_, _, err := s.urlRepo.CreateOrGet(ctx, mURL)
		s.Require().NoError(err)
	}

	urls, err := s.urlRepo.GetAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(urls, 3)
	s.Equal("https://c.com", urls[0].URL)
	s.Equal("https://b.com", urls[1].URL)
	s.Equal("https://a.com", urls[2].URL)
}
