package sql

import (
	"context"
	"sync"

	"github.com/fsdevblog/tagmark/internal/fingerprint"
	"github.com/fsdevblog/tagmark/internal/models"
)

func (s *RepoSuite) TestGetOrCreateIdempotent() {
	ctx := context.Background()

	first, err := s.tagRepo.GetOrCreate(ctx, "news")
	s.Require().NoError(err)
	s.NotZero(first.ID)

	second, err := s.tagRepo.GetOrCreate(ctx, "news")
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)

	s.EqualValues(1, s.count(&models.Tag{}, "name = ?", "news"))
}

func (s *RepoSuite) TestGetOrCreateCaseSensitive() {
	ctx := context.Background()

	lower, err := s.tagRepo.GetOrCreate(ctx, "news")
	s.Require().NoError(err)
	upper, err := s.tagRepo.GetOrCreate(ctx, "News")
	s.Require().NoError(err)

	s.NotEqual(lower.ID, upper.ID)
}

func (s *RepoSuite) TestGetOrCreateConcurrent() {
	ctx := context.Background()
	const workers = 8

	ids := make([]uint, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			tag, err := s.tagRepo.GetOrCreate(ctx, "race")
			if err == nil {
				ids[n] = tag.ID
			}
			errs[n] = err
		}(i)
	}
	wg.Wait()

	for i := range workers {
		s.Require().NoError(errs[i])
		s.Equal(ids[0], ids[i])
	}
	s.EqualValues(1, s.count(&models.Tag{}, "name = ?", "race"))
}

func (s *RepoSuite) TestDeleteUnused() {
	ctx := context.Background()

	_, _, err := s.urlRepo.CreateOrGetWithTags(ctx, &models.URL{
		URL:     "https://example.com",
		URLHash: fingerprint.Sum("https://example.com"),
	}, []string{"linked"})
	s.Require().NoError(err)

	_, err = s.tagRepo.GetOrCreate(ctx, "orphan")
	s.Require().NoError(err)

	removed, err := s.tagRepo.DeleteUnused(ctx)
	s.Require().NoError(err)
	s.EqualValues(1, removed)

	s.EqualValues(1, s.count(&models.Tag{}, "name = ?", "linked"))
	s.EqualValues(0, s.count(&models.Tag{}, "name = ?", "orphan"))
}
