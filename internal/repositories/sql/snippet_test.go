package sql

import (
	"context"

	"github.com/fsdevblog/tagmark/internal/models"
)

func (s *RepoSuite) TestSnippetCreateWithTags() {
	ctx := context.Background()

	snip := &models.Snippet{URL: "https://example.com", Snippet: "a quote"}
	created, err := s.snippetRepo.CreateWithTags(ctx, snip, []string{"go", "db"})
	s.Require().NoError(err)
	s.NotZero(created.ID)

	s.EqualValues(2, s.count(&models.SnippetTag{}, "snippet_id = ?", created.ID))
}

func (s *RepoSuite) TestSnippetNoDedup() {
	ctx := context.Background()

	first, err := s.snippetRepo.CreateWithTags(ctx, &models.Snippet{
		URL: "https://example.com", Snippet: "same text",
	}, nil)
	s.Require().NoError(err)

	second, err := s.snippetRepo.CreateWithTags(ctx, &models.Snippet{
		URL: "https://example.com", Snippet: "same text",
	}, nil)
	s.Require().NoError(err)

	// каждое выделение - отдельная запись
	s.NotEqual(first.ID, second.ID)
	s.EqualValues(2, s.count(&models.Snippet{}, "snippet = ?", "same text"))
}

func (s *RepoSuite) TestSnippetDeleteCascades() {
	ctx := context.Background()

	snip, err := s.snippetRepo.CreateWithTags(ctx, &models.Snippet{
		URL: "https://example.com", Snippet: "a quote",
	}, []string{"go"})
	s.Require().NoError(err)

	found, err := s.snippetRepo.DeleteByID(ctx, snip.ID)
	s.Require().NoError(err)
	s.True(found)

	s.EqualValues(0, s.count(&models.SnippetTag{}, "snippet_id = ?", snip.ID))
	s.EqualValues(1, s.count(&models.Tag{}, "name = ?", "go"))

	found, err = s.snippetRepo.DeleteByID(ctx, snip.ID)
	s.Require().NoError(err)
	s.False(found)
}
