package smocks

import (
	"context"

	"github.com/fsdevblog/tagmark/internal/models"
	"github.com/stretchr/testify/mock"
)

type SnippetRepoMock struct {
	mock.Mock
}

func (m *SnippetRepoMock) CreateWithTags(
	ctx context.Context,
	mSnippet *models.Snippet,
	tagNames []string,
) (*models.Snippet, error) {
	args := m.Called(ctx, mSnippet, tagNames)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Snippet), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *SnippetRepoMock) GetAll(ctx context.Context) ([]models.Snippet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.Snippet), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *SnippetRepoMock) DeleteByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1) //nolint:wrapcheck,errcheck
}
