package smocks

import (
	"context"

	"github.com/fsdevblog/tagmark/internal/models"
	"github.com/stretchr/testify/mock"
)

type URLRepoMock struct {
	mock.Mock
}

func (m *URLRepoMock) CreateOrGet(ctx context.Context, mURL *models.URL) (*models.URL, bool, error) {
	args := m.Called(ctx, mURL)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.URL), args.Bool(1), args.Error(2) //nolint:wrapcheck,errcheck
}

func (m *URLRepoMock) CreateOrGetWithTags(
	ctx context.Context,
	mURL *models.URL,
	tagNames []string,
) (*models.URL, bool, error) {
	args := m.Called(ctx, mURL, tagNames)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.URL), args.Bool(1), args.Error(2) //nolint:wrapcheck,errcheck
}

func (m *URLRepoMock) GetByHash(ctx context.Context, urlHash string) (*models.URL, error) {
	args := m.Called(ctx, urlHash)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.URL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLRepoMock) GetAll(ctx context.Context) ([]models.URL, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.URL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLRepoMock) DeleteByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLRepoMock) DeleteByHash(ctx context.Context, urlHash string) (bool, error) {
	args := m.Called(ctx, urlHash)
	return args.Bool(0), args.Error(1) //nolint:wrapcheck,errcheck
}
