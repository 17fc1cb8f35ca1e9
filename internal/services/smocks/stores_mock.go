package smocks

import (
	"context"

	"github.com/fsdevblog/tagmark/internal/models"
	"github.com/stretchr/testify/mock"
)

// Моки сервисного слоя для тестов контроллеров.

type URLStoreMock struct {
	mock.Mock
}

func (m *URLStoreMock) Add(ctx context.Context, rawURL string) (*models.URL, bool, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.URL), args.Bool(1), args.Error(2) //nolint:wrapcheck,errcheck
}

func (m *URLStoreMock) AddWithTags(ctx context.Context, rawURL string, rawTags string) (*models.URL, bool, error) {
	args := m.Called(ctx, rawURL, rawTags)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.URL), args.Bool(1), args.Error(2) //nolint:wrapcheck,errcheck
}

func (m *URLStoreMock) GetAll(ctx context.Context) ([]models.URL, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.URL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLStoreMock) DeleteByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *URLStoreMock) DeleteByURL(ctx context.Context, rawURL string) (bool, error) {
	args := m.Called(ctx, rawURL)
	return args.Bool(0), args.Error(1) //nolint:wrapcheck,errcheck
}

type SnippetStoreMock struct {
	mock.Mock
}

func (m *SnippetStoreMock) Add(ctx context.Context, rawURL, text, rawTags string) (*models.Snippet, error) {
	args := m.Called(ctx, rawURL, text, rawTags)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Snippet), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *SnippetStoreMock) DeleteByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1) //nolint:wrapcheck,errcheck
}

type TagMaintainerMock struct {
	mock.Mock
}

func (m *TagMaintainerMock) RemoveUnused(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1) //nolint:wrapcheck,errcheck
}

type ViewsMock struct {
	mock.Mock
}

func (m *ViewsMock) URLsWithTags(ctx context.Context) ([]models.URLWithTags, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.URLWithTags), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *ViewsMock) SnippetsWithTags(ctx context.Context) ([]models.SnippetWithTags, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.SnippetWithTags), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *ViewsMock) TagsWithURLsAndSnippets(ctx context.Context) ([]models.TagWithURLsAndSnippets, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.TagWithURLsAndSnippets), args.Error(1) //nolint:wrapcheck,errcheck
}

type PingMock struct {
	mock.Mock
}

func (m *PingMock) CheckConnection(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0) //nolint:wrapcheck,errcheck
}
