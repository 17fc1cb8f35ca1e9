package smocks

import (
	"context"

	"github.com/fsdevblog/tagmark/internal/models"
	"github.com/stretchr/testify/mock"
)

type TagRepoMock struct {
	mock.Mock
}

func (m *TagRepoMock) GetOrCreate(ctx context.Context, name string) (*models.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.Tag), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *TagRepoMock) GetAll(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.Tag), args.Error(1) //nolint:wrapcheck,errcheck
}

func (m *TagRepoMock) DeleteUnused(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1) //nolint:wrapcheck,errcheck
}
