package usecase

import (
	"context"
	"io"

	"post-app/pkg/logger"
	"post-app/services/content/internal/entity"
	"post-app/services/content/internal/repo"
	"post-app/services/content/internal/repo/memory"

	"github.com/stretchr/testify/mock"
)

type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) Upload(ctx context.Context, file entity.ImageFile, namespace string) entity.AssetResult {
	args := m.Called(ctx, file, namespace)
	return args.Get(0).(entity.AssetResult)
}

func (m *MockAssetStore) Destroy(ctx context.Context, storageKey string) entity.AssetResult {
	args := m.Called(ctx, storageKey)
	return args.Get(0).(entity.AssetResult)
}

type MockNotificationPublisher struct {
	mock.Mock
}

func (m *MockNotificationPublisher) PublishNotificationTask(task map[string]interface{}) error {
	args := m.Called(task)
	return args.Error(0)
}

type fixture struct {
	repos    repo.Repositories
	posts    *memory.PostRepository
	comments *memory.CommentRepository
	assets   *MockAssetStore
	uc       ContentUseCase
}

func newFixture() *fixture {
	posts := memory.NewPostRepository()
	comments := memory.NewCommentRepository()
	repos := repo.Repositories{
		Users:    memory.NewUserRepository(),
		Posts:    posts,
		Comments: comments,
	}
	assets := new(MockAssetStore)

	return &fixture{
		repos:    repos,
		posts:    posts,
		comments: comments,
		assets:   assets,
		uc:       NewContentUseCase(repos, assets, nil, "postApp", logger.NewWithWriter(io.Discard)),
	}
}

func (f *fixture) createUser(ctx context.Context, name string) *entity.User {
	user := &entity.User{UserName: name, Email: name + "@example.com", Password: "hash", Posts: []string{}}
	if err := f.repos.Users.Create(ctx, user); err != nil {
		panic(err)
	}
	return user
}
