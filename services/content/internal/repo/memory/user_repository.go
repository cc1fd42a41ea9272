package memory

import (
	"context"
	"sync"
	"time"

	"post-app/services/content/internal/entity"
	"post-app/services/content/internal/repo"

	"github.com/google/uuid"
)

// UserRepository is an in-memory implementation of repo.UserRepository.
// Records are copied on the way in and out so callers never share state.
type UserRepository struct {
	mu    sync.RWMutex
	order []string
	users map[string]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*entity.User)}
}

var _ repo.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users[user.ID] = copyUser(user)
	r.order = append(r.order, user.ID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, entity.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if user := r.users[id]; user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*entity.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, copyUser(r.users[id]))
	}
	return users, nil
}

func (r *UserRepository) UpdatePosts(ctx context.Context, id string, posts []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return entity.ErrUserNotFound
	}
	user.Posts = append([]string{}, posts...)
	user.UpdatedAt = time.Now()
	return nil
}

func (r *UserRepository) UpdateUserName(ctx context.Context, id, userName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return entity.ErrUserNotFound
	}
	user.UserName = userName
	user.UpdatedAt = time.Now()
	return nil
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	c.Posts = append([]string{}, u.Posts...)
	return &c
}
