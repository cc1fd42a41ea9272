package memory

import (
	"context"
	"sync"
	"time"

	"post-app/services/content/internal/entity"
	"post-app/services/content/internal/repo"

	"github.com/google/uuid"
)

// PostRepository is an in-memory implementation of repo.PostRepository.
type PostRepository struct {
	mu    sync.RWMutex
	posts map[string]*entity.Post
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]*entity.Post)}
}

var _ repo.PostRepository = (*PostRepository)(nil)

func (r *PostRepository) Create(ctx context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	r.posts[post.ID] = copyPost(post)
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, entity.ErrPostNotFound
	}
	return copyPost(post), nil
}

func (r *PostRepository) UpdateComments(ctx context.Context, id string, comments []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return entity.ErrPostNotFound
	}
	post.Comments = append([]string{}, comments...)
	post.UpdatedAt = time.Now()
	return nil
}

func (r *PostRepository) UpdateLikes(ctx context.Context, id string, likes entity.Likes) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return entity.ErrPostNotFound
	}
	post.Likes = entity.Likes{Count: likes.Count, Authors: append([]string{}, likes.Authors...)}
	post.UpdatedAt = time.Now()
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return entity.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

// Len returns the number of stored posts.
func (r *PostRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts)
}

func copyPost(p *entity.Post) *entity.Post {
	c := *p
	c.Comments = append([]string{}, p.Comments...)
	c.Likes.Authors = append([]string{}, p.Likes.Authors...)
	return &c
}
