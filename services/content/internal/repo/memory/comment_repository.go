package memory

import (
	"context"
	"sync"
	"time"

	"post-app/services/content/internal/entity"
	"post-app/services/content/internal/repo"

	"github.com/google/uuid"
)

// CommentRepository is an in-memory implementation of repo.CommentRepository.
type CommentRepository struct {
	mu       sync.RWMutex
	comments map[string]*entity.Comment
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{comments: make(map[string]*entity.Comment)}
}

var _ repo.CommentRepository = (*CommentRepository)(nil)

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	c := *comment
	r.comments[comment.ID] = &c
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comment, ok := r.comments[id]
	if !ok {
		return nil, entity.ErrCommentNotFound
	}
	c := *comment
	return &c, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment, ok := r.comments[id]
	if !ok {
		return entity.ErrCommentNotFound
	}
	comment.Content = content
	comment.UpdatedAt = time.Now()
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[id]; !ok {
		return entity.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

// Len returns the number of stored comments.
func (r *CommentRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.comments)
}
