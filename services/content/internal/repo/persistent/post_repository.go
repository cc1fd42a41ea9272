package persistent

import (
	"context"
	"errors"
	"fmt"

	"post-app/services/content/internal/entity"
	"post-app/services/content/internal/model"
	"post-app/services/content/internal/repo"

	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repo.PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	if !validID(id) {
		return nil, entity.ErrPostNotFound
	}

	var postModel model.PostModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) UpdateComments(ctx context.Context, id string, comments []string) error {
	return r.updates(ctx, id, map[string]interface{}{
		"comments": stringArray(comments),
	})
}

// UpdateLikes writes count and authors together; it does not guard against
// concurrent toggles on the same post.
func (r *postRepository) UpdateLikes(ctx context.Context, id string, likes entity.Likes) error {
	return r.updates(ctx, id, map[string]interface{}{
		"likes_count":  likes.Count,
		"like_authors": stringArray(likes.Authors),
	})
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return entity.ErrPostNotFound
	}

	result := r.db.WithContext(ctx).Delete(&model.PostModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) updates(ctx context.Context, id string, values map[string]interface{}) error {
	if !validID(id) {
		return entity.ErrPostNotFound
	}

	result := r.db.WithContext(ctx).Model(&model.PostModel{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}
