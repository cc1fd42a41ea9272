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

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) repo.CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.WithContext(ctx).Create(commentModel).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	if !validID(id) {
		return nil, entity.ErrCommentNotFound
	}

	var commentModel model.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&commentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, id, content string) error {
	if !validID(id) {
		return entity.ErrCommentNotFound
	}

	result := r.db.WithContext(ctx).Model(&model.CommentModel{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrCommentNotFound
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return entity.ErrCommentNotFound
	}

	result := r.db.WithContext(ctx).Delete(&model.CommentModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrCommentNotFound
	}
	return nil
}
