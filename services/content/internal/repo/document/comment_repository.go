package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"post-app/services/content/internal/entity"
	"post-app/services/content/internal/repo"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type commentRepository struct {
	collection *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) repo.CommentRepository {
	return &commentRepository{collection: db.Collection(commentsCollection)}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	now := time.Now()
	comment.ID = newID(comment.ID)
	comment.CreatedAt = now
	comment.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, toCommentDocument(comment)); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var doc commentDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, id, content string) error {
	result, err := r.collection.UpdateByID(ctx, id, setFields(bson.M{"content": content}))
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if result.MatchedCount == 0 {
		return entity.ErrCommentNotFound
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if result.DeletedCount == 0 {
		return entity.ErrCommentNotFound
	}
	return nil
}
