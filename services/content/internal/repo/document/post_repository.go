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

type postRepository struct {
	collection *mongo.Collection
}

func NewPostRepository(db *mongo.Database) repo.PostRepository {
	return &postRepository{collection: db.Collection(postsCollection)}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	now := time.Now()
	post.ID = newID(post.ID)
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, toPostDocument(post)); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var doc postDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *postRepository) UpdateComments(ctx context.Context, id string, comments []string) error {
	return r.update(ctx, id, bson.M{"comments": nonNil(comments)})
}

func (r *postRepository) UpdateLikes(ctx context.Context, id string, likes entity.Likes) error {
	return r.update(ctx, id, bson.M{
		"likes": likesDocument{Count: likes.Count, Authors: nonNil(likes.Authors)},
	})
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if result.DeletedCount == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) update(ctx context.Context, id string, fields bson.M) error {
	result, err := r.collection.UpdateByID(ctx, id, setFields(fields))
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if result.MatchedCount == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}
