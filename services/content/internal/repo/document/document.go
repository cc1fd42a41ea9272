// Package document stores users, posts and comments as MongoDB documents.
// Field names follow the JSON shape served by the API (userName, atPost,
// likes.authors) and ids are uuid strings held in _id.
package document

import (
	"context"
	"time"

	"post-app/services/content/internal/repo"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func NewRepositories(db *mongo.Database) repo.Repositories {
	return repo.Repositories{
		Users:    NewUserRepository(db),
		Posts:    NewPostRepository(db),
		Comments: NewCommentRepository(db),
	}
}

// EnsureIndexes creates the unique email index used to reject duplicate
// registrations.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func newID(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}

func setFields(fields bson.M) bson.M {
	fields["updatedAt"] = time.Now()
	return bson.M{"$set": fields}
}
