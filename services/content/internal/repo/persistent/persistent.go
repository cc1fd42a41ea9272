// Package persistent stores users, posts and comments in PostgreSQL through
// gorm. Ordered id lists and like authors live in text[] columns.
package persistent

import (
	"post-app/services/content/internal/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func NewRepositories(db *gorm.DB) repo.Repositories {
	return repo.Repositories{
		Users:    NewUserRepository(db),
		Posts:    NewPostRepository(db),
		Comments: NewCommentRepository(db),
	}
}

// validID reports whether id can name a row. Ids are uuid columns, and a
// malformed one is treated as absent rather than sent to Postgres.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
