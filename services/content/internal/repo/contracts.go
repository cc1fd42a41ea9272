package repo

import (
	"context"

	"post-app/services/content/internal/entity"
)

// UserRepository reports a missing user with entity.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	UpdatePosts(ctx context.Context, id string, posts []string) error
	UpdateUserName(ctx context.Context, id, userName string) error
}

// PostRepository reports a missing post with entity.ErrPostNotFound.
type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	UpdateComments(ctx context.Context, id string, comments []string) error
	UpdateLikes(ctx context.Context, id string, likes entity.Likes) error
	Delete(ctx context.Context, id string) error
}

// CommentRepository reports a missing comment with entity.ErrCommentNotFound.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
}

// AssetStore hosts uploaded images. Both calls are best-effort: failures come
// back as an entity.AssetFailed result rather than an error.
type AssetStore interface {
	Upload(ctx context.Context, file entity.ImageFile, namespace string) entity.AssetResult
	Destroy(ctx context.Context, storageKey string) entity.AssetResult
}

// Repositories bundles the datastore collections used by the workflows.
type Repositories struct {
	Users    UserRepository
	Posts    PostRepository
	Comments CommentRepository
}
