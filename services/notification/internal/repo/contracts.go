package repo

import (
	"context"

	"post-app/services/notification/internal/entity"
)

// Inbox stores the newest notifications of every user, newest first.
type Inbox interface {
	Push(ctx context.Context, notification *entity.Notification) error
	List(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error)
}
