package usecase

import (
	"context"
	"fmt"
	"time"

	"post-app/pkg/logger"
	"post-app/services/notification/internal/entity"
	"post-app/services/notification/internal/repo"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type NotificationUseCase interface {
	HandleTask(ctx context.Context, task map[string]interface{}) error
	GetNotifications(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error)
}

type notificationUseCase struct {
	inbox  repo.Inbox
	logger *logger.Logger
	now    func() time.Time
}

func NewNotificationUseCase(inbox repo.Inbox, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		inbox:  inbox,
		logger: logger,
		now:    time.Now,
	}
}

// HandleTask turns one queued activity task into an inbox entry for the
// post author. Tasks that can never succeed wrap entity.ErrInvalidTask.
func (uc *notificationUseCase) HandleTask(ctx context.Context, task map[string]interface{}) error {
	taskType, _ := task["type"].(string)
	uc.logger.Info("[NOTIFICATION HANDLER] Processing %s task: %+v", taskType, task)

	var (
		notification *entity.Notification
		err          error
	)
	switch taskType {
	case entity.TypeLike:
		notification, err = uc.likeNotification(task)
	case entity.TypeComment:
		notification, err = uc.commentNotification(task)
	default:
		return fmt.Errorf("%w: unknown type %q", entity.ErrInvalidTask, taskType)
	}
	if err != nil {
		uc.logger.Error("[NOTIFICATION HANDLER] Invalid %s task: %v, task=%+v", taskType, err, task)
		return err
	}

	if err := uc.inbox.Push(ctx, notification); err != nil {
		uc.logger.Error("[NOTIFICATION HANDLER] Failed to send %s notification to user %s: %v", taskType, notification.UserID, err)
		return err
	}

	uc.logger.Info("[NOTIFICATION HANDLER] Sent %s notification to user %s", taskType, notification.UserID)
	return nil
}

func (uc *notificationUseCase) likeNotification(task map[string]interface{}) (*entity.Notification, error) {
	userID, _ := task["user_id"].(string)   // post author
	likerID, _ := task["liker_id"].(string) // user who liked
	postID, _ := task["post_id"].(string)

	if userID == "" || likerID == "" || postID == "" {
		return nil, fmt.Errorf("%w: missing user_id, liker_id or post_id", entity.ErrInvalidTask)
	}

	return &entity.Notification{
		UserID:    userID,
		Title:     "New Like!",
		Message:   "Someone liked your post",
		Type:      entity.TypeLike,
		CreatedAt: uc.now().UTC().Format(time.RFC3339),
		Data: map[string]interface{}{
			"post_id":  postID,
			"liker_id": likerID,
		},
	}, nil
}

func (uc *notificationUseCase) commentNotification(task map[string]interface{}) (*entity.Notification, error) {
	userID, _ := task["user_id"].(string)
	commenterID, _ := task["commenter_id"].(string)
	postID, _ := task["post_id"].(string)
	commentID, _ := task["comment_id"].(string)

	if userID == "" || commenterID == "" || postID == "" || commentID == "" {
		return nil, fmt.Errorf("%w: missing user_id, commenter_id, post_id or comment_id", entity.ErrInvalidTask)
	}

	return &entity.Notification{
		UserID:    userID,
		Title:     "New Comment!",
		Message:   "Someone commented on your post",
		Type:      entity.TypeComment,
		CreatedAt: uc.now().UTC().Format(time.RFC3339),
		Data: map[string]interface{}{
			"post_id":      postID,
			"commenter_id": commenterID,
			"comment_id":   commentID,
		},
	}, nil
}

// GetNotifications clamps limit into [1, MaxLimit] and offset to >= 0.
func (uc *notificationUseCase) GetNotifications(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return uc.inbox.List(ctx, userID, limit, offset)
}
