package persistent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"post-app/services/notification/internal/entity"
	"post-app/services/notification/internal/repo"

	"github.com/redis/go-redis/v9"
)

const (
	inboxSize = 100
	inboxTTL  = 30 * 24 * time.Hour
)

type redisInbox struct {
	client *redis.Client
}

func NewRedisInbox(client *redis.Client) repo.Inbox {
	return &redisInbox{client: client}
}

func inboxKey(userID string) string {
	return fmt.Sprintf("notifications:%s", userID)
}

func (r *redisInbox) Push(ctx context.Context, notification *entity.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	key := inboxKey(notification.UserID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, inboxSize-1)
	pipe.Expire(ctx, key, inboxTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}
	return nil
}

// List skips entries that no longer decode.
func (r *redisInbox) List(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error) {
	key := inboxKey(userID)

	raw, err := r.client.LRange(ctx, key, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	notifications := make([]entity.Notification, 0, len(raw))
	for _, item := range raw {
		var notification entity.Notification
		if err := json.Unmarshal([]byte(item), &notification); err == nil {
			notifications = append(notifications, notification)
		}
	}

	total, err := r.client.LLen(ctx, key).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	return notifications, total, nil
}
