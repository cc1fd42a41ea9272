package entity

import "errors"

// Notification is one entry of a user's activity inbox.
type Notification struct {
	UserID    string                 `json:"user_id"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Type      string                 `json:"type"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt string                 `json:"created_at"`
}

const (
	TypeLike    = "like"
	TypeComment = "comment"
)

// ErrInvalidTask marks a queued task that can never be processed.
var ErrInvalidTask = errors.New("invalid notification task")
