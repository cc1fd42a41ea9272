package usecase

import (
	"context"
	"errors"

	"post-app/pkg/logger"
	"post-app/services/content/internal/entity"
	"post-app/services/content/internal/repo"
)

type ContentUseCase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
	UpdateUser(ctx context.Context, userID string, input UpdateUserInput) error
	CreatePost(ctx context.Context, userID string, input CreatePostInput) (*entity.Post, error)
	UpdatePost(ctx context.Context, userID, postID string) error
	DeletePost(ctx context.Context, userID, postID string) error
	ToggleLike(ctx context.Context, userID, postID string) (bool, error)
	CreateComment(ctx context.Context, userID, postID string, input CreateCommentInput) (*entity.Comment, error)
	UpdateComment(ctx context.Context, commentID string, input UpdateCommentInput) error
}

// NotificationPublisher hands activity tasks to the notification queue.
type NotificationPublisher interface {
	PublishNotificationTask(task map[string]interface{}) error
}

type contentUseCase struct {
	users          repo.UserRepository
	posts          repo.PostRepository
	comments       repo.CommentRepository
	assets         repo.AssetStore
	notifier       NotificationPublisher
	assetNamespace string
	logger         *logger.Logger
}

// NewContentUseCase wires the workflows. notifier may be nil, in which case
// no activity tasks are published.
func NewContentUseCase(
	repos repo.Repositories,
	assets repo.AssetStore,
	notifier NotificationPublisher,
	assetNamespace string,
	logger *logger.Logger,
) ContentUseCase {
	return &contentUseCase{
		users:          repos.Users,
		posts:          repos.Posts,
		comments:       repos.Comments,
		assets:         assets,
		notifier:       notifier,
		assetNamespace: assetNamespace,
		logger:         logger,
	}
}

// ListUsers never exposes credentials or post lists in bulk.
func (uc *contentUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list users: %v", err)
		return nil, err
	}

	out := make([]*entity.User, len(users))
	for i, user := range users {
		clean := user.Sanitized()
		clean.Posts = []string{}
		out[i] = clean
	}
	return out, nil
}

func (uc *contentUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

func (uc *contentUseCase) UpdateUser(ctx context.Context, userID string, input UpdateUserInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := uc.users.UpdateUserName(ctx, userID, input.UserName); err != nil {
		if !entity.IsNotFound(err) {
			uc.logger.Error("Failed to update user %s: %v", userID, err)
		}
		return err
	}
	return nil
}

// CreatePost runs three unguarded steps: upload the image, create the post,
// then append its id to the author. A failure after the post is created
// leaves a post that its author does not list.
func (uc *contentUseCase) CreatePost(ctx context.Context, userID string, input CreatePostInput) (*entity.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &entity.Post{
		Title:       input.Title,
		Description: input.Description,
		AuthorID:    user.ID,
		Comments:    []string{},
		Likes:       entity.Likes{Authors: []string{}},
	}

	if input.Image != nil {
		result := uc.assets.Upload(ctx, *input.Image, uc.assetNamespace)
		if result.Succeeded() {
			post.Photo = entity.Photo{URL: result.URL, Filename: result.StorageKey}
		} else {
			uc.logger.Warn("Image upload failed for user %s, creating post without photo: %v", userID, result.Reason)
		}
	}

	if err := uc.posts.Create(ctx, post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, err
	}

	userPosts := append(user.Posts, post.ID)
	if err := uc.users.UpdatePosts(ctx, user.ID, userPosts); err != nil {
		uc.logger.Error("Post %s created but author %s was not updated: %v", post.ID, user.ID, err)
		return nil, err
	}

	uc.logger.Info("User %s created post %s", user.ID, post.ID)
	return post, nil
}

// UpdatePost accepts the request and changes nothing.
func (uc *contentUseCase) UpdatePost(ctx context.Context, userID, postID string) error {
	return nil
}

// DeletePost cascades in order: comments, image, post, author's post list.
// Each step commits on its own, so a storage failure part way leaves the
// earlier steps applied.
func (uc *contentUseCase) DeletePost(ctx context.Context, userID, postID string) error {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	post, err := uc.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	for _, commentID := range post.Comments {
		if err := uc.comments.Delete(ctx, commentID); err != nil {
			if errors.Is(err, entity.ErrCommentNotFound) {
				continue
			}
			uc.logger.Error("Failed to delete comment %s of post %s: %v", commentID, postID, err)
			return err
		}
	}

	if post.HasPhoto() {
		result := uc.assets.Destroy(ctx, post.Photo.Filename)
		if result.Succeeded() {
			uc.logger.Info("Destroyed image %s of post %s", post.Photo.Filename, postID)
		} else {
			uc.logger.Warn("Failed to destroy image %s of post %s: %v", post.Photo.Filename, postID, result.Reason)
		}
	}

	if err := uc.posts.Delete(ctx, postID); err != nil {
		uc.logger.Error("Failed to delete post %s: %v", postID, err)
		return err
	}

	if err := uc.detachPost(ctx, user, post); err != nil {
		uc.logger.Error("Post %s deleted but author %s was not updated: %v", postID, post.AuthorID, err)
		return err
	}

	uc.logger.Info("User %s deleted post %s", userID, postID)
	return nil
}

// detachPost removes the post from its author's post list.
func (uc *contentUseCase) detachPost(ctx context.Context, caller *entity.User, post *entity.Post) error {
	author := caller
	if post.AuthorID != "" && post.AuthorID != caller.ID {
		var err error
		author, err = uc.users.GetByID(ctx, post.AuthorID)
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	remaining := make([]string, 0, len(author.Posts))
	for _, id := range author.Posts {
		if id != post.ID {
			remaining = append(remaining, id)
		}
	}
	if len(remaining) == len(author.Posts) {
		return nil
	}
	return uc.users.UpdatePosts(ctx, author.ID, remaining)
}

// ToggleLike is a read-modify-write of the like aggregate with no version
// check; concurrent toggles on one post can lose updates.
func (uc *contentUseCase) ToggleLike(ctx context.Context, userID, postID string) (bool, error) {
	post, err := uc.posts.GetByID(ctx, postID)
	if err != nil {
		return false, err
	}

	likes, liked := post.Likes.Toggle(userID)
	if err := uc.posts.UpdateLikes(ctx, postID, likes); err != nil {
		uc.logger.Error("Failed to update likes of post %s: %v", postID, err)
		return false, err
	}

	if liked && post.AuthorID != userID {
		uc.notify(map[string]interface{}{
			"type":     "like",
			"user_id":  post.AuthorID,
			"liker_id": userID,
			"post_id":  postID,
			"priority": 3,
		})
	}

	return liked, nil
}

// CreateComment stores the comment, then appends it to the post. A failure
// on the second step leaves a comment that its post does not reference.
func (uc *contentUseCase) CreateComment(ctx context.Context, userID, postID string, input CreateCommentInput) (*entity.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	post, err := uc.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		Content:  input.Content,
		AuthorID: userID,
		PostID:   post.ID,
	}
	if err := uc.comments.Create(ctx, comment); err != nil {
		uc.logger.Error("Failed to create comment on post %s: %v", postID, err)
		return nil, err
	}

	comments := append(post.Comments, comment.ID)
	if err := uc.posts.UpdateComments(ctx, post.ID, comments); err != nil {
		uc.logger.Error("Comment %s created but post %s was not updated: %v", comment.ID, postID, err)
		return nil, err
	}

	if post.AuthorID != userID {
		uc.notify(map[string]interface{}{
			"type":         "comment",
			"user_id":      post.AuthorID,
			"commenter_id": userID,
			"post_id":      postID,
			"comment_id":   comment.ID,
			"priority":     4,
		})
	}

	return comment, nil
}

// UpdateComment lets any caller edit any comment.
func (uc *contentUseCase) UpdateComment(ctx context.Context, commentID string, input UpdateCommentInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := uc.comments.GetByID(ctx, commentID); err != nil {
		return err
	}

	if err := uc.comments.UpdateContent(ctx, commentID, input.Content); err != nil {
		uc.logger.Error("Failed to update comment %s: %v", commentID, err)
		return err
	}
	return nil
}

func (uc *contentUseCase) notify(task map[string]interface{}) {
	if uc.notifier == nil {
		return
	}

	go func() {
		uc.logger.Info("[NOTIFICATION QUEUE] Publishing %v notification task for post %v", task["type"], task["post_id"])
		if err := uc.notifier.PublishNotificationTask(task); err != nil {
			uc.logger.Error("[NOTIFICATION QUEUE] Failed to publish %v notification task: %v", task["type"], err)
		}
	}()
}
