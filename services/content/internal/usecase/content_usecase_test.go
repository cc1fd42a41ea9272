package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"post-app/pkg/logger"
	"post-app/services/content/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListUsers_HidesPasswordAndPosts(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")
	f.createUser(ctx, "bobby")
	require.NoError(t, f.repos.Users.UpdatePosts(ctx, alice.ID, []string{"p1", "p2"}))

	users, err := f.uc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, user := range users {
		assert.Empty(t, user.Password)
		assert.NotNil(t, user.Posts)
		assert.Len(t, user.Posts, 0)
	}

	stored, err := f.repos.Users.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, stored.Posts)
}

func TestListUsers_Empty(t *testing.T) {
	f := newFixture()

	users, err := f.uc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")

	user, err := f.uc.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserName)
	assert.Empty(t, user.Password)

	_, err = f.uc.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")

	tests := []struct {
		name     string
		userID   string
		userName string
		wantErr  error
		wantName string
	}{
		{name: "too short", userID: alice.ID, userName: "abcd", wantErr: entity.ErrUserNameTooShort, wantName: "alice"},
		{name: "counts runes", userID: alice.ID, userName: "éééé", wantErr: entity.ErrUserNameTooShort, wantName: "alice"},
		{name: "missing user", userID: "missing", userName: "charlie", wantErr: entity.ErrUserNotFound, wantName: "alice"},
		{name: "renamed", userID: alice.ID, userName: "alice_wonder", wantName: "alice_wonder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.uc.UpdateUser(ctx, tt.userID, UpdateUserInput{UserName: tt.userName})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			stored, err := f.repos.Users.GetByID(ctx, alice.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, stored.UserName)
		})
	}
}

func TestCreatePost_EmptyTitle(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")

	_, err := f.uc.CreatePost(ctx, alice.ID, CreatePostInput{Description: "no title"})
	assert.ErrorIs(t, err, entity.ErrTitleRequired)
	assert.Equal(t, 0, f.posts.Len())
	f.assets.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePost_UnknownUserSkipsUpload(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	image := &entity.ImageFile{Name: "a.png", Body: strings.NewReader("png")}
	_, err := f.uc.CreatePost(ctx, "missing", CreatePostInput{Title: "hello", Image: image})

	assert.ErrorIs(t, err, entity.ErrUserNotFound)
	assert.Equal(t, 0, f.posts.Len())
	f.assets.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePost_WithImage(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")

	image := &entity.ImageFile{Name: "a.png", ContentType: "image/png", Body: strings.NewReader("png")}
	f.assets.On("Upload", mock.Anything, *image, "postApp").
		Return(entity.AssetSuccess("http://cdn/postApp/a.png", "postApp/a.png")).Once()

	post, err := f.uc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "hello", Description: "world", Image: image})
	require.NoError(t, err)

	stored, err := f.repos.Posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", stored.Title)
	assert.Equal(t, "world", stored.Description)
	assert.Equal(t, alice.ID, stored.AuthorID)
	assert.Equal(t, entity.Photo{URL: "http://cdn/postApp/a.png", Filename: "postApp/a.png"}, stored.Photo)

	author, err := f.repos.Users.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{post.ID}, author.Posts)
	f.assets.AssertExpectations(t)
}

func TestCreatePost_UploadFailureStillCreates(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")

	f.assets.On("Upload", mock.Anything, mock.Anything, "postApp").
		Return(entity.AssetFailure(errors.New("bucket unavailable"))).Once()

	image := &entity.ImageFile{Name: "a.png", Body: strings.NewReader("png")}
	post, err := f.uc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "hello", Image: image})
	require.NoError(t, err)

	stored, err := f.repos.Posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, stored.HasPhoto())
	f.assets.AssertExpectations(t)
}

func TestCreatePost_AppendsOncePerPost(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")

	first, err := f.uc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "one"})
	require.NoError(t, err)
	second, err := f.uc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "two"})
	require.NoError(t, err)

	author, err := f.repos.Users.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID, second.ID}, author.Posts)
	f.assets.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePost_NoOp(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")
	post, err := f.uc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "hello"})
	require.NoError(t, err)

	assert.NoError(t, f.uc.UpdatePost(ctx, alice.ID, post.ID))
	assert.NoError(t, f.uc.UpdatePost(ctx, "anyone", "missing"))

	stored, err := f.repos.Posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", stored.Title)
}

func TestDeletePost_CascadesAndDetaches(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")
	bob := f.createUser(ctx, "bobby")

	f.assets.On("Upload", mock.Anything, mock.Anything, "postApp").
		Return(entity.AssetSuccess("http://cdn/postApp/a.png", "postApp/a.png")).Once()
	f.assets.On("Destroy", mock.Anything, "postApp/a.png").
		Return(entity.AssetSuccess("", "postApp/a.png")).Once()

	keep, err := f.uc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "keep"})
	require.NoError(t, err)
	post, err := f.uc.CreatePost(ctx, alice.ID, CreatePostInput{
		Title: "doomed",
		Image: &entity.ImageFile{Name: "a.png", Body: strings.NewReader("png")},
	})
	require.NoError(t, err)

	_, err = f.uc.CreateComment(ctx, bob.ID, post.ID, CreateCommentInput{Content: "first"})
	require.NoError(t, err)
	_, err = f.uc.CreateComment(ctx, alice.ID, post.ID, CreateCommentInput{Content: "second"})
	require.NoError(t, err)
	require.Equal(t, 2, f.comments.Len())

	require.NoError(t, f.uc.DeletePost(ctx, alice.ID, post.ID))

	assert.Equal(t, 0, f.comments.Len())
	_, err = f.repos.Posts.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, entity.ErrPostNotFound)

	author, err := f.repos.Users.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{keep.ID}, author.Posts)
	f.assets.AssertExpectations(t)
}

func TestDeletePost_ByOtherUserDetachesFromAuthor(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")
	bob := f.createUser(ctx, "bobby")

	post, err := f.uc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "hello"})
	require.NoError(t, err)

	require.NoError(t, f.uc.DeletePost(ctx, bob.ID, post.ID))

	author, err := f.repos.Users.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, author.Posts)
	f.assets.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
}

func TestDeletePost_DestroyFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")

	post := &entity.Post{Title: "hello", AuthorID: alice.ID, Photo: entity.Photo{URL: "http://cdn/x", Filename: "postApp/x"}}
	require.NoError(t, f.repos.Posts.Create(ctx, post))
	require.NoError(t, f.repos.Users.UpdatePosts(ctx, alice.ID, []string{post.ID}))

	f.assets.On("Destroy", mock.Anything, "postApp/x").Return(entity.AssetFailure(errors.New("denied"))).Once()

	require.NoError(t, f.uc.DeletePost(ctx, alice.ID, post.ID))
	assert.Equal(t, 0, f.posts.Len())
	f.assets.AssertExpectations(t)
}

func TestDeletePost_SkipsMissingComments(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")

	post := &entity.Post{Title: "hello", AuthorID: alice.ID, Comments: []string{"gone"}}
	require.NoError(t, f.repos.Posts.Create(ctx, post))

	require.NoError(t, f.uc.DeletePost(ctx, alice.ID, post.ID))
	assert.Equal(t, 0, f.posts.Len())
}

func TestDeletePost_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")
	post, err := f.uc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "hello"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.uc.DeletePost(ctx, "missing", post.ID), entity.ErrUserNotFound)
	assert.ErrorIs(t, f.uc.DeletePost(ctx, alice.ID, "missing"), entity.ErrPostNotFound)
	assert.Equal(t, 1, f.posts.Len())
}

func TestToggleLike_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")
	post := &entity.Post{Title: "hello", AuthorID: alice.ID, Likes: entity.Likes{Count: 1, Authors: []string{"someone"}}}
	require.NoError(t, f.repos.Posts.Create(ctx, post))

	liked, err := f.uc.ToggleLike(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	stored, err := f.repos.Posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Likes{Count: 2, Authors: []string{"someone", alice.ID}}, stored.Likes)

	liked, err = f.uc.ToggleLike(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	stored, err = f.repos.Posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Likes{Count: 1, Authors: []string{"someone"}}, stored.Likes)
}

func TestToggleLike_DuplicateAuthorsSkewCount(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	post := &entity.Post{Title: "hello", Likes: entity.Likes{Count: 3, Authors: []string{"u1", "u2", "u1"}}}
	require.NoError(t, f.repos.Posts.Create(ctx, post))

	liked, err := f.uc.ToggleLike(ctx, "u1", post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	stored, err := f.repos.Posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Likes.Count)
	assert.Equal(t, []string{"u2"}, stored.Likes.Authors)
}

func TestToggleLike_PostNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.ToggleLike(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, entity.ErrPostNotFound)
}

func TestCreateComment(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")
	post, err := f.uc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "hello"})
	require.NoError(t, err)

	comment, err := f.uc.CreateComment(ctx, "u2", post.ID, CreateCommentInput{Content: "nice"})
	require.NoError(t, err)
	assert.Equal(t, "u2", comment.AuthorID)
	assert.Equal(t, post.ID, comment.PostID)

	stored, err := f.repos.Posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{comment.ID}, stored.Comments)
}

func TestCreateComment_Rejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")
	post, err := f.uc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "hello"})
	require.NoError(t, err)

	_, err = f.uc.CreateComment(ctx, alice.ID, post.ID, CreateCommentInput{})
	assert.ErrorIs(t, err, entity.ErrCommentRequired)

	_, err = f.uc.CreateComment(ctx, alice.ID, "missing", CreateCommentInput{Content: "hi"})
	assert.ErrorIs(t, err, entity.ErrPostNotFound)

	stored, err := f.repos.Posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Comments)
	assert.Equal(t, 0, f.comments.Len())
}

func TestUpdateComment(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	comment := &entity.Comment{Content: "nice", AuthorID: "u1", PostID: "p1"}
	require.NoError(t, f.repos.Comments.Create(ctx, comment))

	assert.ErrorIs(t, f.uc.UpdateComment(ctx, comment.ID, UpdateCommentInput{}), entity.ErrCommentContentRequired)
	assert.ErrorIs(t, f.uc.UpdateComment(ctx, "missing", UpdateCommentInput{Content: "x"}), entity.ErrCommentNotFound)
	assert.Equal(t, 1, f.comments.Len())

	require.NoError(t, f.uc.UpdateComment(ctx, comment.ID, UpdateCommentInput{Content: "edited by anyone"}))
	stored, err := f.repos.Comments.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited by anyone", stored.Content)
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.createUser(ctx, "alice")

	published := make(chan string, 4)
	notifier := new(MockNotificationPublisher)
	notifier.On("PublishNotificationTask", mock.MatchedBy(func(task map[string]interface{}) bool {
		return task["type"] == "like" && task["user_id"] == alice.ID && task["liker_id"] == "u2"
	})).Return(nil).Once().Run(func(args mock.Arguments) { published <- "like" })
	notifier.On("PublishNotificationTask", mock.MatchedBy(func(task map[string]interface{}) bool {
		return task["type"] == "comment" && task["commenter_id"] == "u2"
	})).Return(errors.New("queue down")).Once().Run(func(args mock.Arguments) { published <- "comment" })

	uc := NewContentUseCase(f.repos, f.assets, notifier, "postApp", logger.NewWithWriter(io.Discard))

	post, err := uc.CreatePost(ctx, alice.ID, CreatePostInput{Title: "hello"})
	require.NoError(t, err)

	_, err = uc.ToggleLike(ctx, "u2", post.ID)
	require.NoError(t, err)
	_, err = uc.CreateComment(ctx, "u2", post.ID, CreateCommentInput{Content: "nice"})
	require.NoError(t, err)

	// Own activity is not announced.
	_, err = uc.ToggleLike(ctx, alice.ID, post.ID)
	require.NoError(t, err)

	var got []string
	for len(got) < 2 {
		select {
		case kind := <-published:
			got = append(got, kind)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for notifications, got %v", got)
		}
	}
	assert.ElementsMatch(t, []string{"like", "comment"}, got)
	notifier.AssertExpectations(t)
}
