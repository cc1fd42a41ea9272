package memory

import (
	"context"
	"testing"

	"post-app/services/content/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()

	alice := &entity.User{UserName: "alice", Email: "alice@example.com"}
	bob := &entity.User{UserName: "bobby", Email: "bob@example.com"}
	require.NoError(t, r.Create(ctx, alice))
	require.NoError(t, r.Create(ctx, bob))
	assert.NotEmpty(t, alice.ID)
	assert.False(t, alice.CreatedAt.IsZero())

	got, err := r.GetByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, got.ID)

	users, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, alice.ID, users[0].ID)
	assert.Equal(t, bob.ID, users[1].ID)

	require.NoError(t, r.UpdatePosts(ctx, alice.ID, []string{"p1"}))
	require.NoError(t, r.UpdateUserName(ctx, alice.ID, "alice2"))
	got, err = r.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, got.Posts)
	assert.Equal(t, "alice2", got.UserName)

	got.Posts[0] = "mutated"
	again, _ := r.GetByID(ctx, alice.ID)
	assert.Equal(t, "p1", again.Posts[0])

	_, err = r.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
	_, err = r.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
	assert.ErrorIs(t, r.UpdatePosts(ctx, "missing", nil), entity.ErrUserNotFound)
	assert.ErrorIs(t, r.UpdateUserName(ctx, "missing", "x"), entity.ErrUserNotFound)
}

func TestPostRepository(t *testing.T) {
	ctx := context.Background()
	r := NewPostRepository()

	post := &entity.Post{Title: "hello", AuthorID: "u1"}
	require.NoError(t, r.Create(ctx, post))
	assert.Equal(t, 1, r.Len())

	require.NoError(t, r.UpdateComments(ctx, post.ID, []string{"c1", "c2"}))
	require.NoError(t, r.UpdateLikes(ctx, post.ID, entity.Likes{Count: 1, Authors: []string{"u2"}}))

	got, err := r.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Title)
	assert.Equal(t, []string{"c1", "c2"}, got.Comments)
	assert.Equal(t, entity.Likes{Count: 1, Authors: []string{"u2"}}, got.Likes)

	require.NoError(t, r.Delete(ctx, post.ID))
	assert.Equal(t, 0, r.Len())
	_, err = r.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, entity.ErrPostNotFound)
	assert.ErrorIs(t, r.Delete(ctx, post.ID), entity.ErrPostNotFound)
	assert.ErrorIs(t, r.UpdateComments(ctx, post.ID, nil), entity.ErrPostNotFound)
	assert.ErrorIs(t, r.UpdateLikes(ctx, post.ID, entity.Likes{}), entity.ErrPostNotFound)
}

func TestCommentRepository(t *testing.T) {
	ctx := context.Background()
	r := NewCommentRepository()

	comment := &entity.Comment{Content: "nice", AuthorID: "u1", PostID: "p1"}
	require.NoError(t, r.Create(ctx, comment))

	require.NoError(t, r.UpdateContent(ctx, comment.ID, "very nice"))
	got, err := r.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "very nice", got.Content)
	assert.Equal(t, "p1", got.PostID)

	require.NoError(t, r.Delete(ctx, comment.ID))
	assert.Equal(t, 0, r.Len())
	assert.ErrorIs(t, r.Delete(ctx, comment.ID), entity.ErrCommentNotFound)
	assert.ErrorIs(t, r.UpdateContent(ctx, comment.ID, "x"), entity.ErrCommentNotFound)
}
