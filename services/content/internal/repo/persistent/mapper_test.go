package persistent

import (
	"testing"
	"time"

	"post-app/services/content/internal/entity"
	"post-app/services/content/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostMapping(t *testing.T) {
	now := time.Now()
	post := &entity.Post{
		ID:          "p1",
		Title:       "sunset",
		Description: "at the beach",
		Photo:       entity.Photo{URL: "http://img/p.png", Filename: "postApp/p.png"},
		AuthorID:    "u1",
		Comments:    []string{"c1"},
		Likes:       entity.Likes{Count: 2, Authors: []string{"u2", "u3"}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	m := ToPostModel(post)
	assert.Equal(t, "http://img/p.png", m.PhotoURL)
	assert.Equal(t, "postApp/p.png", m.PhotoFilename)
	assert.Equal(t, 2, m.LikesCount)
	assert.Equal(t, []string{"u2", "u3"}, []string(m.LikeAuthors))

	assert.Equal(t, post, ToPostEntity(m))
}

func TestPostMapping_EmptyListsAreNotNil(t *testing.T) {
	m := ToPostModel(&entity.Post{ID: "p1", Title: "t"})
	require.NotNil(t, m.Comments)
	require.NotNil(t, m.LikeAuthors)

	e := ToPostEntity(&model.PostModel{ID: "p1"})
	assert.NotNil(t, e.Comments)
	assert.NotNil(t, e.Likes.Authors)
	assert.False(t, e.HasPhoto())
}

func TestUserMapping(t *testing.T) {
	user := &entity.User{ID: "u1", UserName: "alice", Email: "a@example.com", Password: "hash", Posts: []string{"p1", "p2"}}

	m := ToUserModel(user)
	assert.Equal(t, []string{"p1", "p2"}, []string(m.Posts))

	back := ToUserEntity(m)
	assert.Equal(t, user, back)

	m.Posts[0] = "changed"
	assert.Equal(t, "p1", back.Posts[0])
}

func TestCommentMapping(t *testing.T) {
	comment := &entity.Comment{ID: "c1", Content: "nice", AuthorID: "u1", PostID: "p1"}
	assert.Equal(t, comment, ToCommentEntity(ToCommentModel(comment)))
}

func TestMapping_Nil(t *testing.T) {
	assert.Nil(t, ToUserEntity(nil))
	assert.Nil(t, ToUserModel(nil))
	assert.Nil(t, ToPostEntity(nil))
	assert.Nil(t, ToPostModel(nil))
	assert.Nil(t, ToCommentEntity(nil))
	assert.Nil(t, ToCommentModel(nil))
}
