package document

import (
	"testing"
	"time"

	"post-app/services/content/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestPostDocument_BSONFieldNames(t *testing.T) {
	post := &entity.Post{
		ID:       "p1",
		Title:    "sunset",
		Photo:    entity.Photo{URL: "http://img/p.png", Filename: "postApp/p.png"},
		AuthorID: "u1",
		Likes:    entity.Likes{Count: 1, Authors: []string{"u2"}},
	}

	raw, err := bson.Marshal(toPostDocument(post))
	require.NoError(t, err)

	doc := bson.Raw(raw)
	assert.Equal(t, "p1", doc.Lookup("_id").StringValue())
	assert.Equal(t, "u1", doc.Lookup("author").StringValue())
	assert.Equal(t, int64(1), doc.Lookup("likes", "count").AsInt64())
	assert.Equal(t, "postApp/p.png", doc.Lookup("photo", "filename").StringValue())

	_, err = doc.LookupErr("comments")
	assert.NoError(t, err)
	_, err = doc.LookupErr("description")
	assert.Error(t, err)
}

func TestPostDocument_RoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	post := &entity.Post{
		ID:          "p1",
		Title:       "sunset",
		Description: "beach",
		AuthorID:    "u1",
		Comments:    []string{"c1", "c2"},
		Likes:       entity.Likes{Count: 2, Authors: []string{"u2", "u3"}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	raw, err := bson.Marshal(toPostDocument(post))
	require.NoError(t, err)

	var doc postDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	got := doc.toEntity()
	assert.Equal(t, post.Comments, got.Comments)
	assert.Equal(t, post.Likes, got.Likes)
	assert.True(t, post.CreatedAt.Equal(got.CreatedAt))
	assert.False(t, got.HasPhoto())
}

func TestUserDocument_StoresPassword(t *testing.T) {
	user := &entity.User{ID: "u1", UserName: "alice", Email: "a@example.com", Password: "hash"}

	doc := toUserDocument(user)
	assert.Equal(t, "hash", doc.Password)
	assert.NotNil(t, doc.Posts)

	back := doc.toEntity()
	assert.Equal(t, "hash", back.Password)
	assert.Empty(t, back.Posts)
}

func TestCommentDocument_AtPost(t *testing.T) {
	raw, err := bson.Marshal(toCommentDocument(&entity.Comment{ID: "c1", Content: "hi", AuthorID: "u1", PostID: "p1"}))
	require.NoError(t, err)

	doc := bson.Raw(raw)
	assert.Equal(t, "p1", doc.Lookup("atPost").StringValue())
	assert.Equal(t, "u1", doc.Lookup("author").StringValue())
}

func TestSetFields_StampsUpdatedAt(t *testing.T) {
	update := setFields(bson.M{"content": "x"})

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "x", set["content"])
	assert.Contains(t, set, "updatedAt")
}

func TestNewID(t *testing.T) {
	assert.Equal(t, "keep", newID("keep"))
	assert.NotEmpty(t, newID(""))
}
