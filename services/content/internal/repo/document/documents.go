package document

import (
	"time"

	"post-app/services/content/internal/entity"
)

const (
	usersCollection    = "users"
	postsCollection    = "posts"
	commentsCollection = "comments"
)

type userDocument struct {
	ID        string    `bson:"_id"`
	UserName  string    `bson:"userName"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	Posts     []string  `bson:"posts"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type photoDocument struct {
	URL      string `bson:"url,omitempty"`
	Filename string `bson:"filename,omitempty"`
}

type likesDocument struct {
	Count   int      `bson:"count"`
	Authors []string `bson:"authors"`
}

type postDocument struct {
	ID          string        `bson:"_id"`
	Title       string        `bson:"title"`
	Description string        `bson:"description,omitempty"`
	Photo       photoDocument `bson:"photo"`
	Author      string        `bson:"author"`
	Comments    []string      `bson:"comments"`
	Likes       likesDocument `bson:"likes"`
	CreatedAt   time.Time     `bson:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt"`
}

type commentDocument struct {
	ID        string    `bson:"_id"`
	Content   string    `bson:"content"`
	Author    string    `bson:"author"`
	AtPost    string    `bson:"atPost"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func toUserDocument(u *entity.User) userDocument {
	return userDocument{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		Password:  u.Password,
		Posts:     nonNil(u.Posts),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (d userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:        d.ID,
		UserName:  d.UserName,
		Email:     d.Email,
		Password:  d.Password,
		Posts:     nonNil(d.Posts),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toPostDocument(p *entity.Post) postDocument {
	return postDocument{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Photo:       photoDocument{URL: p.Photo.URL, Filename: p.Photo.Filename},
		Author:      p.AuthorID,
		Comments:    nonNil(p.Comments),
		Likes:       likesDocument{Count: p.Likes.Count, Authors: nonNil(p.Likes.Authors)},
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d postDocument) toEntity() *entity.Post {
	return &entity.Post{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Photo:       entity.Photo{URL: d.Photo.URL, Filename: d.Photo.Filename},
		AuthorID:    d.Author,
		Comments:    nonNil(d.Comments),
		Likes:       entity.Likes{Count: d.Likes.Count, Authors: nonNil(d.Likes.Authors)},
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toCommentDocument(c *entity.Comment) commentDocument {
	return commentDocument{
		ID:        c.ID,
		Content:   c.Content,
		Author:    c.AuthorID,
		AtPost:    c.PostID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (d commentDocument) toEntity() *entity.Comment {
	return &entity.Comment{
		ID:        d.ID,
		Content:   d.Content,
		AuthorID:  d.Author,
		PostID:    d.AtPost,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func nonNil(values []string) []string {
	return append([]string{}, values...)
}
