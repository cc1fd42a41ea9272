package persistent

import (
	"post-app/services/content/internal/entity"
	"post-app/services/content/internal/model"

	"github.com/lib/pq"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		UserName:  m.UserName,
		Email:     m.Email,
		Password:  m.Password,
		Posts:     append([]string{}, m.Posts...),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		UserName:  e.UserName,
		Email:     e.Email,
		Password:  e.Password,
		Posts:     stringArray(e.Posts),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Photo: entity.Photo{
			URL:      m.PhotoURL,
			Filename: m.PhotoFilename,
		},
		AuthorID: m.AuthorID,
		Comments: append([]string{}, m.Comments...),
		Likes: entity.Likes{
			Count:   m.LikesCount,
			Authors: append([]string{}, m.LikeAuthors...),
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		PhotoURL:      e.Photo.URL,
		PhotoFilename: e.Photo.Filename,
		AuthorID:      e.AuthorID,
		Comments:      stringArray(e.Comments),
		LikesCount:    e.Likes.Count,
		LikeAuthors:   stringArray(e.Likes.Authors),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		Content:   m.Content,
		AuthorID:  m.AuthorID,
		PostID:    m.PostID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		Content:   e.Content,
		AuthorID:  e.AuthorID,
		PostID:    e.PostID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// stringArray never returns nil so the text[] columns are written as '{}'
// instead of NULL.
func stringArray(values []string) pq.StringArray {
	out := make(pq.StringArray, len(values))
	copy(out, values)
	return out
}
