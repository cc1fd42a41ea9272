package usecase

import (
	"unicode/utf8"

	"post-app/services/content/internal/entity"
)

const minUserNameLength = 5

type CreatePostInput struct {
	Title       string
	Description string
	Image       *entity.ImageFile
}

func (in CreatePostInput) Validate() error {
	if in.Title == "" {
		return entity.ErrTitleRequired
	}
	return nil
}

type UpdateUserInput struct {
	UserName string
}

func (in UpdateUserInput) Validate() error {
	if utf8.RuneCountInString(in.UserName) < minUserNameLength {
		return entity.ErrUserNameTooShort
	}
	return nil
}

type CreateCommentInput struct {
	Content string
}

func (in CreateCommentInput) Validate() error {
	if in.Content == "" {
		return entity.ErrCommentRequired
	}
	return nil
}

type UpdateCommentInput struct {
	Content string
}

func (in UpdateCommentInput) Validate() error {
	if in.Content == "" {
		return entity.ErrCommentContentRequired
	}
	return nil
}

type RegisterInput struct {
	UserName string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}
