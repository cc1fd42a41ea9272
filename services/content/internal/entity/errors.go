package entity

import "errors"

var (
	ErrUserNotFound    = errors.New("user does not exist")
	ErrPostNotFound    = errors.New("post does not exist")
	ErrCommentNotFound = errors.New("comment not found")

	ErrTitleRequired          = errors.New("title field can not be empty")
	ErrUserNameTooShort       = errors.New("username must be at least 5 letters long")
	ErrCommentRequired        = errors.New("please enter your comment")
	ErrCommentContentRequired = errors.New("please enter comment")

	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrCommentNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrUserNameTooShort) ||
		errors.Is(err, ErrCommentRequired) ||
		errors.Is(err, ErrCommentContentRequired)
}
