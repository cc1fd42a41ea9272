// Package memory keeps users, posts and comments in process memory. It backs
// the "memory" datastore driver and the workflow tests.
package memory

import "post-app/services/content/internal/repo"

func NewRepositories() repo.Repositories {
	return repo.Repositories{
		Users:    NewUserRepository(),
		Posts:    NewPostRepository(),
		Comments: NewCommentRepository(),
	}
}
