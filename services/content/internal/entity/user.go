package entity

import "time"

type User struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Posts     []string  `json:"posts"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sanitized returns a copy of the user without its credential secret.
func (u *User) Sanitized() *User {
	clean := *u
	clean.Password = ""
	clean.Posts = append([]string{}, u.Posts...)
	return &clean
}
