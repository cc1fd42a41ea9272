package entity

import "time"

type Photo struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Photo       Photo     `json:"photo"`
	AuthorID    string    `json:"author"`
	Comments    []string  `json:"comments"`
	Likes       Likes     `json:"likes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasPhoto reports whether an uploaded image is attached to the post.
func (p *Post) HasPhoto() bool {
	return p.Photo.URL != ""
}
