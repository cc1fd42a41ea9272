package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PostModel struct {
	ID            string         `gorm:"type:uuid;primary_key" json:"id"`
	Title         string         `gorm:"type:varchar(255);not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	PhotoURL      string         `gorm:"type:varchar(500)" json:"photo_url"`
	PhotoFilename string         `gorm:"type:varchar(500)" json:"photo_filename"`
	AuthorID      string         `gorm:"type:uuid;not null;index" json:"author_id"`
	Comments      pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"comments"`
	LikesCount    int            `gorm:"not null;default:0" json:"likes_count"`
	LikeAuthors   pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"like_authors"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
