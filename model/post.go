package model

import (
	"time"

	"github.com/google/uuid"
)

// Post 帖子，由发帖子系统拥有；这里只关心作者和创建时间
type Post struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewerThan reports whether p sorts before o in a feed (newest first, ID desc on ties).
func (p *Post) NewerThan(o *Post) bool {
	if !p.CreatedAt.Equal(o.CreatedAt) {
		return p.CreatedAt.After(o.CreatedAt)
	}
	return p.ID.String() > o.ID.String()
}
