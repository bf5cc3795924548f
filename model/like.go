package model

import (
	"time"

	"github.com/google/uuid"
)

// Like 用户对帖子的点赞，每个 (UserID, PostID) 至多一条
type Like struct {
	UserID    uuid.UUID `json:"user_id"`
	PostID    uuid.UUID `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
