package model

import (
	"time"

	"github.com/google/uuid"
)

// Follow 有向关注边：FollowerID 关注 FolloweeID
type Follow struct {
	FollowerID uuid.UUID `json:"follower_id"`
	FolloweeID uuid.UUID `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// FollowCounts 关注数与粉丝数
type FollowCounts struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}
