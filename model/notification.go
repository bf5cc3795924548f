package model

import (
	"time"

	"github.com/google/uuid"
)

// Verb 通知动作类型
type Verb string

const (
	VerbFollowed Verb = "followed"
	VerbLiked    Verb = "liked"
)

// TargetType 通知指向的对象类型
type TargetType string

const (
	TargetUser TargetType = "user"
	TargetPost TargetType = "post"
)

// Notification 通知记录，创建后只有已读状态可变
type Notification struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	ActorID     uuid.UUID  `json:"actor_id"`
	Verb        Verb       `json:"verb"`
	TargetType  TargetType `json:"target_type"`
	TargetID    uuid.UUID  `json:"target_id"`
	IsRead      bool       `json:"is_read"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ListOptions 通知列表查询参数
type ListOptions struct {
	Limit      int
	Offset     int
	UnreadOnly bool
}

// NewerThan reports whether n sorts before o in a newest-first listing.
// Ties on CreatedAt are broken by ID, descending.
func (n *Notification) NewerThan(o *Notification) bool {
	if !n.CreatedAt.Equal(o.CreatedAt) {
		return n.CreatedAt.After(o.CreatedAt)
	}
	return n.ID.String() > o.ID.String()
}
