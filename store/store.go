// Package store declares the persistence ports used by the interaction core.
//
// Implementations must make every conditional write a single atomic
// operation: Follow and Like are create-if-absent, Unfollow and Unlike are
// delete-and-report. A separate existence check followed by an insert is
// not acceptable.
package store

import (
	"context"
	"time"

	"social_graph/model"

	"github.com/google/uuid"
)

// RelationshipStore 关注关系存储
type RelationshipStore interface {
	// Follow inserts the edge if absent. created is false when it already existed.
	// Returns errno.ErrSelfFollow when follower == followee.
	Follow(ctx context.Context, follower, followee uuid.UUID) (created bool, err error)
	// Unfollow removes the edge if present. Absence is not an error.
	Unfollow(ctx context.Context, follower, followee uuid.UUID) (removed bool, err error)
	IsFollowing(ctx context.Context, follower, followee uuid.UUID) (bool, error)
	Followees(ctx context.Context, user uuid.UUID) ([]uuid.UUID, error)
	Followers(ctx context.Context, user uuid.UUID) ([]uuid.UUID, error)
	Counts(ctx context.Context, user uuid.UUID) (*model.FollowCounts, error)
}

// ReactionStore 点赞存储
type ReactionStore interface {
	// Like is an atomic get-or-create on (user, post).
	Like(ctx context.Context, user, post uuid.UUID) (created bool, err error)
	// Unlike returns errno.ErrNotLiked when no edge exists.
	Unlike(ctx context.Context, user, post uuid.UUID) error
	HasLiked(ctx context.Context, user, post uuid.UUID) (bool, error)
	LikeCount(ctx context.Context, post uuid.UUID) (int64, error)
}

// NotificationStore 通知存储，按接收者索引、按时间倒序
type NotificationStore interface {
	Create(ctx context.Context, n *model.Notification) error
	ListByRecipient(ctx context.Context, recipient uuid.UUID, opts model.ListOptions) ([]model.Notification, error)
	CountUnread(ctx context.Context, recipient uuid.UUID) (int64, error)
	// MarkRead returns errno.ErrNotificationNotFound when the id does not belong to recipient.
	MarkRead(ctx context.Context, recipient, id uuid.UUID, at time.Time) error
	MarkAllRead(ctx context.Context, recipient uuid.UUID, at time.Time) (int64, error)
}

// PostRepository 帖子仓储（外部发帖子系统的接口）
type PostRepository interface {
	Create(ctx context.Context, p *model.Post) error
	// Get returns errno.ErrPostNotFound when absent.
	Get(ctx context.Context, id uuid.UUID) (*model.Post, error)
	// ListByAuthors returns posts whose author is in authors, newest first
	// (ID desc on ties). limit <= 0 means no cap.
	ListByAuthors(ctx context.Context, authors []uuid.UUID, limit int) ([]model.Post, error)
}

// UserResolver 用户身份解析，只关心 ID 是否存在
type UserResolver interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
