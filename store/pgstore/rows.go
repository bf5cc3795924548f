// Package pgstore implements the store ports on PostgreSQL through gorm.
// Row types carry the table mapping so the model package stays plain.
package pgstore

import (
	"time"

	"social_graph/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// followRow 关注边表，复合主键保证 (follower, followee) 唯一
type followRow struct {
	FollowerID uuid.UUID `gorm:"type:uuid;primaryKey;check:chk_follows_not_self,follower_id <> followee_id"`
	FolloweeID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (followRow) TableName() string {
	return "follows"
}

// likeRow 点赞表，复合主键保证 (user, post) 唯一
type likeRow struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (likeRow) TableName() string {
	return "likes"
}

// notificationRow 通知表
type notificationRow struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_recipient_created,priority:1"`
	ActorID     uuid.UUID  `gorm:"type:uuid;not null"`
	Verb        string     `gorm:"type:varchar(20);not null"`
	TargetType  string     `gorm:"type:varchar(20);not null"`
	TargetID    uuid.UUID  `gorm:"type:uuid;not null"`
	IsRead      bool       `gorm:"not null;default:false"`
	ReadAt      *time.Time
	CreatedAt   time.Time `gorm:"not null;index:idx_notifications_recipient_created,priority:2,sort:desc"`
}

func (notificationRow) TableName() string {
	return "notifications"
}

func (r *notificationRow) toModel() model.Notification {
	return model.Notification{
		ID:          r.ID,
		RecipientID: r.RecipientID,
		ActorID:     r.ActorID,
		Verb:        model.Verb(r.Verb),
		TargetType:  model.TargetType(r.TargetType),
		TargetID:    r.TargetID,
		IsRead:      r.IsRead,
		ReadAt:      r.ReadAt,
		CreatedAt:   r.CreatedAt,
	}
}

func notificationFromModel(n *model.Notification) *notificationRow {
	return &notificationRow{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		ActorID:     n.ActorID,
		Verb:        string(n.Verb),
		TargetType:  string(n.TargetType),
		TargetID:    n.TargetID,
		IsRead:      n.IsRead,
		ReadAt:      n.ReadAt,
		CreatedAt:   n.CreatedAt,
	}
}

// postRow 帖子表
type postRow struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index:idx_posts_author_created,priority:1"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index:idx_posts_author_created,priority:2,sort:desc"`
	UpdatedAt time.Time
}

func (postRow) TableName() string {
	return "posts"
}

func (r *postRow) toModel() model.Post {
	return model.Post{
		ID:        r.ID,
		AuthorID:  r.AuthorID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// AutoMigrate 创建本服务拥有的表。users 表属于身份系统，不在这里迁移。
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&followRow{}, &likeRow{}, &notificationRow{}, &postRow{})
}
