package pgstore

import (
	"context"
	"fmt"
	"time"

	"social_graph/errno"
	"social_graph/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationStore struct {
	db *gorm.DB
}

func NewNotificationStore(db *gorm.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

func (s *NotificationStore) Create(ctx context.Context, n *model.Notification) error {
	if err := s.db.WithContext(ctx).Create(notificationFromModel(n)).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListByRecipient 按 (created_at DESC, id DESC) 排序，保证并列时顺序稳定
func (s *NotificationStore) ListByRecipient(ctx context.Context, recipient uuid.UUID, opts model.ListOptions) ([]model.Notification, error) {
	query := s.db.WithContext(ctx).Where("recipient_id = ?", recipient)
	if opts.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}
	query = query.Order("created_at DESC, id DESC")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}

	var rows []notificationRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	out := make([]model.Notification, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toModel())
	}
	return out, nil
}

func (s *NotificationStore) CountUnread(ctx context.Context, recipient uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&notificationRow{}).
		Where("recipient_id = ? AND is_read = ?", recipient, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead 已读的通知保留原 read_at
func (s *NotificationStore) MarkRead(ctx context.Context, recipient, id uuid.UUID, at time.Time) error {
	result := s.db.WithContext(ctx).Model(&notificationRow{}).
		Where("id = ? AND recipient_id = ?", id, recipient).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": gorm.Expr("COALESCE(read_at, ?)", at),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errno.ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationStore) MarkAllRead(ctx context.Context, recipient uuid.UUID, at time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Model(&notificationRow{}).
		Where("recipient_id = ? AND is_read = ?", recipient, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": at,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}
