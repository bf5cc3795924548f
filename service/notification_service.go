package service

import (
	"context"
	"time"

	"social_graph/errno"
	"social_graph/model"
	"social_graph/notify"
	"social_graph/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService 通知发射器：只追加、不去重，去重由调用方根据 created 标志保证
type NotificationService struct {
	store     store.NotificationStore
	publisher notify.Publisher
	log       *zap.Logger
	now       func() time.Time
}

func NewNotificationService(s store.NotificationStore, log *zap.Logger) *NotificationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &NotificationService{
		store:     s,
		publisher: notify.NopPublisher{},
		log:       log,
		now:       time.Now,
	}
}

// SetPublisher 设置外部投递通道（依赖注入）
func (s *NotificationService) SetPublisher(p notify.Publisher) {
	if p == nil {
		p = notify.NopPublisher{}
	}
	s.publisher = p
}

// Emit 追加一条通知。存储失败返回 PersistenceError；发布失败只记日志。
func (s *NotificationService) Emit(ctx context.Context, recipient, actor uuid.UUID, verb model.Verb, targetType model.TargetType, targetID uuid.UUID) (*model.Notification, error) {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	n := &model.Notification{
		ID:          id,
		RecipientID: recipient,
		ActorID:     actor,
		Verb:        verb,
		TargetType:  targetType,
		TargetID:    targetID,
		IsRead:      false,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.store.Create(ctx, n); err != nil {
		return nil, errno.Persistence("create notification", err)
	}

	if err := s.publisher.Publish(ctx, n); err != nil {
		s.log.Warn("notification publish failed",
			zap.String("notification_id", n.ID.String()),
			zap.String("recipient_id", recipient.String()),
			zap.Error(err))
	}
	return n, nil
}

// ListFor 获取接收者的通知列表，最新在前
func (s *NotificationService) ListFor(ctx context.Context, recipient uuid.UUID, opts model.ListOptions) ([]model.Notification, error) {
	list, err := s.store.ListByRecipient(ctx, recipient, opts)
	if err != nil {
		return nil, errno.Persistence("list notifications", err)
	}
	return list, nil
}

// UnreadCount 获取未读通知数量
func (s *NotificationService) UnreadCount(ctx context.Context, recipient uuid.UUID) (int64, error) {
	count, err := s.store.CountUnread(ctx, recipient)
	if err != nil {
		return 0, errno.Persistence("count unread notifications", err)
	}
	return count, nil
}

// MarkRead 标记单条通知为已读
func (s *NotificationService) MarkRead(ctx context.Context, recipient, id uuid.UUID) error {
	return errno.Persistence("mark notification read", s.store.MarkRead(ctx, recipient, id, s.now().UTC()))
}

// MarkAllAsRead 标记所有通知为已读
func (s *NotificationService) MarkAllAsRead(ctx context.Context, recipient uuid.UUID) (int64, error) {
	updated, err := s.store.MarkAllRead(ctx, recipient, s.now().UTC())
	if err != nil {
		return 0, errno.Persistence("mark all notifications read", err)
	}
	return updated, nil
}
