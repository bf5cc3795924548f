package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"social_graph/errno"
	"social_graph/model"

	"github.com/google/uuid"
)

type NotificationStore struct {
	mu          sync.RWMutex
	byRecipient map[uuid.UUID][]*model.Notification
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{byRecipient: make(map[uuid.UUID][]*model.Notification)}
}

func (s *NotificationStore) Create(_ context.Context, n *model.Notification) error {
	cp := *n
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byRecipient[n.RecipientID] = append(s.byRecipient[n.RecipientID], &cp)
	return nil
}

func (s *NotificationStore) ListByRecipient(_ context.Context, recipient uuid.UUID, opts model.ListOptions) ([]model.Notification, error) {
	s.mu.RLock()
	all := make([]model.Notification, 0, len(s.byRecipient[recipient]))
	for _, n := range s.byRecipient[recipient] {
		if opts.UnreadOnly && n.IsRead {
			continue
		}
		all = append(all, *n)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].NewerThan(&all[j]) })

	if opts.Offset > 0 {
		if opts.Offset >= len(all) {
			return []model.Notification{}, nil
		}
		all = all[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(all) {
		all = all[:opts.Limit]
	}
	return all, nil
}

func (s *NotificationStore) CountUnread(_ context.Context, recipient uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for _, n := range s.byRecipient[recipient] {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *NotificationStore) MarkRead(_ context.Context, recipient, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.byRecipient[recipient] {
		if n.ID != id {
			continue
		}
		if !n.IsRead {
			n.IsRead = true
			t := at
			n.ReadAt = &t
		}
		return nil
	}
	return errno.ErrNotificationNotFound
}

func (s *NotificationStore) MarkAllRead(_ context.Context, recipient uuid.UUID, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var updated int64
	for _, n := range s.byRecipient[recipient] {
		if n.IsRead {
			continue
		}
		n.IsRead = true
		t := at
		n.ReadAt = &t
		updated++
	}
	return updated, nil
}
