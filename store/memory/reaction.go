package memory

import (
	"context"
	"sync"
	"time"

	"social_graph/errno"

	"github.com/google/uuid"
)

type likeKey struct {
	user uuid.UUID
	post uuid.UUID
}

type ReactionStore struct {
	mu     sync.RWMutex
	likes  map[likeKey]time.Time
	byPost map[uuid.UUID]int64
}

func NewReactionStore() *ReactionStore {
	return &ReactionStore{
		likes:  make(map[likeKey]time.Time),
		byPost: make(map[uuid.UUID]int64),
	}
}

func (s *ReactionStore) Like(_ context.Context, user, post uuid.UUID) (bool, error) {
	k := likeKey{user: user, post: post}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.likes[k]; ok {
		return false, nil
	}
	s.likes[k] = time.Now()
	s.byPost[post]++
	return true, nil
}

func (s *ReactionStore) Unlike(_ context.Context, user, post uuid.UUID) error {
	k := likeKey{user: user, post: post}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.likes[k]; !ok {
		return errno.ErrNotLiked
	}
	delete(s.likes, k)
	s.byPost[post]--
	if s.byPost[post] == 0 {
		delete(s.byPost, post)
	}
	return nil
}

func (s *ReactionStore) HasLiked(_ context.Context, user, post uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.likes[likeKey{user: user, post: post}]
	return ok, nil
}

func (s *ReactionStore) LikeCount(_ context.Context, post uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byPost[post], nil
}
