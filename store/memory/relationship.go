// Package memory holds process-local implementations of the store ports.
// Each store guards its maps with a single RWMutex, so a check-and-insert
// happens inside one critical section.
package memory

import (
	"context"
	"sync"
	"time"

	"social_graph/errno"
	"social_graph/model"

	"github.com/google/uuid"
)

type RelationshipStore struct {
	mu        sync.RWMutex
	following map[uuid.UUID]map[uuid.UUID]time.Time // follower -> followee -> created
	followers map[uuid.UUID]map[uuid.UUID]time.Time // followee -> follower -> created
}

func NewRelationshipStore() *RelationshipStore {
	return &RelationshipStore{
		following: make(map[uuid.UUID]map[uuid.UUID]time.Time),
		followers: make(map[uuid.UUID]map[uuid.UUID]time.Time),
	}
}

func (s *RelationshipStore) Follow(_ context.Context, follower, followee uuid.UUID) (bool, error) {
	if follower == followee {
		return false, errno.ErrSelfFollow
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.following[follower][followee]; ok {
		return false, nil
	}
	now := time.Now()
	if s.following[follower] == nil {
		s.following[follower] = make(map[uuid.UUID]time.Time)
	}
	if s.followers[followee] == nil {
		s.followers[followee] = make(map[uuid.UUID]time.Time)
	}
	s.following[follower][followee] = now
	s.followers[followee][follower] = now
	return true, nil
}

func (s *RelationshipStore) Unfollow(_ context.Context, follower, followee uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.following[follower][followee]; !ok {
		return false, nil
	}
	delete(s.following[follower], followee)
	delete(s.followers[followee], follower)
	return true, nil
}

func (s *RelationshipStore) IsFollowing(_ context.Context, follower, followee uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.following[follower][followee]
	return ok, nil
}

func (s *RelationshipStore) Followees(_ context.Context, user uuid.UUID) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.following[user]), nil
}

func (s *RelationshipStore) Followers(_ context.Context, user uuid.UUID) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.followers[user]), nil
}

func (s *RelationshipStore) Counts(_ context.Context, user uuid.UUID) (*model.FollowCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &model.FollowCounts{
		Followers: int64(len(s.followers[user])),
		Following: int64(len(s.following[user])),
	}, nil
}
