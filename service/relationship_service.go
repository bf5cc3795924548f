package service

import (
	"context"

	"social_graph/errno"
	"social_graph/model"
	"social_graph/store"

	"github.com/google/uuid"
)

// RelationshipService 关注关系的只读查询；关注/取关的状态变更走 InteractionService
type RelationshipService struct {
	relationships store.RelationshipStore
}

func NewRelationshipService(relationships store.RelationshipStore) *RelationshipService {
	return &RelationshipService{relationships: relationships}
}

// GetFollowers 获取粉丝列表
func (s *RelationshipService) GetFollowers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.relationships.Followers(ctx, userID)
	if err != nil {
		return nil, errno.Persistence("list followers", err)
	}
	return ids, nil
}

// GetFollowing 获取关注列表
func (s *RelationshipService) GetFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.relationships.Followees(ctx, userID)
	if err != nil {
		return nil, errno.Persistence("list following", err)
	}
	return ids, nil
}

// GetCounts 获取关注数和粉丝数
func (s *RelationshipService) GetCounts(ctx context.Context, userID uuid.UUID) (*model.FollowCounts, error) {
	counts, err := s.relationships.Counts(ctx, userID)
	if err != nil {
		return nil, errno.Persistence("count relationships", err)
	}
	return counts, nil
}

// IsFollowing 检查是否已关注
func (s *RelationshipService) IsFollowing(ctx context.Context, follower, followee uuid.UUID) (bool, error) {
	ok, err := s.relationships.IsFollowing(ctx, follower, followee)
	if err != nil {
		return false, errno.Persistence("check relationship", err)
	}
	return ok, nil
}
