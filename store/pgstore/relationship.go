package pgstore

import (
	"context"
	"fmt"

	"social_graph/errno"
	"social_graph/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RelationshipStore struct {
	db *gorm.DB
}

func NewRelationshipStore(db *gorm.DB) *RelationshipStore {
	return &RelationshipStore{db: db}
}

// Follow 插入关注边；INSERT ... ON CONFLICT DO NOTHING，受影响行数即 created
func (s *RelationshipStore) Follow(ctx context.Context, follower, followee uuid.UUID) (bool, error) {
	if follower == followee {
		return false, errno.ErrSelfFollow
	}
	row := &followRow{FollowerID: follower, FolloweeID: followee}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row)
	if result.Error != nil {
		return false, fmt.Errorf("failed to follow user: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

// Unfollow 删除关注边，受影响行数即 removed
func (s *RelationshipStore) Unfollow(ctx context.Context, follower, followee uuid.UUID) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", follower, followee).
		Delete(&followRow{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to unfollow user: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *RelationshipStore) IsFollowing(ctx context.Context, follower, followee uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&followRow{}).
		Where("follower_id = ? AND followee_id = ?", follower, followee).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check relationship: %w", err)
	}
	return count > 0, nil
}

func (s *RelationshipStore) Followees(ctx context.Context, user uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).Model(&followRow{}).
		Where("follower_id = ?", user).
		Order("created_at DESC").
		Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query followees: %w", err)
	}
	return ids, nil
}

func (s *RelationshipStore) Followers(ctx context.Context, user uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).Model(&followRow{}).
		Where("followee_id = ?", user).
		Order("created_at DESC").
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query followers: %w", err)
	}
	return ids, nil
}

func (s *RelationshipStore) Counts(ctx context.Context, user uuid.UUID) (*model.FollowCounts, error) {
	var counts model.FollowCounts
	db := s.db.WithContext(ctx)
	if err := db.Model(&followRow{}).Where("followee_id = ?", user).Count(&counts.Followers).Error; err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}
	if err := db.Model(&followRow{}).Where("follower_id = ?", user).Count(&counts.Following).Error; err != nil {
		return nil, fmt.Errorf("failed to count following: %w", err)
	}
	return &counts, nil
}
