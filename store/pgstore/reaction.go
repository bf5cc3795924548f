package pgstore

import (
	"context"
	"fmt"

	"social_graph/errno"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReactionStore struct {
	db *gorm.DB
}

func NewReactionStore(db *gorm.DB) *ReactionStore {
	return &ReactionStore{db: db}
}

func (s *ReactionStore) Like(ctx context.Context, user, post uuid.UUID) (bool, error) {
	row := &likeRow{UserID: user, PostID: post}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row)
	if result.Error != nil {
		return false, fmt.Errorf("failed to like post: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (s *ReactionStore) Unlike(ctx context.Context, user, post uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", user, post).
		Delete(&likeRow{})
	if result.Error != nil {
		return fmt.Errorf("failed to unlike post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errno.ErrNotLiked
	}
	return nil
}

func (s *ReactionStore) HasLiked(ctx context.Context, user, post uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&likeRow{}).
		Where("user_id = ? AND post_id = ?", user, post).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

func (s *ReactionStore) LikeCount(ctx context.Context, post uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&likeRow{}).
		Where("post_id = ?", post).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
