package service

import (
	"context"

	"social_graph/errno"
	"social_graph/model"
	"social_graph/store"

	"github.com/google/uuid"
)

// FeedService 组装时间线：关注的人发的帖子，最新在前。只读，不加锁。
type FeedService struct {
	relationships store.RelationshipStore
	posts         store.PostRepository
}

func NewFeedService(relationships store.RelationshipStore, posts store.PostRepository) *FeedService {
	return &FeedService{relationships: relationships, posts: posts}
}

// FeedFor 没有关注任何人时返回空列表。作者集合过滤交给帖子仓储完成。
func (s *FeedService) FeedFor(ctx context.Context, userID uuid.UUID, limit int) ([]model.Post, error) {
	followees, err := s.relationships.Followees(ctx, userID)
	if err != nil {
		return nil, errno.Persistence("resolve followees", err)
	}
	if len(followees) == 0 {
		return []model.Post{}, nil
	}

	posts, err := s.posts.ListByAuthors(ctx, followees, limit)
	if err != nil {
		return nil, errno.Persistence("list feed posts", err)
	}
	return posts, nil
}
