package service

import (
	"context"

	"social_graph/errno"
	"social_graph/model"
	"social_graph/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FollowResult 关注/取关结果
type FollowResult struct {
	Following bool `json:"following"`
}

// LikeResult 点赞/取消点赞结果
type LikeResult struct {
	Liked        bool `json:"liked"`
	AlreadyLiked bool `json:"already_liked,omitempty"`
}

// InteractionService 协调关注、点赞、通知和时间线。
//
// 规则：
//   - 通知当且仅当存储报告 created=true 时发出，先写状态后发通知
//   - 自己关注自己在进入存储前就被拒绝；自己给自己点赞是允许的
//   - 关注完全幂等；点赞幂等；取消一个没有点过的赞是错误
//
// 调用方（HTTP 层）负责鉴权，这里只校验领域不变量。
type InteractionService struct {
	relationships store.RelationshipStore
	reactions     store.ReactionStore
	posts         store.PostRepository
	users         store.UserResolver
	notifications *NotificationService
	feed          *FeedService
	log           *zap.Logger
}

func NewInteractionService(
	relationships store.RelationshipStore,
	reactions store.ReactionStore,
	posts store.PostRepository,
	users store.UserResolver,
	notifications *NotificationService,
	log *zap.Logger,
) *InteractionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &InteractionService{
		relationships: relationships,
		reactions:     reactions,
		posts:         posts,
		users:         users,
		notifications: notifications,
		feed:          NewFeedService(relationships, posts),
		log:           log,
	}
}

// Follow 关注用户。重复关注返回成功且不会再发通知。
func (s *InteractionService) Follow(ctx context.Context, follower, followee uuid.UUID) (*FollowResult, error) {
	if follower == followee {
		return nil, errno.ErrSelfFollow
	}
	exists, err := s.users.Exists(ctx, followee)
	if err != nil {
		return nil, errno.Persistence("resolve user", err)
	}
	if !exists {
		return nil, errno.ErrUserNotFound
	}

	created, err := s.relationships.Follow(ctx, follower, followee)
	if err != nil {
		return nil, errno.Persistence("follow", err)
	}
	if created {
		if _, err := s.notifications.Emit(ctx, followee, follower, model.VerbFollowed, model.TargetUser, followee); err != nil {
			s.log.Error("follow committed but notification failed",
				zap.String("follower_id", follower.String()),
				zap.String("followee_id", followee.String()),
				zap.Error(err))
			return nil, err
		}
	}

	s.log.Debug("follow",
		zap.String("follower_id", follower.String()),
		zap.String("followee_id", followee.String()),
		zap.Bool("created", created))
	return &FollowResult{Following: true}, nil
}

// Unfollow 取消关注。未关注时也返回成功。
func (s *InteractionService) Unfollow(ctx context.Context, follower, followee uuid.UUID) (*FollowResult, error) {
	removed, err := s.relationships.Unfollow(ctx, follower, followee)
	if err != nil {
		return nil, errno.Persistence("unfollow", err)
	}

	s.log.Debug("unfollow",
		zap.String("follower_id", follower.String()),
		zap.String("followee_id", followee.String()),
		zap.Bool("removed", removed))
	return &FollowResult{Following: false}, nil
}

// Like 点赞帖子，通知帖子作者（包括作者给自己点赞）。重复点赞返回 AlreadyLiked。
func (s *InteractionService) Like(ctx context.Context, userID, postID uuid.UUID) (*LikeResult, error) {
	post, err := s.posts.Get(ctx, postID)
	if err != nil {
		return nil, errno.Persistence("get post", err)
	}

	created, err := s.reactions.Like(ctx, userID, postID)
	if err != nil {
		return nil, errno.Persistence("like", err)
	}
	if !created {
		return &LikeResult{Liked: true, AlreadyLiked: true}, nil
	}

	if _, err := s.notifications.Emit(ctx, post.AuthorID, userID, model.VerbLiked, model.TargetPost, post.ID); err != nil {
		s.log.Error("like committed but notification failed",
			zap.String("user_id", userID.String()),
			zap.String("post_id", postID.String()),
			zap.Error(err))
		return nil, err
	}
	return &LikeResult{Liked: true}, nil
}

// Unlike 取消点赞。帖子不存在返回 errno.ErrPostNotFound，没有点过赞返回 errno.ErrNotLiked。
func (s *InteractionService) Unlike(ctx context.Context, userID, postID uuid.UUID) (*LikeResult, error) {
	if _, err := s.posts.Get(ctx, postID); err != nil {
		return nil, errno.Persistence("get post", err)
	}
	if err := s.reactions.Unlike(ctx, userID, postID); err != nil {
		return nil, errno.Persistence("unlike", err)
	}
	return &LikeResult{Liked: false}, nil
}

// Feed 获取时间线
func (s *InteractionService) Feed(ctx context.Context, userID uuid.UUID, limit int) ([]model.Post, error) {
	return s.feed.FeedFor(ctx, userID, limit)
}

// Notifications 获取通知列表
func (s *InteractionService) Notifications(ctx context.Context, recipient uuid.UUID, opts model.ListOptions) ([]model.Notification, error) {
	return s.notifications.ListFor(ctx, recipient, opts)
}
