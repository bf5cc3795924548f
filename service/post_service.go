package service

import (
	"context"
	"strings"
	"time"

	"social_graph/errno"
	"social_graph/model"
	"social_graph/store"

	"github.com/google/uuid"
)

const maxTitleLength = 200

// PostService 发帖子系统的最小实现，供时间线和点赞使用
type PostService struct {
	posts     store.PostRepository
	reactions store.ReactionStore
	now       func() time.Time
}

// PostDetail 帖子详情（含点赞数）
type PostDetail struct {
	model.Post
	LikeCount int64 `json:"like_count"`
	LikedByMe bool  `json:"liked_by_me"`
}

func NewPostService(posts store.PostRepository, reactions store.ReactionStore) *PostService {
	return &PostService{posts: posts, reactions: reactions, now: time.Now}
}

// CreatePost 创建帖子
func (s *PostService) CreatePost(ctx context.Context, authorID uuid.UUID, title, content string) (*model.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" || len([]rune(title)) > maxTitleLength {
		return nil, errno.ErrParameterInvalid
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	now := s.now().UTC()
	p := &model.Post{
		ID:        id,
		AuthorID:  authorID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, errno.Persistence("create post", err)
	}
	return p, nil
}

// GetPostDetail 获取帖子详情；viewer 为 uuid.Nil 时不计算 LikedByMe
func (s *PostService) GetPostDetail(ctx context.Context, viewer, postID uuid.UUID) (*PostDetail, error) {
	p, err := s.posts.Get(ctx, postID)
	if err != nil {
		return nil, errno.Persistence("get post", err)
	}
	count, err := s.reactions.LikeCount(ctx, postID)
	if err != nil {
		return nil, errno.Persistence("count likes", err)
	}
	detail := &PostDetail{Post: *p, LikeCount: count}
	if viewer != uuid.Nil {
		liked, err := s.reactions.HasLiked(ctx, viewer, postID)
		if err != nil {
			return nil, errno.Persistence("check like", err)
		}
		detail.LikedByMe = liked
	}
	return detail, nil
}
