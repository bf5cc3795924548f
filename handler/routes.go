package handler

import (
	"social_graph/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers 聚合所有 HTTP 处理器
type Handlers struct {
	Relationships *RelationshipHandler
	Posts         *PostHandler
	Feed          *FeedHandler
	Notifications *NotificationHandler
}

// RegisterRoutes 注册 /api/v1 下需要认证的路由
func RegisterRoutes(r gin.IRouter, h *Handlers) {
	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware())
	{
		// 关注关系
		api.POST("/users/:id/follow", h.Relationships.Follow)
		api.POST("/users/:id/unfollow", h.Relationships.Unfollow)
		api.GET("/users/:id/followers", h.Relationships.GetFollowers)
		api.GET("/users/:id/following", h.Relationships.GetFollowing)

		// 帖子与点赞
		api.POST("/posts", h.Posts.CreatePost)
		api.GET("/posts/:id", h.Posts.GetPost)
		api.POST("/posts/:id/like", h.Posts.LikePost)
		api.POST("/posts/:id/unlike", h.Posts.UnlikePost)

		// 时间线
		api.GET("/feed", h.Feed.GetFeed)

		// 通知
		api.GET("/notifications", h.Notifications.GetNotifications)
		api.POST("/notifications/read-all", h.Notifications.MarkAllAsRead)
		api.POST("/notifications/:id/read", h.Notifications.MarkRead)
	}
}
