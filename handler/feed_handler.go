package handler

import (
	"social_graph/middleware"
	"social_graph/service"
	"social_graph/utils"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	interactions *service.InteractionService
	defaultLimit int
}

func NewFeedHandler(interactions *service.InteractionService, defaultLimit int) *FeedHandler {
	return &FeedHandler{interactions: interactions, defaultLimit: defaultLimit}
}

// GetFeed 关注的人发布的帖子，按时间倒序
func (h *FeedHandler) GetFeed(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}
	limit, ok := queryInt(c, "limit", h.defaultLimit)
	if !ok {
		return
	}

	posts, err := h.interactions.Feed(c.Request.Context(), userID, limit)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"posts": posts})
}
