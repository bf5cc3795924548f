package handler

import (
	"social_graph/middleware"
	"social_graph/service"
	"social_graph/utils"

	"github.com/gin-gonic/gin"
)

type RelationshipHandler struct {
	interactions *service.InteractionService
	relSvc       *service.RelationshipService
}

func NewRelationshipHandler(interactions *service.InteractionService, relSvc *service.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{interactions: interactions, relSvc: relSvc}
}

// Follow 关注用户
func (h *RelationshipHandler) Follow(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.interactions.Follow(c.Request.Context(), userID, targetID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// Unfollow 取消关注
func (h *RelationshipHandler) Unfollow(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.interactions.Unfollow(c.Request.Context(), userID, targetID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// GetFollowers 获取粉丝列表
func (h *RelationshipHandler) GetFollowers(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	followers, err := h.relSvc.GetFollowers(ctx, targetID)
	if err != nil {
		utils.Error(c, err)
		return
	}
	counts, err := h.relSvc.GetCounts(ctx, targetID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"followers": followers,
		"counts":    counts,
	})
}

// GetFollowing 获取关注列表
func (h *RelationshipHandler) GetFollowing(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	following, err := h.relSvc.GetFollowing(ctx, targetID)
	if err != nil {
		utils.Error(c, err)
		return
	}
	counts, err := h.relSvc.GetCounts(ctx, targetID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"following": following,
		"counts":    counts,
	})
}
