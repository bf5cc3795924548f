package handler

import (
	"social_graph/middleware"
	"social_graph/service"
	"social_graph/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc      *service.PostService
	interactions *service.InteractionService
}

func NewPostHandler(postSvc *service.PostService, interactions *service.InteractionService) *PostHandler {
	return &PostHandler{postSvc: postSvc, interactions: interactions}
}

// CreatePost 发帖
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}

	var req struct {
		Title   string `json:"title" binding:"required"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	post, err := h.postSvc.CreatePost(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"post": post})
}

// GetPost 帖子详情（含点赞数）
func (h *PostHandler) GetPost(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.postSvc.GetPostDetail(c.Request.Context(), userID, postID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"post": detail})
}

// LikePost 点赞，重复点赞返回 already_liked
func (h *PostHandler) LikePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.interactions.Like(c.Request.Context(), userID, postID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// UnlikePost 取消点赞
func (h *PostHandler) UnlikePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.interactions.Unlike(c.Request.Context(), userID, postID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}
