package handler

import (
	"social_graph/middleware"
	"social_graph/model"
	"social_graph/service"
	"social_graph/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	interactions *service.InteractionService
	notifSvc     *service.NotificationService
}

func NewNotificationHandler(interactions *service.InteractionService, notifSvc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{interactions: interactions, notifSvc: notifSvc}
}

// GetNotifications 获取通知列表
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}

	// 分页参数
	limit, ok := queryInt(c, "limit", 50)
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		return
	}
	unreadOnly := c.DefaultQuery("unread_only", "false") == "true"

	ctx := c.Request.Context()
	notifications, err := h.interactions.Notifications(ctx, userID, model.ListOptions{
		Limit:      limit,
		Offset:     offset,
		UnreadOnly: unreadOnly,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	unread, err := h.notifSvc.UnreadCount(ctx, userID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkRead 标记单条通知为已读
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}
	notificationID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.notifSvc.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "notification marked as read", nil)
}

// MarkAllAsRead 标记所有通知为已读
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "unauthorized")
		return
	}

	updated, err := h.notifSvc.MarkAllAsRead(c.Request.Context(), userID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "all notifications marked as read", gin.H{"updated": updated})
}
