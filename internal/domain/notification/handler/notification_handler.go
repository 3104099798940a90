package handler

import (
	"net/http"

	"divelog_studio/internal/domain/notification/service"
	"divelog_studio/pkg/response"

	"github.com/gin-gonic/gin"
)

// NotificationHandler 通知处理器
type NotificationHandler struct {
	service service.NotificationService
}

// NewNotificationHandler 创建处理器
func NewNotificationHandler(s service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: s}
}

// MarkInput 已读标记载荷
type MarkInput struct {
	Read bool `json:"read"`
}

// GetNotifications 通知列表，新通知在前
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	response.Success(c, h.service.List())
}

// AddNotification 新增通知
func (h *NotificationHandler) AddNotification(c *gin.Context) {
	var input service.AddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	response.Success(c, h.service.Add(input))
}

// MarkNotification 设置已读未读
func (h *NotificationHandler) MarkNotification(c *gin.Context) {
	var input MarkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	if !h.service.Mark(c.Param("id"), input.Read) {
		response.Fail(c, response.ErrContentNotFound, "notification not found")
		return
	}
	response.Success(c, true)
}

// DismissNotification 永久移除通知
func (h *NotificationHandler) DismissNotification(c *gin.Context) {
	if !h.service.Dismiss(c.Param("id")) {
		response.Fail(c, response.ErrContentNotFound, "notification not found")
		return
	}
	response.Success(c, true)
}
