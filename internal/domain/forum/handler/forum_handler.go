package handler

import (
	"errors"
	"net/http"

	"divelog_studio/internal/domain/forum/service"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/pkg/response"
	"divelog_studio/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ForumHandler 论坛处理器
type ForumHandler struct {
	service service.ForumService
}

// NewForumHandler 创建处理器
func NewForumHandler(s service.ForumService) *ForumHandler {
	return &ForumHandler{service: s}
}

// GetCategories 版块列表
func (h *ForumHandler) GetCategories(c *gin.Context) {
	response.Success(c, h.service.Categories())
}

// GetThreads 主题列表，最近活跃降序，可选分页
func (h *ForumHandler) GetThreads(c *gin.Context) {
	viewerID, _ := middleware.Actor(c)
	threads := h.service.Threads(viewerID)

	// 未传分页参数时返回完整列表
	if c.Query("page") == "" && c.Query("limit") == "" {
		response.Success(c, threads)
		return
	}

	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	offset, limit := p.GetPageOffset()
	if offset > len(threads) {
		offset = len(threads)
	}
	end := offset + limit
	if end > len(threads) {
		end = len(threads)
	}
	response.Success(c, utils.PageResult{
		List:  threads[offset:end],
		Total: int64(len(threads)),
		Page:  p.Page,
		Limit: p.Limit,
	})
}

// GetThread 单个主题
func (h *ForumHandler) GetThread(c *gin.Context) {
	viewerID, _ := middleware.Actor(c)
	thread, ok := h.service.Thread(viewerID, c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrContentNotFound, "thread not found")
		return
	}
	response.Success(c, thread)
}

// AddThread 发主题
func (h *ForumHandler) AddThread(c *gin.Context) {
	var input service.ThreadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	actorID, _ := middleware.Actor(c)
	response.Success(c, h.service.AddThread(actorID, input))
}

// UpdateThread 部分更新主题
func (h *ForumHandler) UpdateThread(c *gin.Context) {
	var input service.UpdateThreadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	actorID, admin := middleware.Actor(c)
	if err := h.service.UpdateThread(actorID, admin, c.Param("id"), input); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

// DeleteThread 删除主题
func (h *ForumHandler) DeleteThread(c *gin.Context) {
	actorID, admin := middleware.Actor(c)
	if err := h.service.RemoveThread(actorID, admin, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

// AddReply 追加回复
func (h *ForumHandler) AddReply(c *gin.Context) {
	var input service.ReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	actorID, _ := middleware.Actor(c)
	if err := h.service.AddReply(actorID, c.Param("id"), input); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

// UpdateReply 部分更新回复
func (h *ForumHandler) UpdateReply(c *gin.Context) {
	var input service.UpdateReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	actorID, admin := middleware.Actor(c)
	if err := h.service.UpdateReply(actorID, admin, c.Param("id"), c.Param("replyId"), input); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

// DeleteReply 删除回复
func (h *ForumHandler) DeleteReply(c *gin.Context) {
	actorID, admin := middleware.Actor(c)
	if err := h.service.RemoveReply(actorID, admin, c.Param("id"), c.Param("replyId")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

// ToggleThreadLike 翻转主题点赞
func (h *ForumHandler) ToggleThreadLike(c *gin.Context) {
	viewerID, _ := middleware.Actor(c)
	liked, found := h.service.ToggleThreadLike(viewerID, c.Param("id"))
	if !found {
		response.Fail(c, response.ErrContentNotFound, "thread not found")
		return
	}
	response.Success(c, gin.H{"liked": liked})
}

// ToggleReplyLike 翻转回复点赞
func (h *ForumHandler) ToggleReplyLike(c *gin.Context) {
	viewerID, _ := middleware.Actor(c)
	liked, found := h.service.ToggleReplyLike(viewerID, c.Param("id"), c.Param("replyId"))
	if !found {
		response.Fail(c, response.ErrContentNotFound, "reply not found")
		return
	}
	response.Success(c, gin.H{"liked": liked})
}

func (h *ForumHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNoPermission) {
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
}
