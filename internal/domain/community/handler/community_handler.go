package handler

import (
	"errors"
	"net/http"

	"divelog_studio/internal/domain/community/service"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/pkg/response"

	"github.com/gin-gonic/gin"
)

// CommunityHandler 社区处理器
type CommunityHandler struct {
	service service.CommunityService
}

// NewCommunityHandler 创建处理器
func NewCommunityHandler(s service.CommunityService) *CommunityHandler {
	return &CommunityHandler{service: s}
}

// GetPosts 帖子列表，登录会员带 likedByMe 标记
func (h *CommunityHandler) GetPosts(c *gin.Context) {
	viewerID, _ := middleware.Actor(c)
	response.Success(c, h.service.Posts(viewerID))
}

// GetPost 单个帖子
func (h *CommunityHandler) GetPost(c *gin.Context) {
	viewerID, _ := middleware.Actor(c)
	post, ok := h.service.Post(viewerID, c.Param("id"))
	if !ok {
		response.Fail(c, response.ErrContentNotFound, "post not found")
		return
	}
	response.Success(c, post)
}

// AddPost 发帖，匿名访客也可发布
func (h *CommunityHandler) AddPost(c *gin.Context) {
	var input service.PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	actorID, _ := middleware.Actor(c)
	response.Success(c, h.service.AddPost(actorID, input))
}

// UpdatePost 部分更新帖子
func (h *CommunityHandler) UpdatePost(c *gin.Context) {
	var input service.UpdatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	actorID, admin := middleware.Actor(c)
	if err := h.service.UpdatePost(actorID, admin, c.Param("id"), input); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

// DeletePost 删除帖子
func (h *CommunityHandler) DeletePost(c *gin.Context) {
	actorID, admin := middleware.Actor(c)
	if err := h.service.RemovePost(actorID, admin, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

// AddComment 追加评论
func (h *CommunityHandler) AddComment(c *gin.Context) {
	var input service.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	actorID, _ := middleware.Actor(c)
	if err := h.service.AddComment(actorID, c.Param("id"), input); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

// UpdateComment 部分更新评论
func (h *CommunityHandler) UpdateComment(c *gin.Context) {
	var input service.UpdateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	actorID, admin := middleware.Actor(c)
	if err := h.service.UpdateComment(actorID, admin, c.Param("id"), c.Param("commentId"), input); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

// DeleteComment 删除评论
func (h *CommunityHandler) DeleteComment(c *gin.Context) {
	actorID, admin := middleware.Actor(c)
	if err := h.service.RemoveComment(actorID, admin, c.Param("id"), c.Param("commentId")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

// ToggleLike 翻转帖子点赞，仅限登录会员
func (h *CommunityHandler) ToggleLike(c *gin.Context) {
	viewerID, _ := middleware.Actor(c)
	liked, found := h.service.TogglePostLike(viewerID, c.Param("id"))
	if !found {
		response.Fail(c, response.ErrContentNotFound, "post not found")
		return
	}
	response.Success(c, gin.H{"liked": liked})
}

func (h *CommunityHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNoPermission) {
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
}
