package handler

import (
	"errors"
	"net/http"

	"divelog_studio/internal/domain/media/model"
	"divelog_studio/internal/domain/media/service"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/pkg/response"

	"github.com/gin-gonic/gin"
)

// MediaHandler 媒体处理器
type MediaHandler struct {
	service service.MediaService
}

// NewMediaHandler 创建处理器
func NewMediaHandler(s service.MediaService) *MediaHandler {
	return &MediaHandler{service: s}
}

// MediaInput 媒体载荷
type MediaInput struct {
	ID       string `json:"id"`
	Title    string `json:"title" binding:"required"`
	Author   string `json:"author"`
	OwnerID  string `json:"ownerId"`
	URL      string `json:"url" binding:"required"`
	Type     string `json:"type" binding:"omitempty,oneof=image video"`
	Source   string `json:"source" binding:"omitempty,oneof=url upload"`
	FileName string `json:"fileName"`
}

func (in MediaInput) toModel() model.Item {
	return model.Item{
		ID:       in.ID,
		Title:    in.Title,
		Author:   in.Author,
		OwnerID:  in.OwnerID,
		URL:      in.URL,
		Type:     in.Type,
		Source:   in.Source,
		FileName: in.FileName,
	}
}

// GetMedia 媒体列表
func (h *MediaHandler) GetMedia(c *gin.Context) {
	response.Success(c, h.service.List())
}

// AddMedia 新增媒体
func (h *MediaHandler) AddMedia(c *gin.Context) {
	var input MediaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	actorID, _ := middleware.Actor(c)
	item, err := h.service.Add(actorID, input.toModel())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, item)
}

// UpdateMedia 整体替换媒体
func (h *MediaHandler) UpdateMedia(c *gin.Context) {
	var input MediaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	actorID, admin := middleware.Actor(c)
	if err := h.service.Update(actorID, admin, c.Param("id"), input.toModel()); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

// DeleteMedia 删除媒体
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	actorID, admin := middleware.Actor(c)
	if err := h.service.Remove(actorID, admin, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

// ToggleFavorite 翻转媒体收藏
func (h *MediaHandler) ToggleFavorite(c *gin.Context) {
	favored, found := h.service.ToggleFavorite(c.Param("id"))
	if !found {
		response.Fail(c, response.ErrContentNotFound, "media not found")
		return
	}
	response.Success(c, gin.H{"favored": favored})
}

// GetFavorites 收藏的媒体ID列表
func (h *MediaHandler) GetFavorites(c *gin.Context) {
	response.Success(c, h.service.Favorites())
}

func (h *MediaHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNoPermission) {
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
}
