package handler

import (
	"errors"
	"net/http"

	"divelog_studio/internal/domain/site/model"
	"divelog_studio/internal/domain/site/service"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/pkg/response"

	"github.com/gin-gonic/gin"
)

// SiteHandler 潜点处理器
type SiteHandler struct {
	service service.SiteService
}

// NewSiteHandler 创建处理器
func NewSiteHandler(s service.SiteService) *SiteHandler {
	return &SiteHandler{service: s}
}

// SiteInput 潜点载荷
type SiteInput struct {
	ID          string            `json:"id"`
	Name        string            `json:"name" binding:"required"`
	Country     string            `json:"country"`
	Difficulty  string            `json:"difficulty"`
	Highlight   string            `json:"highlight"`
	OwnerID     string            `json:"ownerId"`
	Coordinates model.Coordinates `json:"coordinates"`
}

func (in SiteInput) toModel() model.DiveSite {
	return model.DiveSite{
		ID:          in.ID,
		Name:        in.Name,
		Country:     in.Country,
		Difficulty:  in.Difficulty,
		Highlight:   in.Highlight,
		OwnerID:     in.OwnerID,
		Coordinates: in.Coordinates,
	}
}

// GetSites 潜点列表
func (h *SiteHandler) GetSites(c *gin.Context) {
	response.Success(c, h.service.List())
}

// AddSite 新增潜点
func (h *SiteHandler) AddSite(c *gin.Context) {
	var input SiteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	actorID, _ := middleware.Actor(c)
	site, err := h.service.Add(actorID, input.toModel())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, site)
}

// UpdateSite 整体替换潜点
func (h *SiteHandler) UpdateSite(c *gin.Context) {
	var input SiteInput
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

// DeleteSite 删除潜点
func (h *SiteHandler) DeleteSite(c *gin.Context) {
	actorID, admin := middleware.Actor(c)
	if err := h.service.Remove(actorID, admin, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

// ToggleFavorite 翻转潜点收藏
func (h *SiteHandler) ToggleFavorite(c *gin.Context) {
	favored, found := h.service.ToggleFavorite(c.Param("id"))
	if !found {
		response.Fail(c, response.ErrContentNotFound, "site not found")
		return
	}
	response.Success(c, gin.H{"favored": favored})
}

// GetFavorites 收藏的潜点ID列表
func (h *SiteHandler) GetFavorites(c *gin.Context) {
	response.Success(c, h.service.Favorites())
}

func (h *SiteHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNoPermission) {
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
}
