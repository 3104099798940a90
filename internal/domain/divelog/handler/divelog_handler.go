package handler

import (
	"errors"
	"net/http"

	"divelog_studio/internal/domain/divelog/model"
	"divelog_studio/internal/domain/divelog/service"
	"divelog_studio/internal/pkg/middleware"
	"divelog_studio/pkg/response"

	"github.com/gin-gonic/gin"
)

// DiveLogHandler 潜水日志处理器
type DiveLogHandler struct {
	service service.DiveLogService
}

// NewDiveLogHandler 创建处理器
func NewDiveLogHandler(s service.DiveLogService) *DiveLogHandler {
	return &DiveLogHandler{service: s}
}

// DiveLogInput 日志载荷（新增与整体替换共用）
type DiveLogInput struct {
	ID         string  `json:"id"`
	LogNumber  int     `json:"logNumber"`
	Title      string  `json:"title" binding:"required"`
	Location   string  `json:"location"`
	Depth      float64 `json:"depth" binding:"gte=0"`
	Duration   int     `json:"duration" binding:"gte=0"`
	Date       string  `json:"date" binding:"required,datetime=2006-01-02"`
	Buddy      string  `json:"buddy"`
	Difficulty string  `json:"difficulty" binding:"omitempty,oneof=Beginner Fortgeschritten Pro"`
	SiteID     string  `json:"siteId"`
	DiverID    string  `json:"diverId"`
}

func (in DiveLogInput) toModel() model.DiveLog {
	return model.DiveLog{
		ID:         in.ID,
		LogNumber:  in.LogNumber,
		Title:      in.Title,
		Location:   in.Location,
		Depth:      in.Depth,
		Duration:   in.Duration,
		Date:       in.Date,
		Buddy:      in.Buddy,
		Difficulty: in.Difficulty,
		SiteID:     in.SiteID,
		DiverID:    in.DiverID,
	}
}

// GetDiveLogs 日志列表
func (h *DiveLogHandler) GetDiveLogs(c *gin.Context) {
	response.Success(c, h.service.List())
}

// AddDiveLog 新增日志
func (h *DiveLogHandler) AddDiveLog(c *gin.Context) {
	var input DiveLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	actorID, _ := middleware.Actor(c)
	log, err := h.service.Add(actorID, input.toModel())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, log)
}

// UpdateDiveLog 整体替换日志
func (h *DiveLogHandler) UpdateDiveLog(c *gin.Context) {
	var input DiveLogInput
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

// DeleteDiveLog 删除日志
func (h *DiveLogHandler) DeleteDiveLog(c *gin.Context) {
	actorID, admin := middleware.Actor(c)
	if err := h.service.Remove(actorID, admin, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, true)
}

func (h *DiveLogHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNoPermission) {
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, err.Error())
}
