package handler

import (
	"net/http"

	"divelog_studio/internal/domain/equipment/model"
	"divelog_studio/internal/domain/equipment/service"
	"divelog_studio/pkg/response"

	"github.com/gin-gonic/gin"
)

// EquipmentHandler 器材处理器
type EquipmentHandler struct {
	service service.EquipmentService
}

// NewEquipmentHandler 创建处理器
func NewEquipmentHandler(s service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{service: s}
}

// EquipmentInput 器材载荷
type EquipmentInput struct {
	ID           string `json:"id"`
	Manufacturer string `json:"manufacturer" binding:"required"`
	Model        string `json:"model" binding:"required"`
	SerialNumber string `json:"serialNumber"`
	Status       string `json:"status" binding:"required,oneof=bereit wartung defekt"`
	LastService  string `json:"lastService" binding:"omitempty,datetime=2006-01-02"`
}

// StatusInput 独立的状态更新载荷
type StatusInput struct {
	Status      string `json:"status" binding:"required,oneof=bereit wartung defekt"`
	LastService string `json:"lastService" binding:"omitempty,datetime=2006-01-02"`
}

func (in EquipmentInput) toModel() model.Item {
	return model.Item{
		ID:           in.ID,
		Manufacturer: in.Manufacturer,
		Model:        in.Model,
		SerialNumber: in.SerialNumber,
		Status:       in.Status,
		LastService:  in.LastService,
	}
}

// GetEquipment 器材列表
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	response.Success(c, h.service.List())
}

// AddEquipment 新增器材
func (h *EquipmentHandler) AddEquipment(c *gin.Context) {
	var input EquipmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	response.Success(c, h.service.Add(input.toModel()))
}

// UpdateEquipment 整体替换器材
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	var input EquipmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	h.service.Update(c.Param("id"), input.toModel())
	response.Success(c, true)
}

// UpdateStatus 更新状态和保养日期
func (h *EquipmentHandler) UpdateStatus(c *gin.Context) {
	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	h.service.UpdateStatus(c.Param("id"), input.Status, input.LastService)
	response.Success(c, true)
}

// DeleteEquipment 删除器材
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	h.service.Remove(c.Param("id"))
	response.Success(c, true)
}
