package service

import (
	"divelog_studio/internal/domain/equipment/model"
	"divelog_studio/internal/domain/equipment/repository"

	"github.com/google/uuid"
)

// EquipmentService 器材服务接口
// 器材是全局共享池，任何会员都可以增删改
type EquipmentService interface {
	List() []model.Item
	Add(input model.Item) *model.Item
	Update(id string, input model.Item)
	UpdateStatus(id, status, lastService string)
	Remove(id string)
}

type equipmentService struct {
	repo repository.EquipmentRepository
}

// NewEquipmentService 创建器材服务
func NewEquipmentService(repo repository.EquipmentRepository) EquipmentService {
	return &equipmentService{repo: repo}
}

func (s *equipmentService) List() []model.Item {
	return s.repo.List()
}

func (s *equipmentService) Add(input model.Item) *model.Item {
	if input.ID == "" {
		input.ID = uuid.New().String()
	}
	s.repo.Insert(input)
	return &input
}

// Update 整体替换（ID除外），未知ID静默忽略
func (s *equipmentService) Update(id string, input model.Item) {
	input.ID = id
	s.repo.Replace(input)
}

// UpdateStatus 独立更新状态和保养日期，未知ID静默忽略
func (s *equipmentService) UpdateStatus(id, status, lastService string) {
	s.repo.UpdateStatus(id, status, lastService)
}

// Remove 未知ID静默忽略
func (s *equipmentService) Remove(id string) {
	s.repo.Delete(id)
}
