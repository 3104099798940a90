package service

import (
	"errors"

	"divelog_studio/internal/domain/divelog/model"
	"divelog_studio/internal/domain/divelog/repository"

	"github.com/google/uuid"
)

var ErrNoPermission = errors.New("no permission")

// DiveLogService 潜水日志服务接口
type DiveLogService interface {
	List() []model.DiveLog
	Add(actorID string, input model.DiveLog) (*model.DiveLog, error)
	Update(actorID string, admin bool, id string, input model.DiveLog) error
	Remove(actorID string, admin bool, id string) error
}

// diveLogService 实现
type diveLogService struct {
	repo repository.DiveLogRepository
}

// NewDiveLogService 创建日志服务
func NewDiveLogService(repo repository.DiveLogRepository) DiveLogService {
	return &diveLogService{repo: repo}
}

// List 日志列表，日期降序
func (s *diveLogService) List() []model.DiveLog {
	return s.repo.List()
}

// Add 新增日志：载荷缺省ID时生成，diverId 缺省时归属创建者
func (s *diveLogService) Add(actorID string, input model.DiveLog) (*model.DiveLog, error) {
	if input.ID == "" {
		input.ID = uuid.New().String()
	}
	if input.DiverID == "" {
		input.DiverID = actorID
	}
	s.repo.Insert(input)
	return &input, nil
}

// Update 整体替换（ID除外）。未知ID静默忽略，状态不变
func (s *diveLogService) Update(actorID string, admin bool, id string, input model.DiveLog) error {
	existing, ok := s.repo.GetByID(id)
	if !ok {
		return nil
	}
	if err := checkOwner(existing.DiverID, actorID, admin); err != nil {
		return err
	}
	input.ID = id
	s.repo.Replace(input)
	return nil
}

// Remove 删除日志。未知ID静默忽略
func (s *diveLogService) Remove(actorID string, admin bool, id string) error {
	existing, ok := s.repo.GetByID(id)
	if !ok {
		return nil
	}
	if err := checkOwner(existing.DiverID, actorID, admin); err != nil {
		return err
	}
	s.repo.Delete(id)
	return nil
}

// 日志只允许归属会员本人或管理员修改，无归属的条目任何会员可改
func checkOwner(ownerID, actorID string, admin bool) error {
	if admin || ownerID == "" || ownerID == actorID {
		return nil
	}
	return ErrNoPermission
}
