package service

import (
	"time"

	"divelog_studio/internal/domain/notification/model"
	"divelog_studio/internal/domain/notification/repository"

	"github.com/google/uuid"
)

// AddInput 新通知载荷
type AddInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// NotificationService 通知服务接口
type NotificationService interface {
	List() []model.Item
	Add(input AddInput) model.Item
	Mark(id string, read bool) bool
	Dismiss(id string) bool
}

// notificationService 实现
type notificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService 创建通知服务
func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List() []model.Item {
	return s.repo.List()
}

// Add 新通知置顶，未读状态
func (s *notificationService) Add(input AddInput) model.Item {
	item := model.Item{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Timestamp:   time.Now().UTC(),
		Read:        false,
	}
	s.repo.InsertFront(item)
	return item
}

// Mark 设置已读未读
func (s *notificationService) Mark(id string, read bool) bool {
	return s.repo.SetRead(id, read)
}

// Dismiss 永久移除
func (s *notificationService) Dismiss(id string) bool {
	return s.repo.Delete(id)
}
