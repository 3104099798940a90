package service

import (
	"errors"

	"divelog_studio/internal/domain/media/model"
	"divelog_studio/internal/domain/media/repository"

	"github.com/google/uuid"
)

var ErrNoPermission = errors.New("no permission")

// MediaService 媒体服务接口
type MediaService interface {
	List() []model.Item
	Add(actorID string, input model.Item) (*model.Item, error)
	Update(actorID string, admin bool, id string, input model.Item) error
	Remove(actorID string, admin bool, id string) error
	ToggleFavorite(id string) (favored, found bool)
	Favorites() []string
}

// mediaService 实现
type mediaService struct {
	repo repository.MediaRepository
}

// NewMediaService 创建媒体服务
func NewMediaService(repo repository.MediaRepository) MediaService {
	return &mediaService{repo: repo}
}

// List 媒体列表，标题字母序
func (s *mediaService) List() []model.Item {
	return s.repo.List()
}

// Add 新增媒体：载荷缺省ID时生成，缺省来源按URL处理
func (s *mediaService) Add(actorID string, input model.Item) (*model.Item, error) {
	if input.ID == "" {
		input.ID = uuid.New().String()
	}
	if input.OwnerID == "" {
		input.OwnerID = actorID
	}
	if input.Type == "" {
		input.Type = model.TypeImage
	}
	if input.Source == "" {
		input.Source = model.SourceURL
	}
	s.repo.Insert(input)
	return &input, nil
}

// Update 整体替换（ID除外）。未知ID静默忽略
func (s *mediaService) Update(actorID string, admin bool, id string, input model.Item) error {
	existing, ok := s.repo.GetByID(id)
	if !ok {
		return nil
	}
	if err := checkOwner(existing.OwnerID, actorID, admin); err != nil {
		return err
	}
	input.ID = id
	s.repo.Replace(input)
	return nil
}

// Remove 删除媒体并剪除收藏引用。未知ID静默忽略
func (s *mediaService) Remove(actorID string, admin bool, id string) error {
	existing, ok := s.repo.GetByID(id)
	if !ok {
		return nil
	}
	if err := checkOwner(existing.OwnerID, actorID, admin); err != nil {
		return err
	}
	s.repo.Delete(id)
	return nil
}

// ToggleFavorite 翻转收藏状态，返回翻转后是否被收藏
func (s *mediaService) ToggleFavorite(id string) (favored, found bool) {
	return s.repo.ToggleFavorite(id)
}

// Favorites 当前收藏的媒体ID
func (s *mediaService) Favorites() []string {
	return s.repo.Favorites()
}

// 无归属的种子媒体任何会员可改
func checkOwner(ownerID, actorID string, admin bool) error {
	if admin || ownerID == "" || ownerID == actorID {
		return nil
	}
	return ErrNoPermission
}
