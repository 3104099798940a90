package service

import (
	"errors"

	"divelog_studio/internal/domain/site/model"
	"divelog_studio/internal/domain/site/repository"

	"github.com/google/uuid"
)

var ErrNoPermission = errors.New("no permission")

// SiteService 潜点服务接口
type SiteService interface {
	List() []model.DiveSite
	Add(actorID string, input model.DiveSite) (*model.DiveSite, error)
	Update(actorID string, admin bool, id string, input model.DiveSite) error
	Remove(actorID string, admin bool, id string) error
	ToggleFavorite(id string) (favored, found bool)
	Favorites() []string
}

// siteService 实现
type siteService struct {
	repo repository.SiteRepository
}

// NewSiteService 创建潜点服务
func NewSiteService(repo repository.SiteRepository) SiteService {
	return &siteService{repo: repo}
}

// List 潜点列表，名称字母序
func (s *siteService) List() []model.DiveSite {
	return s.repo.List()
}

// Add 新增潜点：载荷缺省ID时生成，归属创建者
func (s *siteService) Add(actorID string, input model.DiveSite) (*model.DiveSite, error) {
	if input.ID == "" {
		input.ID = uuid.New().String()
	}
	if input.OwnerID == "" {
		input.OwnerID = actorID
	}
	s.repo.Insert(input)
	return &input, nil
}

// Update 整体替换（ID除外）。未知ID静默忽略
func (s *siteService) Update(actorID string, admin bool, id string, input model.DiveSite) error {
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

// Remove 删除潜点并剪除收藏引用。未知ID静默忽略
func (s *siteService) Remove(actorID string, admin bool, id string) error {
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
func (s *siteService) ToggleFavorite(id string) (favored, found bool) {
	return s.repo.ToggleFavorite(id)
}

// Favorites 当前收藏的潜点ID
func (s *siteService) Favorites() []string {
	return s.repo.Favorites()
}

// 无归属的种子潜点任何会员可改
func checkOwner(ownerID, actorID string, admin bool) error {
	if admin || ownerID == "" || ownerID == actorID {
		return nil
	}
	return ErrNoPermission
}
