package repository

import (
	"divelog_studio/internal/domain/community/model"
	"divelog_studio/internal/store"
)

// CommunityRepository 社区帖子仓库接口
type CommunityRepository interface {
	List(viewerID string) []model.Post
	GetByID(id string) (model.Post, bool)
	InsertFront(post model.Post)
	Delete(id string) bool
	// Mutate 在一次状态迁移内修改单个帖子，fn 返回 false 表示放弃修改
	Mutate(id string, fn func(p *model.Post) bool) bool
}

type communityRepository struct {
	store *store.Store
}

// NewCommunityRepository 创建社区仓库
func NewCommunityRepository(s *store.Store) CommunityRepository {
	return &communityRepository{store: s}
}

// List 帖子列表，深拷贝并按观察者标记 likedByMe
func (r *communityRepository) List(viewerID string) []model.Post {
	var out []model.Post
	r.store.View(func(st *store.State) {
		out = make([]model.Post, 0, len(st.Posts))
		for _, p := range st.Posts {
			out = append(out, p.ForViewer(viewerID))
		}
	})
	return out
}

func (r *communityRepository) GetByID(id string) (model.Post, bool) {
	var (
		out   model.Post
		found bool
	)
	r.store.View(func(st *store.State) {
		for _, p := range st.Posts {
			if p.ID == id {
				out = p.Clone()
				found = true
				return
			}
		}
	})
	return out, found
}

// InsertFront 新帖子置顶
func (r *communityRepository) InsertFront(post model.Post) {
	r.store.Update(func(st *store.State) {
		st.Posts = append([]model.Post{post}, st.Posts...)
	})
}

func (r *communityRepository) Delete(id string) bool {
	deleted := false
	r.store.Update(func(st *store.State) {
		kept := st.Posts[:0]
		for _, p := range st.Posts {
			if p.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, p)
		}
		st.Posts = kept
	})
	return deleted
}

func (r *communityRepository) Mutate(id string, fn func(p *model.Post) bool) bool {
	applied := false
	r.store.Update(func(st *store.State) {
		for i := range st.Posts {
			if st.Posts[i].ID == id {
				applied = fn(&st.Posts[i])
				return
			}
		}
	})
	return applied
}
