package repository

import (
	"sort"
	"strings"

	"divelog_studio/internal/domain/site/model"
	"divelog_studio/internal/store"
)

// SiteRepository 潜点仓库接口
type SiteRepository interface {
	List() []model.DiveSite
	GetByID(id string) (model.DiveSite, bool)
	Insert(site model.DiveSite)
	Replace(site model.DiveSite) bool
	Delete(id string) bool
	ToggleFavorite(id string) (favored, found bool)
	Favorites() []string
}

type siteRepository struct {
	store *store.Store
}

// NewSiteRepository 创建潜点仓库
func NewSiteRepository(s *store.Store) SiteRepository {
	return &siteRepository{store: s}
}

func (r *siteRepository) List() []model.DiveSite {
	var out []model.DiveSite
	r.store.View(func(st *store.State) {
		out = append([]model.DiveSite(nil), st.Sites...)
	})
	return out
}

func (r *siteRepository) GetByID(id string) (model.DiveSite, bool) {
	var (
		out   model.DiveSite
		found bool
	)
	r.store.View(func(st *store.State) {
		for _, s := range st.Sites {
			if s.ID == id {
				out = s
				found = true
				return
			}
		}
	})
	return out, found
}

func (r *siteRepository) Insert(site model.DiveSite) {
	r.store.Update(func(st *store.State) {
		st.Sites = append(st.Sites, site)
		sortSites(st)
	})
}

func (r *siteRepository) Replace(site model.DiveSite) bool {
	replaced := false
	r.store.Update(func(st *store.State) {
		for i := range st.Sites {
			if st.Sites[i].ID == site.ID {
				st.Sites[i] = site
				replaced = true
				break
			}
		}
		if replaced {
			sortSites(st)
		}
	})
	return replaced
}

// Delete 删除潜点，同一次状态迁移内剪除收藏集合里的引用
func (r *siteRepository) Delete(id string) bool {
	deleted := false
	r.store.Update(func(st *store.State) {
		kept := st.Sites[:0]
		for _, s := range st.Sites {
			if s.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, s)
		}
		st.Sites = kept
		if deleted {
			delete(st.FavoriteSites, id)
		}
	})
	return deleted
}

// ToggleFavorite 翻转收藏状态；未知ID不改状态
func (r *siteRepository) ToggleFavorite(id string) (favored, found bool) {
	r.store.Update(func(st *store.State) {
		for _, s := range st.Sites {
			if s.ID == id {
				found = true
				break
			}
		}
		if !found {
			return
		}
		if _, ok := st.FavoriteSites[id]; ok {
			delete(st.FavoriteSites, id)
		} else {
			st.FavoriteSites[id] = struct{}{}
			favored = true
		}
	})
	return favored, found
}

// Favorites 收藏的潜点ID，排序后返回保证稳定输出
func (r *siteRepository) Favorites() []string {
	var out []string
	r.store.View(func(st *store.State) {
		out = make([]string, 0, len(st.FavoriteSites))
		for id := range st.FavoriteSites {
			out = append(out, id)
		}
	})
	sort.Strings(out)
	return out
}

// 集合不变量：名称字母序
func sortSites(st *store.State) {
	sort.SliceStable(st.Sites, func(i, j int) bool {
		return strings.ToLower(st.Sites[i].Name) < strings.ToLower(st.Sites[j].Name)
	})
}
