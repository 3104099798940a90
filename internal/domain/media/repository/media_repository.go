package repository

import (
	"sort"
	"strings"

	"divelog_studio/internal/domain/media/model"
	"divelog_studio/internal/store"
)

// MediaRepository 媒体仓库接口
type MediaRepository interface {
	List() []model.Item
	GetByID(id string) (model.Item, bool)
	Insert(item model.Item)
	Replace(item model.Item) bool
	Delete(id string) bool
	ToggleFavorite(id string) (favored, found bool)
	Favorites() []string
}

type mediaRepository struct {
	store *store.Store
}

// NewMediaRepository 创建媒体仓库
func NewMediaRepository(s *store.Store) MediaRepository {
	return &mediaRepository{store: s}
}

func (r *mediaRepository) List() []model.Item {
	var out []model.Item
	r.store.View(func(st *store.State) {
		out = append([]model.Item(nil), st.Media...)
	})
	return out
}

func (r *mediaRepository) GetByID(id string) (model.Item, bool) {
	var (
		out   model.Item
		found bool
	)
	r.store.View(func(st *store.State) {
		for _, m := range st.Media {
			if m.ID == id {
				out = m
				found = true
				return
			}
		}
	})
	return out, found
}

func (r *mediaRepository) Insert(item model.Item) {
	r.store.Update(func(st *store.State) {
		st.Media = append(st.Media, item)
		sortMedia(st)
	})
}

func (r *mediaRepository) Replace(item model.Item) bool {
	replaced := false
	r.store.Update(func(st *store.State) {
		for i := range st.Media {
			if st.Media[i].ID == item.ID {
				st.Media[i] = item
				replaced = true
				break
			}
		}
		if replaced {
			sortMedia(st)
		}
	})
	return replaced
}

// Delete 删除媒体，同一次状态迁移内剪除收藏集合里的引用
func (r *mediaRepository) Delete(id string) bool {
	deleted := false
	r.store.Update(func(st *store.State) {
		kept := st.Media[:0]
		for _, m := range st.Media {
			if m.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, m)
		}
		st.Media = kept
		if deleted {
			delete(st.FavoriteMedia, id)
		}
	})
	return deleted
}

// ToggleFavorite 翻转收藏状态；未知ID不改状态
func (r *mediaRepository) ToggleFavorite(id string) (favored, found bool) {
	r.store.Update(func(st *store.State) {
		for _, m := range st.Media {
			if m.ID == id {
				found = true
				break
			}
		}
		if !found {
			return
		}
		if _, ok := st.FavoriteMedia[id]; ok {
			delete(st.FavoriteMedia, id)
		} else {
			st.FavoriteMedia[id] = struct{}{}
			favored = true
		}
	})
	return favored, found
}

// Favorites 收藏的媒体ID，排序后返回保证稳定输出
func (r *mediaRepository) Favorites() []string {
	var out []string
	r.store.View(func(st *store.State) {
		out = make([]string, 0, len(st.FavoriteMedia))
		for id := range st.FavoriteMedia {
			out = append(out, id)
		}
	})
	sort.Strings(out)
	return out
}

// 集合不变量：标题字母序
func sortMedia(st *store.State) {
	sort.SliceStable(st.Media, func(i, j int) bool {
		return strings.ToLower(st.Media[i].Title) < strings.ToLower(st.Media[j].Title)
	})
}
