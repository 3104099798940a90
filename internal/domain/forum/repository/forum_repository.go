package repository

import (
	"sort"

	"divelog_studio/internal/domain/forum/model"
	"divelog_studio/internal/store"
)

// ForumRepository 论坛仓库接口
type ForumRepository interface {
	Categories() []model.Category
	Threads(viewerID string) []model.Thread
	GetThread(id string) (model.Thread, bool)
	InsertThread(t model.Thread)
	DeleteThread(id string) bool
	// MutateThread 在一次状态迁移内修改单个主题并重排集合，fn 返回 false 表示放弃修改
	MutateThread(id string, fn func(t *model.Thread) bool) bool
}

type forumRepository struct {
	store *store.Store
}

// NewForumRepository 创建论坛仓库
func NewForumRepository(s *store.Store) ForumRepository {
	return &forumRepository{store: s}
}

func (r *forumRepository) Categories() []model.Category {
	var out []model.Category
	r.store.View(func(st *store.State) {
		out = append([]model.Category(nil), st.Categories...)
	})
	return out
}

// Threads 主题列表，深拷贝并按观察者标记 likedByMe
func (r *forumRepository) Threads(viewerID string) []model.Thread {
	var out []model.Thread
	r.store.View(func(st *store.State) {
		out = make([]model.Thread, 0, len(st.Threads))
		for _, t := range st.Threads {
			out = append(out, t.ForViewer(viewerID))
		}
	})
	return out
}

func (r *forumRepository) GetThread(id string) (model.Thread, bool) {
	var (
		out   model.Thread
		found bool
	)
	r.store.View(func(st *store.State) {
		for _, t := range st.Threads {
			if t.ID == id {
				out = t.Clone()
				found = true
				return
			}
		}
	})
	return out, found
}

func (r *forumRepository) InsertThread(t model.Thread) {
	r.store.Update(func(st *store.State) {
		st.Threads = append([]model.Thread{t}, st.Threads...)
		sortThreads(st)
	})
}

func (r *forumRepository) DeleteThread(id string) bool {
	deleted := false
	r.store.Update(func(st *store.State) {
		kept := st.Threads[:0]
		for _, t := range st.Threads {
			if t.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, t)
		}
		st.Threads = kept
	})
	return deleted
}

func (r *forumRepository) MutateThread(id string, fn func(t *model.Thread) bool) bool {
	applied := false
	r.store.Update(func(st *store.State) {
		for i := range st.Threads {
			if st.Threads[i].ID == id {
				applied = fn(&st.Threads[i])
				break
			}
		}
		if applied {
			sortThreads(st)
		}
	})
	return applied
}

// 集合不变量：最近活跃时间降序
func sortThreads(st *store.State) {
	sort.SliceStable(st.Threads, func(i, j int) bool {
		return st.Threads[i].LastActivity.After(st.Threads[j].LastActivity)
	})
}
