package store

import (
	"sync"

	communitymodel "divelog_studio/internal/domain/community/model"
	divelogmodel "divelog_studio/internal/domain/divelog/model"
	equipmentmodel "divelog_studio/internal/domain/equipment/model"
	forummodel "divelog_studio/internal/domain/forum/model"
	mediamodel "divelog_studio/internal/domain/media/model"
	membermodel "divelog_studio/internal/domain/member/model"
	notificationmodel "divelog_studio/internal/domain/notification/model"
	sitemodel "divelog_studio/internal/domain/site/model"
)

// State 全部领域状态
// 所有集合只存在于内存中，进程重启即丢弃（演示范围，没有持久化）
type State struct {
	Members       []membermodel.Profile
	DiveLogs      []divelogmodel.DiveLog
	Equipment     []equipmentmodel.Item
	Sites         []sitemodel.DiveSite
	Media         []mediamodel.Item
	Posts         []communitymodel.Post
	Categories    []forummodel.Category
	Threads       []forummodel.Thread
	Notifications []notificationmodel.Item

	// 收藏集合：弱引用，被引用实体删除时同一次变更内剪除
	FavoriteMedia map[string]struct{}
	FavoriteSites map[string]struct{}
}

// Store 状态容器，所有仓库共享同一个实例
// 读写锁保证每次 Update 是一个原子的状态迁移，消费者要么看到迁移前、要么看到迁移后
type Store struct {
	mu    sync.RWMutex
	state State
}

// New 创建空状态容器
func New() *Store {
	return &Store{
		state: State{
			FavoriteMedia: make(map[string]struct{}),
			FavoriteSites: make(map[string]struct{}),
		},
	}
}

// NewSeeded 创建并载入演示数据
func NewSeeded() *Store {
	s := New()
	s.Update(Seed)
	return s
}

// Update 在写锁下原子地应用一次状态变更
func (s *Store) Update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// View 在读锁下访问状态，fn 不得修改状态或在返回后持有内部引用
func (s *Store) View(fn func(*State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}
