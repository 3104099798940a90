package repository

import (
	"divelog_studio/internal/domain/notification/model"
	"divelog_studio/internal/store"
)

// NotificationRepository 通知仓库接口
type NotificationRepository interface {
	List() []model.Item
	InsertFront(item model.Item)
	SetRead(id string, read bool) bool
	Delete(id string) bool
}

type notificationRepository struct {
	store *store.Store
}

// NewNotificationRepository 创建通知仓库
func NewNotificationRepository(s *store.Store) NotificationRepository {
	return &notificationRepository{store: s}
}

func (r *notificationRepository) List() []model.Item {
	var out []model.Item
	r.store.View(func(st *store.State) {
		out = append([]model.Item(nil), st.Notifications...)
	})
	return out
}

// InsertFront 新通知置顶
func (r *notificationRepository) InsertFront(item model.Item) {
	r.store.Update(func(st *store.State) {
		st.Notifications = append([]model.Item{item}, st.Notifications...)
	})
}

func (r *notificationRepository) SetRead(id string, read bool) bool {
	updated := false
	r.store.Update(func(st *store.State) {
		for i := range st.Notifications {
			if st.Notifications[i].ID == id {
				st.Notifications[i].Read = read
				updated = true
				return
			}
		}
	})
	return updated
}

// Delete 永久删除，没有撤销
func (r *notificationRepository) Delete(id string) bool {
	deleted := false
	r.store.Update(func(st *store.State) {
		kept := st.Notifications[:0]
		for _, n := range st.Notifications {
			if n.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, n)
		}
		st.Notifications = kept
	})
	return deleted
}
