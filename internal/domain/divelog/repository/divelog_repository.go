package repository

import (
	"sort"

	"divelog_studio/internal/domain/divelog/model"
	"divelog_studio/internal/store"
)

// DiveLogRepository 潜水日志仓库接口
type DiveLogRepository interface {
	List() []model.DiveLog
	GetByID(id string) (model.DiveLog, bool)
	Insert(log model.DiveLog)
	Replace(log model.DiveLog) bool
	Delete(id string) bool
}

// diveLogRepository 内存实现
type diveLogRepository struct {
	store *store.Store
}

// NewDiveLogRepository 创建日志仓库
func NewDiveLogRepository(s *store.Store) DiveLogRepository {
	return &diveLogRepository{store: s}
}

// List 返回按日期降序排列的日志拷贝
func (r *diveLogRepository) List() []model.DiveLog {
	var out []model.DiveLog
	r.store.View(func(st *store.State) {
		out = append([]model.DiveLog(nil), st.DiveLogs...)
	})
	return out
}

// GetByID 根据ID查找
func (r *diveLogRepository) GetByID(id string) (model.DiveLog, bool) {
	var (
		out   model.DiveLog
		found bool
	)
	r.store.View(func(st *store.State) {
		for _, l := range st.DiveLogs {
			if l.ID == id {
				out = l
				found = true
				return
			}
		}
	})
	return out, found
}

// Insert 插入并重排
func (r *diveLogRepository) Insert(log model.DiveLog) {
	r.store.Update(func(st *store.State) {
		st.DiveLogs = append(st.DiveLogs, log)
		sortDiveLogs(st)
	})
}

// Replace 整体替换匹配ID的条目并重排，未找到返回 false（状态不变）
func (r *diveLogRepository) Replace(log model.DiveLog) bool {
	replaced := false
	r.store.Update(func(st *store.State) {
		for i := range st.DiveLogs {
			if st.DiveLogs[i].ID == log.ID {
				st.DiveLogs[i] = log
				replaced = true
				break
			}
		}
		if replaced {
			sortDiveLogs(st)
		}
	})
	return replaced
}

// Delete 删除条目，未找到返回 false
func (r *diveLogRepository) Delete(id string) bool {
	deleted := false
	r.store.Update(func(st *store.State) {
		kept := st.DiveLogs[:0]
		for _, l := range st.DiveLogs {
			if l.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, l)
		}
		st.DiveLogs = kept
	})
	return deleted
}

// 集合不变量：日期降序（YYYY-MM-DD 字符串比较即时间序）
func sortDiveLogs(st *store.State) {
	sort.SliceStable(st.DiveLogs, func(i, j int) bool {
		return st.DiveLogs[i].Date > st.DiveLogs[j].Date
	})
}
