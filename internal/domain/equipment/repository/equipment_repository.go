package repository

import (
	"sort"
	"strings"

	"divelog_studio/internal/domain/equipment/model"
	"divelog_studio/internal/store"
)

// EquipmentRepository 器材仓库接口
type EquipmentRepository interface {
	List() []model.Item
	Insert(item model.Item)
	Replace(item model.Item) bool
	UpdateStatus(id, status, lastService string) bool
	Delete(id string) bool
}

type equipmentRepository struct {
	store *store.Store
}

// NewEquipmentRepository 创建器材仓库
func NewEquipmentRepository(s *store.Store) EquipmentRepository {
	return &equipmentRepository{store: s}
}

func (r *equipmentRepository) List() []model.Item {
	var out []model.Item
	r.store.View(func(st *store.State) {
		out = append([]model.Item(nil), st.Equipment...)
	})
	return out
}

func (r *equipmentRepository) Insert(item model.Item) {
	r.store.Update(func(st *store.State) {
		st.Equipment = append(st.Equipment, item)
		sortEquipment(st)
	})
}

func (r *equipmentRepository) Replace(item model.Item) bool {
	replaced := false
	r.store.Update(func(st *store.State) {
		for i := range st.Equipment {
			if st.Equipment[i].ID == item.ID {
				st.Equipment[i] = item
				replaced = true
				break
			}
		}
		if replaced {
			sortEquipment(st)
		}
	})
	return replaced
}

// UpdateStatus 只更新状态和保养日期，独立于整体编辑
func (r *equipmentRepository) UpdateStatus(id, status, lastService string) bool {
	updated := false
	r.store.Update(func(st *store.State) {
		for i := range st.Equipment {
			if st.Equipment[i].ID == id {
				st.Equipment[i].Status = status
				if lastService != "" {
					st.Equipment[i].LastService = lastService
				}
				updated = true
				return
			}
		}
	})
	return updated
}

func (r *equipmentRepository) Delete(id string) bool {
	deleted := false
	r.store.Update(func(st *store.State) {
		kept := st.Equipment[:0]
		for _, e := range st.Equipment {
			if e.ID == id {
				deleted = true
				continue
			}
			kept = append(kept, e)
		}
		st.Equipment = kept
	})
	return deleted
}

// 集合不变量：厂商、型号字母序
func sortEquipment(st *store.State) {
	sort.SliceStable(st.Equipment, func(i, j int) bool {
		a, b := st.Equipment[i], st.Equipment[j]
		am, bm := strings.ToLower(a.Manufacturer), strings.ToLower(b.Manufacturer)
		if am != bm {
			return am < bm
		}
		return strings.ToLower(a.Model) < strings.ToLower(b.Model)
	})
}
