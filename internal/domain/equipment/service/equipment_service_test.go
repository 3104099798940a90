package service

import (
	"testing"

	"divelog_studio/internal/domain/equipment/model"
	"divelog_studio/internal/domain/equipment/repository"
	"divelog_studio/internal/store"

	"github.com/stretchr/testify/assert"
)

func newTestService() EquipmentService {
	return NewEquipmentService(repository.NewEquipmentRepository(store.NewSeeded()))
}

func TestAddSortsByManufacturer(t *testing.T) {
	svc := newTestService()

	added := svc.Add(model.Item{
		Manufacturer: "Mares",
		Model:        "Epic ADJ",
		Status:       model.StatusReady,
	})
	assert.NotEmpty(t, added.ID)

	items := svc.List()
	assert.Len(t, items, 4)
	// Apeks, Mares, Scubapro, Suunto
	assert.Equal(t, "Mares", items[1].Manufacturer)
}

func TestUpdateStatus(t *testing.T) {
	svc := newTestService()

	t.Run("Last service only overwritten when provided", func(t *testing.T) {
		svc.UpdateStatus("equip-01", model.StatusMaintenance, "")
		for _, it := range svc.List() {
			if it.ID == "equip-01" {
				assert.Equal(t, model.StatusMaintenance, it.Status)
				assert.Equal(t, "2025-04-12", it.LastService)
			}
		}

		svc.UpdateStatus("equip-01", model.StatusReady, "2025-08-01")
		for _, it := range svc.List() {
			if it.ID == "equip-01" {
				assert.Equal(t, model.StatusReady, it.Status)
				assert.Equal(t, "2025-08-01", it.LastService)
			}
		}
	})

	t.Run("Unknown id is a no-op", func(t *testing.T) {
		before := svc.List()
		svc.UpdateStatus("equip-unknown", model.StatusDefect, "2025-08-01")
		assert.Equal(t, before, svc.List())
	})
}

func TestRemove(t *testing.T) {
	svc := newTestService()

	svc.Remove("equip-02")
	assert.Len(t, svc.List(), 2)

	svc.Remove("equip-02")
	assert.Len(t, svc.List(), 2)
}
