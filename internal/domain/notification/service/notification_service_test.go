package service

import (
	"testing"

	"divelog_studio/internal/domain/notification/repository"
	"divelog_studio/internal/store"

	"github.com/stretchr/testify/assert"
)

func newTestService() NotificationService {
	return NewNotificationService(repository.NewNotificationRepository(store.NewSeeded()))
}

func TestAddPrepends(t *testing.T) {
	svc := newTestService()

	item := svc.Add(AddInput{Title: "Neue Antwort", Description: "Lena hat geantwortet."})
	assert.NotEmpty(t, item.ID)
	assert.False(t, item.Read)

	list := svc.List()
	assert.Equal(t, item.ID, list[0].ID)
	assert.Len(t, list, 3)
}

func TestMarkAndDismiss(t *testing.T) {
	svc := newTestService()

	assert.True(t, svc.Mark("notif-01", true))
	for _, n := range svc.List() {
		if n.ID == "notif-01" {
			assert.True(t, n.Read)
		}
	}

	assert.True(t, svc.Mark("notif-01", false))
	assert.False(t, svc.Mark("notif-unknown", true))

	assert.True(t, svc.Dismiss("notif-01"))
	assert.Len(t, svc.List(), 1)
	// gelöscht bleibt gelöscht
	assert.False(t, svc.Dismiss("notif-01"))
}
