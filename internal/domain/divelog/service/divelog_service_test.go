package service

import (
	"testing"

	"divelog_studio/internal/domain/divelog/model"
	"divelog_studio/internal/domain/divelog/repository"
	"divelog_studio/internal/store"

	"github.com/stretchr/testify/assert"
)

func newTestService() DiveLogService {
	return NewDiveLogService(repository.NewDiveLogRepository(store.NewSeeded()))
}

func TestAddKeepsDateOrder(t *testing.T) {
	svc := newTestService()

	added, err := svc.Add("member-02", model.DiveLog{
		Title: "Eistauchen am Grünsee",
		Date:  "2030-01-01",
		Depth: 12,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "member-02", added.DiverID)

	logs := svc.List()
	assert.Len(t, logs, 4)
	assert.Equal(t, "2030-01-01", logs[0].Date)
	for i := 1; i < len(logs); i++ {
		assert.GreaterOrEqual(t, logs[i-1].Date, logs[i].Date)
	}
}

func TestAddBackdatedLandsInPlace(t *testing.T) {
	svc := newTestService()

	_, err := svc.Add("member-02", model.DiveLog{
		Title: "Altbestand",
		Date:  "2020-03-15",
	})
	assert.NoError(t, err)

	logs := svc.List()
	assert.Equal(t, "2020-03-15", logs[len(logs)-1].Date)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	svc := newTestService()
	before := svc.List()

	err := svc.Update("member-02", false, "log-does-not-exist", model.DiveLog{
		Title: "Geist",
		Date:  "2031-01-01",
	})
	assert.NoError(t, err)
	assert.Equal(t, before, svc.List())
}

func TestUpdateChecksOwnership(t *testing.T) {
	svc := newTestService()

	// log-01 gehört member-02
	err := svc.Update("member-03", false, "log-01", model.DiveLog{
		Title: "Fremder Eintrag",
		Date:  "2025-07-19",
	})
	assert.ErrorIs(t, err, ErrNoPermission)

	err = svc.Update("member-01", true, "log-01", model.DiveLog{
		Title: "Vom Admin korrigiert",
		Date:  "2025-07-19",
	})
	assert.NoError(t, err)

	logs := svc.List()
	found := false
	for _, l := range logs {
		if l.ID == "log-01" {
			found = true
			assert.Equal(t, "Vom Admin korrigiert", l.Title)
		}
	}
	assert.True(t, found)
}

func TestRemove(t *testing.T) {
	svc := newTestService()

	assert.NoError(t, svc.Remove("member-02", false, "log-01"))
	assert.Len(t, svc.List(), 2)

	// 未知ID静默忽略
	assert.NoError(t, svc.Remove("member-02", false, "log-01"))
	assert.Len(t, svc.List(), 2)
}
