package service

import (
	"testing"

	"divelog_studio/internal/domain/media/model"
	"divelog_studio/internal/domain/media/repository"
	"divelog_studio/internal/store"

	"github.com/stretchr/testify/assert"
)

func newTestService() MediaService {
	return NewMediaService(repository.NewMediaRepository(store.NewSeeded()))
}

func TestListIsSortedByTitle(t *testing.T) {
	svc := newTestService()

	m, err := svc.Add("member-02", model.Item{Title: "Anemone bei Nacht", URL: "https://cdn.divelog.studio/media/anemone.jpg"})
	assert.NoError(t, err)
	assert.Equal(t, model.TypeImage, m.Type)
	assert.Equal(t, model.SourceURL, m.Source)

	items := svc.List()
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Title, items[i].Title)
	}
	assert.Equal(t, "Anemone bei Nacht", items[0].Title)
}

func TestToggleFavorite(t *testing.T) {
	svc := newTestService()

	// media-02 ist im Seed bereits favorisiert
	favored, found := svc.ToggleFavorite("media-02")
	assert.True(t, found)
	assert.False(t, favored)
	assert.NotContains(t, svc.Favorites(), "media-02")

	favored, found = svc.ToggleFavorite("media-02")
	assert.True(t, found)
	assert.True(t, favored)
	assert.Contains(t, svc.Favorites(), "media-02")

	_, found = svc.ToggleFavorite("media-unknown")
	assert.False(t, found)
}

func TestRemovePrunesFavorites(t *testing.T) {
	svc := newTestService()

	assert.Contains(t, svc.Favorites(), "media-02")
	// media-02 gehört member-02
	assert.NoError(t, svc.Remove("member-02", false, "media-02"))
	assert.NotContains(t, svc.Favorites(), "media-02")

	for _, item := range svc.List() {
		assert.NotEqual(t, "media-02", item.ID)
	}
}

func TestRemoveChecksOwnership(t *testing.T) {
	svc := newTestService()

	err := svc.Remove("member-04", false, "media-02")
	assert.ErrorIs(t, err, ErrNoPermission)
	assert.Len(t, svc.List(), 3)
}
