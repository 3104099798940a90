package service

import (
	"testing"

	"divelog_studio/internal/domain/site/model"
	"divelog_studio/internal/domain/site/repository"
	"divelog_studio/internal/store"

	"github.com/stretchr/testify/assert"
)

func newTestService() SiteService {
	return NewSiteService(repository.NewSiteRepository(store.NewSeeded()))
}

func TestListIsAlphabetical(t *testing.T) {
	svc := newTestService()

	_, err := svc.Add("member-02", model.DiveSite{Name: "Attersee Steilwand", Country: "Österreich"})
	assert.NoError(t, err)

	sites := svc.List()
	for i := 1; i < len(sites); i++ {
		assert.LessOrEqual(t, sites[i-1].Name, sites[i].Name)
	}
	assert.Equal(t, "Attersee Steilwand", sites[0].Name)
}

func TestToggleFavorite(t *testing.T) {
	svc := newTestService()

	// site-02 ist im Seed bereits favorisiert
	favored, found := svc.ToggleFavorite("site-02")
	assert.True(t, found)
	assert.False(t, favored)
	assert.NotContains(t, svc.Favorites(), "site-02")

	favored, found = svc.ToggleFavorite("site-02")
	assert.True(t, found)
	assert.True(t, favored)
	assert.Contains(t, svc.Favorites(), "site-02")

	_, found = svc.ToggleFavorite("site-unknown")
	assert.False(t, found)
}

func TestRemovePrunesFavorites(t *testing.T) {
	svc := newTestService()

	assert.Contains(t, svc.Favorites(), "site-02")
	// site-02 gehört member-02
	assert.NoError(t, svc.Remove("member-02", false, "site-02"))
	assert.NotContains(t, svc.Favorites(), "site-02")

	for _, s := range svc.List() {
		assert.NotEqual(t, "site-02", s.ID)
	}
}

func TestRemoveChecksOwnership(t *testing.T) {
	svc := newTestService()

	err := svc.Remove("member-04", false, "site-02")
	assert.ErrorIs(t, err, ErrNoPermission)
	assert.Len(t, svc.List(), 3)
}
