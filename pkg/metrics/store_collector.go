package metrics

import (
	"divelog_studio/internal/store"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreCollector 在抓取时报告各领域集合的大小
type StoreCollector struct {
	store          *store.Store
	collectionSize *prometheus.Desc
	favoritesSize  *prometheus.Desc
	unreadCount    *prometheus.Desc
}

// NewStoreCollector 创建状态容器指标收集器
func NewStoreCollector(s *store.Store) *StoreCollector {
	return &StoreCollector{
		store: s,
		collectionSize: prometheus.NewDesc(
			"store_collection_size",
			"Number of entries per in-memory collection",
			[]string{"collection"}, nil,
		),
		favoritesSize: prometheus.NewDesc(
			"store_favorites_size",
			"Number of favored ids per favorite set",
			[]string{"kind"}, nil,
		),
		unreadCount: prometheus.NewDesc(
			"store_notifications_unread",
			"Number of unread notifications",
			nil, nil,
		),
	}
}

func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.collectionSize
	ch <- c.favoritesSize
	ch <- c.unreadCount
}

func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	c.store.View(func(st *store.State) {
		sizes := map[string]int{
			"members":       len(st.Members),
			"divelogs":      len(st.DiveLogs),
			"equipment":     len(st.Equipment),
			"sites":         len(st.Sites),
			"media":         len(st.Media),
			"posts":         len(st.Posts),
			"threads":       len(st.Threads),
			"notifications": len(st.Notifications),
		}
		for name, size := range sizes {
			ch <- prometheus.MustNewConstMetric(
				c.collectionSize, prometheus.GaugeValue, float64(size), name)
		}

		ch <- prometheus.MustNewConstMetric(
			c.favoritesSize, prometheus.GaugeValue, float64(len(st.FavoriteMedia)), "media")
		ch <- prometheus.MustNewConstMetric(
			c.favoritesSize, prometheus.GaugeValue, float64(len(st.FavoriteSites)), "sites")

		unread := 0
		for _, n := range st.Notifications {
			if !n.Read {
				unread++
			}
		}
		ch <- prometheus.MustNewConstMetric(
			c.unreadCount, prometheus.GaugeValue, float64(unread))
	})
}
