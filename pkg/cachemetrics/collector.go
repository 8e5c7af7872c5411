package cachemetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/lrukit/pkg/cache"
)

// StatsSource is implemented by *cache.LRUCache.
type StatsSource interface {
	Stats() cache.Stats
}

// Collector is a prometheus.Collector for a single cache.
type Collector struct {
	src StatsSource

	hits      *prometheus.Desc
	misses    *prometheus.Desc
	evictions *prometheus.Desc
	entries   *prometheus.Desc
	capacity  *prometheus.Desc
}

// NewCollector returns a collector reporting src under namespace, labelled with
// the cache name.
func NewCollector(namespace, name string, src StatsSource) *Collector {
	labels := prometheus.Labels{"cache": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "cache", metric),
			help, nil, labels,
		)
	}

	return &Collector{
		src:       src,
		hits:      desc("hits_total", "Number of lookups that found the key."),
		misses:    desc("misses_total", "Number of lookups that did not find the key."),
		evictions: desc("evictions_total", "Number of entries evicted to make room for new keys."),
		entries:   desc("entries", "Number of entries currently stored."),
		capacity:  desc("capacity", "Maximum number of entries."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
	ch <- c.entries
	ch <- c.capacity
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()

	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Len))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
}
