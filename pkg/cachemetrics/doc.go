// Package cachemetrics exports cache.Stats as Prometheus metrics.
//
// The collector reads Stats on every scrape, so it adds no work to the cache
// hot path:
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(cachemetrics.NewCollector("app", "sessions", sessions))
//
// Exported series (all labelled with cache="<name>"):
//
//	<namespace>_cache_hits_total       counter
//	<namespace>_cache_misses_total     counter
//	<namespace>_cache_evictions_total  counter
//	<namespace>_cache_entries          gauge
//	<namespace>_cache_capacity         gauge
package cachemetrics
