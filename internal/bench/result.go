package bench

import (
	"time"

	"github.com/dmitrymomot/lrukit/pkg/cache"
)

// Result summarizes a run. Op counts are what the workers issued; Cache holds
// the cache's own counters at the end of the run.
type Result struct {
	RunID   string
	Config  Config
	Started time.Time
	Elapsed time.Duration

	Ops     uint64
	Gets    uint64
	Hits    uint64
	Misses  uint64
	Puts    uint64
	Removes uint64

	Cache cache.Stats
}

// Throughput returns operations per second.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ops) / r.Elapsed.Seconds()
}

// HitRatio returns the share of Gets that found their key.
func (r Result) HitRatio() float64 {
	if r.Gets == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Gets)
}
