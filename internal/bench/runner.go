package bench

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/lrukit/pkg/cache"
	"github.com/dmitrymomot/lrukit/pkg/logger"
)

// checkEvery is how many operations a worker runs between context checks.
const checkEvery = 1024

// Cache is the cache type the workload runs against.
type Cache = cache.LRUCache[uint64, uint64]

// Runner executes one workload against its own cache.
type Runner struct {
	cfg   Config
	cache *Cache
	log   *slog.Logger
}

// NewRunner validates cfg and creates the cache. A non-positive capacity
// surfaces the cache's *cache.ArgumentError.
func NewRunner(cfg Config, log *slog.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c, err := cache.New[uint64, uint64](cfg.Capacity)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Runner{cfg: cfg, cache: c, log: log.With(logger.Component("bench"))}, nil
}

// Cache returns the cache under test, e.g. to register metrics for it.
func (r *Runner) Cache() *Cache {
	return r.cache
}

// Config returns the effective configuration, including the chosen seed.
func (r *Runner) Config() Config {
	return r.cfg
}

type counters struct {
	gets, hits, misses, puts, removes uint64
}

func (c *counters) add(o counters) {
	c.gets += o.gets
	c.hits += o.hits
	c.misses += o.misses
	c.puts += o.puts
	c.removes += o.removes
}

func (c counters) total() uint64 {
	return c.gets + c.puts + c.removes
}

// Run executes the workload. If ctx ends first, Run returns the partial result
// together with an error wrapping ErrInterrupted.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	res := Result{
		RunID:   uuid.NewString(),
		Config:  r.cfg,
		Started: time.Now(),
	}
	log := r.log.With(logger.RunID(res.RunID))
	log.InfoContext(ctx, "bench run started",
		logger.Capacity(r.cfg.Capacity),
		logger.Workers(r.cfg.Workers),
		logger.Ops(uint64(r.cfg.Ops)),
	)

	perWorker := make([]counters, r.cfg.Workers)
	g, gctx := errgroup.WithContext(ctx)
	share, rem := r.cfg.Ops/r.cfg.Workers, r.cfg.Ops%r.cfg.Workers
	for w := range r.cfg.Workers {
		n := share
		if w < rem {
			n++
		}
		rng := rand.New(rand.NewPCG(r.cfg.Seed, uint64(w)))
		g.Go(func() error {
			return r.work(gctx, rng, n, &perWorker[w])
		})
	}
	err := g.Wait()

	var sum counters
	for _, c := range perWorker {
		sum.add(c)
	}
	res.Elapsed = time.Since(res.Started)
	res.Ops = sum.total()
	res.Gets, res.Hits, res.Misses = sum.gets, sum.hits, sum.misses
	res.Puts, res.Removes = sum.puts, sum.removes
	res.Cache = r.cache.Stats()

	if err != nil {
		log.WarnContext(ctx, "bench run interrupted", logger.Error(err), logger.Ops(res.Ops))
		return res, errors.Join(ErrInterrupted, err)
	}
	log.InfoContext(ctx, "bench run finished",
		logger.Ops(res.Ops),
		logger.Duration(res.Elapsed),
		slog.Float64("hit_ratio", res.HitRatio()),
	)
	return res, nil
}

func (r *Runner) work(ctx context.Context, rng *rand.Rand, n int, c *counters) error {
	keySpace := uint64(r.cfg.KeySpace)
	removeCut := r.cfg.ReadRatio + r.cfg.RemoveRatio

	for i := range n {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		key := rng.Uint64N(keySpace)
		switch p := rng.Float64(); {
		case p < r.cfg.ReadRatio:
			c.gets++
			if _, ok := r.cache.Get(key); ok {
				c.hits++
			} else {
				c.misses++
			}
		case p < removeCut:
			c.removes++
			r.cache.Remove(key)
		default:
			c.puts++
			r.cache.Put(key, uint64(i))
		}
	}
	return nil
}
