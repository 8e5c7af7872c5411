package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lrukit/internal/bench"
	"github.com/dmitrymomot/lrukit/pkg/cache"
	"github.com/dmitrymomot/lrukit/pkg/cachemetrics"
	"github.com/dmitrymomot/lrukit/pkg/config"
	"github.com/dmitrymomot/lrukit/pkg/logger"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig(config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)

		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, "table", cfg.ReportFormat)
		assert.Equal(t, 1024, cfg.Bench.Capacity)
		assert.Equal(t, 8, cfg.Bench.Workers)
		assert.Equal(t, 1_000_000, cfg.Bench.Ops)
		assert.Equal(t, 4096, cfg.Bench.KeySpace)
		assert.InDelta(t, 0.8, cfg.Bench.ReadRatio, 1e-9)
		assert.InDelta(t, 0.01, cfg.Bench.RemoveRatio, 1e-9)
		assert.Empty(t, cfg.Metrics.Addr)
		assert.Equal(t, 5*time.Second, cfg.Metrics.ShutdownTimeout)
		assert.Zero(t, cfg.Linger)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := loadConfig(config.WithEnvironment(map[string]string{
			"APP_ENV":        "production",
			"REPORT_FORMAT":  "yaml",
			"LRU_CAPACITY":   "32",
			"LRU_WORKERS":    "2",
			"LRU_SEED":       "99",
			"METRICS_ADDR":   "127.0.0.1:0",
			"METRICS_LINGER": "250ms",
		}))
		require.NoError(t, err)

		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "yaml", cfg.ReportFormat)
		assert.Equal(t, 32, cfg.Bench.Capacity)
		assert.Equal(t, 2, cfg.Bench.Workers)
		assert.Equal(t, uint64(99), cfg.Bench.Seed)
		assert.Equal(t, "127.0.0.1:0", cfg.Metrics.Addr)
		assert.Equal(t, 250*time.Millisecond, cfg.Linger)
	})

	t.Run("malformed value", func(t *testing.T) {
		_, err := loadConfig(config.WithEnvironment(map[string]string{"LRU_WORKERS": "many"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func smallConfig() appConfig {
	return appConfig{
		Env:          "production",
		ReportFormat: "yaml",
		Bench: bench.Config{
			Capacity:    8,
			Workers:     2,
			Ops:         2_000,
			KeySpace:    32,
			ReadRatio:   0.7,
			RemoveRatio: 0.05,
			Seed:        3,
		},
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("writes report", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		require.NoError(t, run(context.Background(), smallConfig(), &stdout, &stderr))

		assert.Contains(t, stdout.String(), "run_id:")
		assert.Contains(t, stdout.String(), "total: 2000")
		assert.Contains(t, stderr.String(), `"msg":"bench run finished"`)
		assert.Contains(t, stderr.String(), `"env":"production"`)
	})

	t.Run("with metrics endpoint", func(t *testing.T) {
		t.Parallel()
		cfg := smallConfig()
		cfg.ReportFormat = "table"
		cfg.Metrics.Addr = "127.0.0.1:0"

		var stdout bytes.Buffer
		require.NoError(t, run(context.Background(), cfg, &stdout, io.Discard))
		assert.Contains(t, stdout.String(), "2,000")
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()
		cfg := smallConfig()
		cfg.ReportFormat = "xml"

		var stdout bytes.Buffer
		err := run(context.Background(), cfg, &stdout, io.Discard)
		require.ErrorIs(t, err, bench.ErrUnknownFormat)
		assert.Zero(t, stdout.Len())
	})

	t.Run("invalid capacity", func(t *testing.T) {
		t.Parallel()
		cfg := smallConfig()
		cfg.Bench.Capacity = -1

		err := run(context.Background(), cfg, io.Discard, io.Discard)
		require.ErrorIs(t, err, cache.ErrInvalidArgument)
	})

	t.Run("interrupted run still reports", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var stdout bytes.Buffer
		err := run(ctx, smallConfig(), &stdout, io.Discard)
		require.ErrorIs(t, err, bench.ErrInterrupted)
		assert.Contains(t, stdout.String(), "total: 0")
	})
}

func TestRouter(t *testing.T) {
	t.Parallel()

	c := cache.NewLRUCache[uint64, uint64](4)
	c.Put(1, 1)
	reg := prometheus.NewRegistry()
	reg.MustRegister(cachemetrics.NewCollector(serviceName, "bench", c))

	var ready error = errIdle
	h := newRouter(reg, logger.Discard(), func(context.Context) error { return ready })

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	rec := get("/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lrubench_cache_entries{cache="bench"} 1`)
	assert.Contains(t, rec.Body.String(), `lrubench_cache_capacity{cache="bench"} 4`)

	rec = get("/health/live")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	rec = get("/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	ready = nil
	rec = get("/health/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())

	assert.Equal(t, http.StatusNotFound, get("/nope").Code)
}
