// Command lrubench runs a concurrent workload against an LRU cache and prints
// a report.
//
// It is configured through the environment (a .env file in the working
// directory is honored):
//
//	APP_ENV            development | staging | production (default development)
//	LOG_LEVEL          debug | info | warn | error
//	REPORT_FORMAT      table | yaml (default table)
//	LRU_CAPACITY       cache capacity (default 1024)
//	LRU_WORKERS        concurrent workers (default 8)
//	LRU_OPS            total operations (default 1000000)
//	LRU_KEY_SPACE      distinct keys (default 4096)
//	LRU_READ_RATIO     share of Get operations (default 0.8)
//	LRU_REMOVE_RATIO   share of Remove operations (default 0.01)
//	LRU_SEED           PCG seed, random when 0
//	METRICS_ADDR       serve /metrics and /health/* on this address
//	METRICS_LINGER     keep serving for this long after the run
//
// Logs go to stderr and the report to stdout. The exit code is 1 on failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/lrukit/internal/bench"
	"github.com/dmitrymomot/lrukit/pkg/cachemetrics"
	"github.com/dmitrymomot/lrukit/pkg/environment"
	"github.com/dmitrymomot/lrukit/pkg/httpserver"
	"github.com/dmitrymomot/lrukit/pkg/logger"
)

const serviceName = "lrubench"

var errIdle = errors.New("benchmark is not running")

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lrubench: %v\n", err)
		return 1
	}
	if err := run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg appConfig, stdout, stderr io.Writer) error {
	env := environment.Parse(cfg.Env)
	ctx = environment.WithContext(ctx, env)

	log := logger.New(
		logger.WithEnvironment(env, serviceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(stderr),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	)

	format, err := bench.ParseFormat(cfg.ReportFormat)
	if err != nil {
		log.ErrorContext(ctx, "invalid report format", logger.Error(err))
		return err
	}

	runner, err := bench.NewRunner(cfg.Bench, log)
	if err != nil {
		log.ErrorContext(ctx, "invalid bench config", logger.Error(err))
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(cachemetrics.NewCollector(serviceName, "bench", runner.Cache()))

	var running atomic.Bool
	g, gctx := errgroup.WithContext(ctx)
	srvCtx, stopServer := context.WithCancel(gctx)
	defer stopServer()

	serving := cfg.Metrics.Addr != ""
	if serving {
		srv := httpserver.NewFromConfig(cfg.Metrics, httpserver.WithLogger(log))
		handler := newRouter(reg, log, func(context.Context) error {
			if !running.Load() {
				return errIdle
			}
			return nil
		})
		g.Go(func() error {
			return srv.Run(srvCtx, handler)
		})
	}

	var res bench.Result
	g.Go(func() error {
		defer stopServer()

		running.Store(true)
		var err error
		res, err = runner.Run(gctx)
		running.Store(false)
		if err != nil {
			return err
		}

		if serving && cfg.Linger > 0 {
			log.InfoContext(gctx, "keeping metrics endpoint up", logger.Duration(cfg.Linger))
			t := time.NewTimer(cfg.Linger)
			defer t.Stop()
			select {
			case <-gctx.Done():
			case <-t.C:
			}
		}
		return nil
	})

	runErr := g.Wait()
	if runErr != nil {
		log.ErrorContext(ctx, "bench failed", logger.Error(runErr))
	}

	// An interrupted run still reports what it managed to do.
	if runErr == nil || errors.Is(runErr, bench.ErrInterrupted) {
		if err := bench.Write(stdout, format, res); err != nil {
			log.ErrorContext(ctx, "failed to write report", logger.Error(err))
			return errors.Join(runErr, err)
		}
	}
	return runErr
}

func newRouter(reg *prometheus.Registry, log *slog.Logger, ready func(context.Context) error) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, ready))
	return r
}
