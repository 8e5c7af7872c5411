package main

import (
	"time"

	"github.com/dmitrymomot/lrukit/internal/bench"
	"github.com/dmitrymomot/lrukit/pkg/config"
	"github.com/dmitrymomot/lrukit/pkg/httpserver"
)

type appConfig struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL"`
	ReportFormat string `env:"REPORT_FORMAT" envDefault:"table"`

	Bench bench.Config `envPrefix:"LRU_"`

	// Metrics.Addr empty disables the metrics endpoint.
	Metrics httpserver.Config `envPrefix:"METRICS_"`
	// Linger keeps the metrics endpoint up after the run so a scraper can
	// pick up the final values.
	Linger time.Duration `env:"METRICS_LINGER"`
}

func loadConfig(opts ...config.Option) (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg, opts...); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}
