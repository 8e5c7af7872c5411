// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing):
//
//	type Config struct {
//		Capacity int    `env:"CAPACITY" envDefault:"1024"`
//		Addr     string `env:"METRICS_ADDR"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("LRU_")); err != nil {
//		log.Fatal(err)
//	}
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer and can be checked with errors.Is.
package config
