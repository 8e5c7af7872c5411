package bench

import (
	"errors"
	"fmt"
)

// Config describes a workload. Tags are relative to the caller's env prefix.
type Config struct {
	Capacity    int     `env:"CAPACITY" envDefault:"1024" yaml:"capacity"`
	Workers     int     `env:"WORKERS" envDefault:"8" yaml:"workers"`
	Ops         int     `env:"OPS" envDefault:"1000000" yaml:"ops"`
	KeySpace    int     `env:"KEY_SPACE" envDefault:"4096" yaml:"key_space"`
	ReadRatio   float64 `env:"READ_RATIO" envDefault:"0.8" yaml:"read_ratio"`
	RemoveRatio float64 `env:"REMOVE_RATIO" envDefault:"0.01" yaml:"remove_ratio"`
	Seed        uint64  `env:"SEED" yaml:"seed"`
}

// Validate checks the workload parameters. Capacity is validated by the cache.
func (c Config) Validate() error {
	var errs []error
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if c.Ops <= 0 {
		errs = append(errs, fmt.Errorf("ops must be positive, got %d", c.Ops))
	}
	if c.KeySpace <= 0 {
		errs = append(errs, fmt.Errorf("key space must be positive, got %d", c.KeySpace))
	}
	if c.ReadRatio < 0 || c.RemoveRatio < 0 || c.ReadRatio+c.RemoveRatio > 1 {
		errs = append(errs, fmt.Errorf("read ratio %.2f and remove ratio %.2f must be non-negative and sum to at most 1",
			c.ReadRatio, c.RemoveRatio))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}
