// Package bench implements the microbenchmark harness: timed repetitions of
// a short operation yielding a timing distribution, plus summary statistics
// and relative ranking across operations.
//
// Unlike testing.B, which searches for an iteration count that stabilizes
// the mean, this harness runs a fixed number of repetitions and keeps every
// individual sample. The full distribution is what the report plots, and
// the raw samples are what the artifact package archives.
//
// # Basic Usage
//
//	m, err := bench.Measure("crossprod", func() error {
//	    _, err := s.Solve(x, y)
//	    return err
//	}, bench.WithRepetitions(100))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary := m.Stats()
//	fmt.Printf("median=%v mean=%v\n", summary.Median, summary.Mean)
package bench

import (
	"fmt"
	"time"

	"github.com/arloliu/olsbench/errs"
	"github.com/arloliu/olsbench/internal/options"
)

// Default harness parameters.
const (
	DefaultRepetitions = 100
	DefaultWarmup      = 3
)

// Config holds measurement parameters.
type Config struct {
	// Repetitions is the number of timed runs per operation.
	Repetitions int
	// Warmup is the number of untimed runs before measurement starts,
	// letting caches and the branch predictor settle.
	Warmup int
}

func defaultConfig() Config {
	return Config{
		Repetitions: DefaultRepetitions,
		Warmup:      DefaultWarmup,
	}
}

func (c Config) validate() error {
	if c.Repetitions < 1 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidRepetitions, c.Repetitions)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidWarmup, c.Warmup)
	}

	return nil
}

// Option is a functional option for measurement configuration.
type Option = options.Option[*Config]

// WithRepetitions sets the number of timed repetitions.
func WithRepetitions(n int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Repetitions = n
	})
}

// WithWarmup sets the number of untimed warmup runs.
func WithWarmup(n int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Warmup = n
	})
}

// Measurement holds the raw timing samples of one measured operation.
type Measurement struct {
	// Name identifies the measured operation.
	Name string
	// Samples are the individual run durations, in execution order.
	Samples []time.Duration
}

// Measure runs fn under the harness: warmup runs first, then the configured
// number of timed repetitions. A non-nil error from fn aborts measurement
// immediately and is returned wrapped with the repetition context.
func Measure(name string, fn func() error, opts ...Option) (Measurement, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Measurement{}, err
	}
	if err := cfg.validate(); err != nil {
		return Measurement{}, err
	}

	for i := 0; i < cfg.Warmup; i++ {
		if err := fn(); err != nil {
			return Measurement{}, fmt.Errorf("warmup run %d of %q failed: %w", i+1, name, err)
		}
	}

	samples := make([]time.Duration, cfg.Repetitions)
	for i := 0; i < cfg.Repetitions; i++ {
		start := time.Now()
		if err := fn(); err != nil {
			return Measurement{}, fmt.Errorf("timed run %d of %q failed: %w", i+1, name, err)
		}
		samples[i] = time.Since(start)
	}

	return Measurement{
		Name:    name,
		Samples: samples,
	}, nil
}
