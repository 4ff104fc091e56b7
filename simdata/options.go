package simdata

import (
	"fmt"

	"github.com/arloliu/olsbench/errs"
	"github.com/arloliu/olsbench/internal/options"
)

// Config holds dataset generation parameters.
type Config struct {
	// N is the sample size.
	N int
	// Intercept is the true intercept of the generating line.
	Intercept float64
	// Slope is the true slope of the generating line.
	Slope float64
	// NoiseSigma is the standard deviation of the additive normal noise.
	NoiseSigma float64
	// Seed seeds the PCG source.
	Seed uint64
}

func defaultConfig() Config {
	return Config{
		N:          DefaultSampleSize,
		Intercept:  DefaultIntercept,
		Slope:      DefaultSlope,
		NoiseSigma: DefaultNoiseSigma,
		Seed:       DefaultSeed,
	}
}

func (c Config) validate() error {
	if c.N < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", errs.ErrInvalidSampleCount, c.N)
	}
	if c.NoiseSigma < 0 {
		return fmt.Errorf("%w: %g", errs.ErrInvalidNoiseSigma, c.NoiseSigma)
	}

	return nil
}

// Option is a functional option for dataset generation.
type Option = options.Option[*Config]

func applyOptions(cfg *Config, opts ...Option) error {
	return options.Apply(cfg, opts...)
}

// WithSampleSize sets the sample size N.
func WithSampleSize(n int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.N = n
	})
}

// WithCoefficients sets the true intercept and slope of the generating line.
func WithCoefficients(intercept, slope float64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Intercept = intercept
		cfg.Slope = slope
	})
}

// WithNoiseSigma sets the standard deviation of the additive noise.
func WithNoiseSigma(sigma float64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.NoiseSigma = sigma
	})
}

// WithSeed seeds the random source, making generation reproducible.
func WithSeed(seed uint64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Seed = seed
	})
}
