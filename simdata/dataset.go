package simdata

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/olsbench/endian"
	"github.com/arloliu/olsbench/errs"
	"github.com/arloliu/olsbench/internal/hash"
)

// Default generation parameters. They reproduce the canonical demonstration
// dataset: ten million points on the line y = 5 + 2x with unit-variance noise.
const (
	DefaultSampleSize = 10_000_000
	DefaultIntercept  = 5.0
	DefaultSlope      = 2.0
	DefaultNoiseSigma = 1.0
	DefaultSeed       = uint64(1)
)

// Dataset holds a generated regression sample.
//
// Predictor and Response have equal length N. The design matrix and the
// dataset fingerprint are derived lazily and cached; a Dataset is safe for
// concurrent readers once generated.
type Dataset struct {
	// Predictor is the length-N predictor vector, drawn from N(0, 1).
	Predictor []float64
	// Response is the length-N response vector,
	// intercept + slope*predictor + noise.
	Response []float64

	cfg Config

	designOnce sync.Once
	design     *mat.Dense

	fpOnce      sync.Once
	fingerprint uint64
}

// Generate creates a new simulated dataset.
//
// Without options it generates the default ten-million-point sample. The
// generator is a seeded PCG source, so the same options always produce the
// same dataset.
//
// Returns:
//   - *Dataset: Generated dataset
//   - error: Configuration validation error if any
func Generate(opts ...Option) (*Dataset, error) {
	cfg := defaultConfig()
	if err := applyOptions(&cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9E3779B97F4A7C15))

	predictor := make([]float64, cfg.N)
	response := make([]float64, cfg.N)
	for i := range predictor {
		x := rng.NormFloat64()
		predictor[i] = x
		response[i] = cfg.Intercept + cfg.Slope*x + cfg.NoiseSigma*rng.NormFloat64()
	}

	return &Dataset{
		Predictor: predictor,
		Response:  response,
		cfg:       cfg,
	}, nil
}

// FromVectors builds a dataset from existing predictor and response vectors.
//
// This is useful for analyzing an externally supplied sample with the same
// strategies and tooling used for simulated data. The slices are retained,
// not copied.
func FromVectors(predictor, response []float64) (*Dataset, error) {
	if len(predictor) == 0 || len(response) == 0 {
		return nil, errs.ErrEmptyData
	}
	if len(predictor) != len(response) {
		return nil, fmt.Errorf("%w: predictor has %d values, response has %d",
			errs.ErrDimensionMismatch, len(predictor), len(response))
	}
	if len(predictor) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d",
			errs.ErrInvalidSampleCount, len(predictor))
	}

	return &Dataset{
		Predictor: predictor,
		Response:  response,
		cfg: Config{
			N:    len(predictor),
			Seed: 0,
		},
	}, nil
}

// Len returns the sample size N.
func (d *Dataset) Len() int {
	return len(d.Predictor)
}

// Config returns the configuration the dataset was generated with.
func (d *Dataset) Config() Config {
	return d.cfg
}

// Design returns the N×2 design matrix [1 | predictor].
//
// The matrix is built on first call and cached; every strategy solves
// against the same backing array.
func (d *Dataset) Design() *mat.Dense {
	d.designOnce.Do(func() {
		n := len(d.Predictor)
		data := make([]float64, 2*n)
		for i, x := range d.Predictor {
			data[2*i] = 1.0
			data[2*i+1] = x
		}
		d.design = mat.NewDense(n, 2, data)
	})

	return d.design
}

// ResponseVec returns the response as a gonum vector sharing the dataset's
// backing array.
func (d *Dataset) ResponseVec() *mat.VecDense {
	return mat.NewVecDense(len(d.Response), d.Response)
}

// Fingerprint returns the xxHash64 of the dataset's vectors.
//
// The hash covers the little-endian IEEE-754 bits of the predictor followed
// by the response, so two datasets with identical values always share a
// fingerprint regardless of how they were produced.
func (d *Dataset) Fingerprint() uint64 {
	d.fpOnce.Do(func() {
		engine := endian.GetLittleEndianEngine()
		digest := hash.New()

		buf := make([]byte, 0, 8*1024)
		flush := func() {
			_, _ = digest.Write(buf)
			buf = buf[:0]
		}

		for _, vec := range [][]float64{d.Predictor, d.Response} {
			for _, v := range vec {
				buf = engine.AppendUint64(buf, math.Float64bits(v))
				if len(buf)+8 > cap(buf) {
					flush()
				}
			}
			flush()
		}

		d.fingerprint = digest.Sum64()
	})

	return d.fingerprint
}
