// Package olsbench benchmarks successive micro-optimizations of ordinary
// least squares coefficient computation for a simple linear model.
//
// Six strategies compute the same intercept and slope by increasingly
// specialized routes: a full QR fit, the normal equations via explicit
// inverse, the normal equations via linear solve, a fused cross-product
// accumulation, a sparse-matrix cross product, and plain scalar
// accumulators. A seventh measurement invokes a precompiled closure that
// captured the accumulator sums up front. Every strategy is verified
// against the QR reference before timing starts, then each is measured
// under a fixed-repetition harness and ranked by median.
//
// # Basic Usage
//
//	result, err := olsbench.Run(
//	    olsbench.WithDatasetOptions(simdata.WithSampleSize(1_000_000)),
//	    olsbench.WithBenchOptions(bench.WithRepetitions(50)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result.WriteText(os.Stdout)
//	result.WriteReport("report.html")
//
// Raw timing samples can be archived in a compact binary artifact and
// decoded later:
//
//	data, _ := result.EncodeArtifact()
//	run, _ := artifact.Decode(data)
//
// # Package Structure
//
// This package provides a convenient top-level wrapper around the simdata,
// solver, bench, artifact, and report packages. For fine-grained control,
// use those packages directly.
package olsbench

import (
	"io"

	"github.com/arloliu/olsbench/artifact"
	"github.com/arloliu/olsbench/bench"
	"github.com/arloliu/olsbench/internal/options"
	"github.com/arloliu/olsbench/report"
	"github.com/arloliu/olsbench/simdata"
	"github.com/arloliu/olsbench/solver"
)

// PrecompiledName is the measurement key of the precompiled-closure stage.
const PrecompiledName = "precompiled"

// Config holds the parameters of a full benchmark run.
type Config struct {
	// DatasetOptions configure dataset generation.
	DatasetOptions []simdata.Option
	// BenchOptions configure the measurement harness.
	BenchOptions []bench.Option
	// Solvers are the strategies to verify and time. The first entry is
	// the agreement reference. Defaults to solver.All().
	Solvers []solver.Solver
	// Tolerance is the absolute coefficient agreement tolerance.
	Tolerance float64
	// Precompiled adds a measurement of the precompiled accumulator
	// closure alongside the solver strategies.
	Precompiled bool
}

func defaultConfig() Config {
	return Config{
		Solvers:     solver.All(),
		Tolerance:   solver.DefaultTolerance,
		Precompiled: true,
	}
}

// Option is a functional option for Run.
type Option = options.Option[*Config]

// WithDatasetOptions forwards options to dataset generation.
func WithDatasetOptions(opts ...simdata.Option) Option {
	return options.NoError(func(cfg *Config) {
		cfg.DatasetOptions = append(cfg.DatasetOptions, opts...)
	})
}

// WithBenchOptions forwards options to the measurement harness.
func WithBenchOptions(opts ...bench.Option) Option {
	return options.NoError(func(cfg *Config) {
		cfg.BenchOptions = append(cfg.BenchOptions, opts...)
	})
}

// WithSolvers replaces the default strategy set. The first solver is the
// agreement reference.
func WithSolvers(solvers ...solver.Solver) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Solvers = solvers
	})
}

// WithTolerance sets the absolute coefficient agreement tolerance.
func WithTolerance(tol float64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Tolerance = tol
	})
}

// WithPrecompiled toggles the precompiled-closure measurement.
func WithPrecompiled(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Precompiled = enabled
	})
}

// Result holds everything one benchmark run produced.
type Result struct {
	// Config is the dataset configuration the run used.
	Config simdata.Config
	// Fingerprint is the xxHash64 of the dataset.
	Fingerprint uint64
	// Strategies are the verified fit results, in strategy order.
	Strategies []report.StrategyResult
	// Measurements are the raw timing samples per strategy.
	Measurements []bench.Measurement
	// Rankings are the timing summaries, fastest first.
	Rankings []bench.Ranked
}

// Run generates a dataset, verifies that every strategy reproduces the
// reference coefficients, measures each strategy, and ranks the timings.
func Run(opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	ds, err := simdata.Generate(cfg.DatasetOptions...)
	if err != nil {
		return nil, err
	}

	return runDataset(ds, cfg)
}

// RunDataset runs the benchmark against an existing dataset, skipping
// generation. Dataset options passed here are ignored.
func RunDataset(ds *simdata.Dataset, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return runDataset(ds, cfg)
}

func runDataset(ds *simdata.Dataset, cfg Config) (*Result, error) {
	x := ds.Design()
	y := ds.Response

	result := &Result{
		Config:      ds.Config(),
		Fingerprint: ds.Fingerprint(),
	}

	// Fit once per strategy and verify agreement before spending any time
	// on measurement.
	candidates := make(map[string]solver.Coefficients, len(cfg.Solvers))
	var ref solver.Coefficients
	for i, s := range cfg.Solvers {
		coef, err := s.Solve(x, y)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			ref = coef
		} else {
			candidates[s.Name()] = coef
		}

		r2, rmse := solver.Evaluate(coef, ds.Predictor, ds.Response)
		result.Strategies = append(result.Strategies, report.StrategyResult{
			Name:         s.Name(),
			Description:  s.Description(),
			Coefficients: coef,
			RSquared:     r2,
			RMSE:         rmse,
		})
	}

	var precompiled func() (solver.Coefficients, error)
	if cfg.Precompiled {
		fn, err := solver.Precompile(x, y)
		if err != nil {
			return nil, err
		}
		precompiled = fn

		coef, err := fn()
		if err != nil {
			return nil, err
		}
		candidates[PrecompiledName] = coef

		r2, rmse := solver.Evaluate(coef, ds.Predictor, ds.Response)
		result.Strategies = append(result.Strategies, report.StrategyResult{
			Name:         PrecompiledName,
			Description:  "closure over precomputed accumulator sums",
			Coefficients: coef,
			RSquared:     r2,
			RMSE:         rmse,
		})
	}

	if err := solver.VerifyAgreement(ref, candidates, cfg.Tolerance); err != nil {
		return nil, err
	}

	for _, s := range cfg.Solvers {
		m, err := bench.Measure(s.Name(), func() error {
			_, solveErr := s.Solve(x, y)
			return solveErr
		}, cfg.BenchOptions...)
		if err != nil {
			return nil, err
		}
		result.Measurements = append(result.Measurements, m)
	}

	if precompiled != nil {
		m, err := bench.Measure(PrecompiledName, func() error {
			_, solveErr := precompiled()
			return solveErr
		}, cfg.BenchOptions...)
		if err != nil {
			return nil, err
		}
		result.Measurements = append(result.Measurements, m)
	}

	rankings, err := bench.Rank(result.Measurements)
	if err != nil {
		return nil, err
	}
	result.Rankings = rankings

	return result, nil
}

// Report assembles the result into a renderable report. An empty title
// uses the default heading.
func (r *Result) Report(title string) *report.Report {
	return &report.Report{
		Title:       title,
		Config:      r.Config,
		Fingerprint: r.Fingerprint,
		Strategies:  r.Strategies,
		Rankings:    r.Rankings,
	}
}

// WriteText prints the result tables to w.
func (r *Result) WriteText(w io.Writer) error {
	return r.Report("").WriteText(w)
}

// WriteReport renders the result as an HTML report at path.
func (r *Result) WriteReport(path string) error {
	return r.Report("").RenderFile(path)
}

// EncodeArtifact serializes the raw timing samples into the binary
// artifact format.
func (r *Result) EncodeArtifact(opts ...artifact.Option) ([]byte, error) {
	return artifact.Encode(artifact.Run{
		Fingerprint:  r.Fingerprint,
		Measurements: r.Measurements,
	}, opts...)
}

// SaveArtifact encodes the raw timing samples and writes them to path.
func (r *Result) SaveArtifact(path string, opts ...artifact.Option) error {
	return artifact.EncodeToFile(path, artifact.Run{
		Fingerprint:  r.Fingerprint,
		Measurements: r.Measurements,
	}, opts...)
}
