package olsbench

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/olsbench/artifact"
	"github.com/arloliu/olsbench/bench"
	"github.com/arloliu/olsbench/simdata"
	"github.com/arloliu/olsbench/solver"
)

// runOptions keeps the end-to-end tests fast: a small dataset and few
// repetitions still exercise every stage of the pipeline.
func runOptions() []Option {
	return []Option{
		WithDatasetOptions(
			simdata.WithSampleSize(2_000),
			simdata.WithSeed(7),
		),
		WithBenchOptions(
			bench.WithRepetitions(5),
			bench.WithWarmup(1),
		),
	}
}

func TestRun(t *testing.T) {
	result, err := Run(runOptions()...)
	require.NoError(t, err)

	// Six strategies plus the precompiled closure.
	require.Len(t, result.Strategies, 7)
	require.Len(t, result.Measurements, 7)
	require.Len(t, result.Rankings, 7)

	require.Equal(t, 2_000, result.Config.N)
	require.NotZero(t, result.Fingerprint)

	for _, s := range result.Strategies {
		require.InDelta(t, 5.0, s.Coefficients.Intercept, 0.2, "strategy %s intercept", s.Name)
		require.InDelta(t, 2.0, s.Coefficients.Slope, 0.2, "strategy %s slope", s.Name)
		require.Greater(t, s.RSquared, 0.5, "strategy %s", s.Name)
	}

	for _, m := range result.Measurements {
		require.Len(t, m.Samples, 5, "measurement %s", m.Name)
	}

	// Rankings are sorted fastest first with monotone relative factors.
	require.Equal(t, 1.0, result.Rankings[0].Relative)
	for i := 1; i < len(result.Rankings); i++ {
		require.GreaterOrEqual(t, result.Rankings[i].Relative, result.Rankings[i-1].Relative)
	}
}

func TestRunWithoutPrecompiled(t *testing.T) {
	opts := append(runOptions(), WithPrecompiled(false))
	result, err := Run(opts...)
	require.NoError(t, err)

	require.Len(t, result.Strategies, 6)
	require.Len(t, result.Measurements, 6)
	for _, m := range result.Measurements {
		require.NotEqual(t, PrecompiledName, m.Name)
	}
}

func TestRunCustomSolvers(t *testing.T) {
	opts := append(runOptions(),
		WithSolvers(solver.NewQRSolver(), solver.NewAccumSolver()),
		WithPrecompiled(false),
	)
	result, err := Run(opts...)
	require.NoError(t, err)

	require.Len(t, result.Strategies, 2)
	require.Equal(t, "qr", result.Strategies[0].Name)
	require.Equal(t, "accum", result.Strategies[1].Name)
}

func TestRunDataset(t *testing.T) {
	ds, err := simdata.Generate(simdata.WithSampleSize(1_000), simdata.WithSeed(3))
	require.NoError(t, err)

	result, err := RunDataset(ds,
		WithBenchOptions(bench.WithRepetitions(3), bench.WithWarmup(0)))
	require.NoError(t, err)

	require.Equal(t, ds.Fingerprint(), result.Fingerprint)
	require.Equal(t, 1_000, result.Config.N)
}

func TestRunInvalidDataset(t *testing.T) {
	_, err := Run(WithDatasetOptions(simdata.WithSampleSize(1)))
	require.Error(t, err)
}

func TestResultWriteText(t *testing.T) {
	result, err := Run(runOptions()...)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, result.WriteText(&buf))
	require.Contains(t, buf.String(), "=== Timing Results ===")
	require.Contains(t, buf.String(), "qr")
}

func TestResultWriteReport(t *testing.T) {
	result, err := Run(runOptions()...)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, result.WriteReport(path))
}

func TestResultArtifactRoundTrip(t *testing.T) {
	result, err := Run(runOptions()...)
	require.NoError(t, err)

	data, err := result.EncodeArtifact()
	require.NoError(t, err)

	run, err := artifact.Decode(data)
	require.NoError(t, err)
	require.Equal(t, result.Fingerprint, run.Fingerprint)
	require.Equal(t, result.Measurements, run.Measurements)

	path := filepath.Join(t.TempDir(), "run.olsb")
	require.NoError(t, result.SaveArtifact(path))

	fromFile, err := artifact.DecodeFile(path)
	require.NoError(t, err)
	require.Equal(t, run.Fingerprint, fromFile.Fingerprint)
}
