package simdata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/olsbench/errs"
)

func TestGenerateDefaultsApplied(t *testing.T) {
	// Override only N; the remaining defaults must survive.
	data, err := Generate(WithSampleSize(100))
	require.NoError(t, err)

	cfg := data.Config()
	require.Equal(t, 100, cfg.N)
	require.Equal(t, DefaultIntercept, cfg.Intercept)
	require.Equal(t, DefaultSlope, cfg.Slope)
	require.Equal(t, DefaultNoiseSigma, cfg.NoiseSigma)
	require.Len(t, data.Predictor, 100)
	require.Len(t, data.Response, 100)
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(WithSampleSize(500), WithSeed(7))
	require.NoError(t, err)

	b, err := Generate(WithSampleSize(500), WithSeed(7))
	require.NoError(t, err)

	require.Equal(t, a.Predictor, b.Predictor)
	require.Equal(t, a.Response, b.Response)
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestGenerateSeedChangesData(t *testing.T) {
	a, err := Generate(WithSampleSize(500), WithSeed(1))
	require.NoError(t, err)

	b, err := Generate(WithSampleSize(500), WithSeed(2))
	require.NoError(t, err)

	require.NotEqual(t, a.Predictor, b.Predictor)
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestGenerateValidation(t *testing.T) {
	_, err := Generate(WithSampleSize(1))
	require.ErrorIs(t, err, errs.ErrInvalidSampleCount)

	_, err = Generate(WithSampleSize(100), WithNoiseSigma(-0.5))
	require.ErrorIs(t, err, errs.ErrInvalidNoiseSigma)
}

func TestGenerateDistribution(t *testing.T) {
	// With 200k points the sample moments are tight around the population
	// values: predictor mean ~0, predictor variance ~1.
	data, err := Generate(WithSampleSize(200_000), WithSeed(99))
	require.NoError(t, err)

	var sum, sumSq float64
	for _, x := range data.Predictor {
		sum += x
		sumSq += x * x
	}
	n := float64(data.Len())
	mean := sum / n
	variance := sumSq/n - mean*mean

	require.InDelta(t, 0.0, mean, 0.02)
	require.InDelta(t, 1.0, variance, 0.02)
}

func TestGenerateResponseFollowsLine(t *testing.T) {
	data, err := Generate(
		WithSampleSize(100_000),
		WithCoefficients(-3, 0.5),
		WithNoiseSigma(0), // noiseless: response is exactly on the line
		WithSeed(5),
	)
	require.NoError(t, err)

	for i, x := range data.Predictor[:100] {
		require.InDelta(t, -3+0.5*x, data.Response[i], 1e-12)
	}
}

func TestDesignMatrix(t *testing.T) {
	data, err := Generate(WithSampleSize(50), WithSeed(3))
	require.NoError(t, err)

	x := data.Design()
	r, c := x.Dims()
	require.Equal(t, 50, r)
	require.Equal(t, 2, c)

	for i := 0; i < r; i++ {
		require.Equal(t, 1.0, x.At(i, 0), "ones column")
		require.Equal(t, data.Predictor[i], x.At(i, 1))
	}

	// Cached: repeated calls return the same matrix.
	require.Same(t, x, data.Design())
}

func TestResponseVecSharesBacking(t *testing.T) {
	data, err := Generate(WithSampleSize(10), WithSeed(3))
	require.NoError(t, err)

	vec := data.ResponseVec()
	require.Equal(t, data.Response[4], vec.AtVec(4))

	data.Response[4] = math.Pi
	require.Equal(t, math.Pi, vec.AtVec(4), "vector must share the backing array")
}

func TestFromVectors(t *testing.T) {
	predictor := []float64{1, 2, 3}
	response := []float64{2, 4, 6}

	data, err := FromVectors(predictor, response)
	require.NoError(t, err)
	require.Equal(t, 3, data.Len())
	require.NotZero(t, data.Fingerprint())
}

func TestFromVectorsValidation(t *testing.T) {
	_, err := FromVectors(nil, nil)
	require.ErrorIs(t, err, errs.ErrEmptyData)

	_, err = FromVectors([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)

	_, err = FromVectors([]float64{1}, []float64{1})
	require.ErrorIs(t, err, errs.ErrInvalidSampleCount)
}

func TestFingerprintSensitivity(t *testing.T) {
	a, err := FromVectors([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)

	b, err := FromVectors([]float64{1, 2, 3}, []float64{2, 4, 6.000001})
	require.NoError(t, err)

	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}
