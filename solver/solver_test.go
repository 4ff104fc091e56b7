package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/olsbench/errs"
	"github.com/arloliu/olsbench/simdata"
)

// exactLineData builds a noiseless sample on y = intercept + slope*x.
func exactLineData(t *testing.T, n int, intercept, slope float64) (*mat.Dense, []float64) {
	t.Helper()

	data, err := simdata.Generate(
		simdata.WithSampleSize(n),
		simdata.WithCoefficients(intercept, slope),
		simdata.WithNoiseSigma(0),
		simdata.WithSeed(11),
	)
	require.NoError(t, err)

	return data.Design(), data.Response
}

func TestSolveExactLine(t *testing.T) {
	x, y := exactLineData(t, 1000, 5, 2)

	for _, s := range All() {
		t.Run(s.Name(), func(t *testing.T) {
			coef, err := s.Solve(x, y)
			require.NoError(t, err)
			require.InDelta(t, 5.0, coef.Intercept, 1e-9)
			require.InDelta(t, 2.0, coef.Slope, 1e-9)
		})
	}
}

func TestSolveNegativeCoefficients(t *testing.T) {
	x, y := exactLineData(t, 500, -7.25, 0.125)

	for _, s := range All() {
		t.Run(s.Name(), func(t *testing.T) {
			coef, err := s.Solve(x, y)
			require.NoError(t, err)
			require.InDelta(t, -7.25, coef.Intercept, 1e-9)
			require.InDelta(t, 0.125, coef.Slope, 1e-9)
		})
	}
}

func TestStrategiesAgreeOnNoisyData(t *testing.T) {
	data, err := simdata.Generate(simdata.WithSampleSize(20_000), simdata.WithSeed(42))
	require.NoError(t, err)

	x, y := data.Design(), data.Response

	ref, err := NewQRSolver().Solve(x, y)
	require.NoError(t, err)

	// The true line is y = 5 + 2x; with 20k points the fit lands close.
	require.InDelta(t, 5.0, ref.Intercept, 0.05)
	require.InDelta(t, 2.0, ref.Slope, 0.05)

	candidates := make(map[string]Coefficients)
	for _, s := range All() {
		coef, err := s.Solve(x, y)
		require.NoError(t, err, "strategy %s", s.Name())
		candidates[s.Name()] = coef
	}

	require.NoError(t, VerifyAgreement(ref, candidates, DefaultTolerance))
}

func TestSolveSingularDesign(t *testing.T) {
	// Constant predictor: the second design column duplicates the ones
	// column up to scale, so XᵀX is exactly singular.
	n := 100
	data := make([]float64, 2*n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		data[2*i] = 1.0
		data[2*i+1] = 3.0
		y[i] = float64(i)
	}
	x := mat.NewDense(n, 2, data)

	for _, s := range All() {
		t.Run(s.Name(), func(t *testing.T) {
			_, err := s.Solve(x, y)
			require.ErrorIs(t, err, errs.ErrSingularSystem)
		})
	}
}

func TestSolveShapeValidation(t *testing.T) {
	threeCols := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	twoCols := mat.NewDense(3, 2, []float64{1, 1, 1, 2, 1, 3})

	for _, s := range All() {
		t.Run(s.Name(), func(t *testing.T) {
			_, err := s.Solve(nil, nil)
			require.ErrorIs(t, err, errs.ErrEmptyData)

			_, err = s.Solve(threeCols, []float64{1, 2})
			require.ErrorIs(t, err, errs.ErrDimensionMismatch)

			_, err = s.Solve(twoCols, []float64{1, 2})
			require.ErrorIs(t, err, errs.ErrDimensionMismatch)
		})
	}
}

func TestPrecompileMatchesAccum(t *testing.T) {
	data, err := simdata.Generate(simdata.WithSampleSize(5000), simdata.WithSeed(17))
	require.NoError(t, err)

	x, y := data.Design(), data.Response

	oneShot, err := NewAccumSolver().Solve(x, y)
	require.NoError(t, err)

	compiled, err := Precompile(x, y)
	require.NoError(t, err)

	// The closure must return identical coefficients every invocation.
	for i := 0; i < 3; i++ {
		coef, err := compiled()
		require.NoError(t, err)
		require.Equal(t, oneShot, coef)
	}
}

func TestPrecompileValidation(t *testing.T) {
	_, err := Precompile(nil, nil)
	require.ErrorIs(t, err, errs.ErrEmptyData)
}

func TestAllOrderAndNames(t *testing.T) {
	solvers := All()
	require.Len(t, solvers, 6)

	wantNames := []string{"qr", "normal-inverse", "normal-solve", "crossprod", "sparse", "accum"}
	for i, s := range solvers {
		require.Equal(t, wantNames[i], s.Name())
		require.NotEmpty(t, s.Description())
	}
}

func TestCoefficientsPredict(t *testing.T) {
	c := Coefficients{Intercept: 5, Slope: 2}
	require.Equal(t, 5.0, c.Predict(0))
	require.Equal(t, 9.0, c.Predict(2))
	require.Contains(t, c.String(), "5")
}
