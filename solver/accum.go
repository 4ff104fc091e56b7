package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/olsbench/errs"
)

// AccumSolver reduces the two-parameter normal equations to four scalar
// accumulator sums (Σx, Σy, Σxy, Σx²) and applies the closed-form solution.
// No matrix library is involved at all; this is the floor every
// matrix-based strategy is compared against.
type AccumSolver struct{}

var _ Solver = AccumSolver{}

// NewAccumSolver creates the scalar-accumulator strategy.
func NewAccumSolver() AccumSolver {
	return AccumSolver{}
}

// Name returns the strategy key.
func (AccumSolver) Name() string { return "accum" }

// Description returns the strategy description.
func (AccumSolver) Description() string {
	return "single-pass scalar accumulators with closed-form solution"
}

// Solve accumulates the four sums in one pass over the predictor column and
// solves in closed form.
func (AccumSolver) Solve(x *mat.Dense, y []float64) (Coefficients, error) {
	n, err := validate(x, y)
	if err != nil {
		return Coefficients{}, err
	}

	sums := accumulate(x, y)

	return sums.solve(n)
}

// Precompile accumulates the sums once and returns a closure that computes
// the coefficients from the captured sums. Invoking the closure skips the
// data pass entirely, so repeated evaluation costs a handful of scalar
// operations. This is the ahead-of-time analog of handing a hot function to
// a JIT compiler: the expensive part happens once, up front.
func Precompile(x *mat.Dense, y []float64) (func() (Coefficients, error), error) {
	n, err := validate(x, y)
	if err != nil {
		return nil, err
	}

	sums := accumulate(x, y)

	return func() (Coefficients, error) {
		return sums.solve(n)
	}, nil
}

// regressionSums carries the scalar accumulators of the 2-parameter normal
// equations.
type regressionSums struct {
	sumX, sumY, sumXY, sumXX float64
}

func accumulate(x *mat.Dense, y []float64) regressionSums {
	raw := x.RawMatrix()

	var s regressionSums
	for i := 0; i < raw.Rows; i++ {
		xi := raw.Data[i*raw.Stride+1]
		yi := y[i]
		s.sumX += xi
		s.sumY += yi
		s.sumXY += xi * yi
		s.sumXX += xi * xi
	}

	return s
}

func (s regressionSums) solve(n int) (Coefficients, error) {
	fn := float64(n)
	meanX := s.sumX / fn
	meanY := s.sumY / fn

	denom := s.sumXX - fn*meanX*meanX
	if denom == 0 {
		return Coefficients{}, fmt.Errorf("%w: predictor has zero variance", errs.ErrSingularSystem)
	}

	slope := (s.sumXY - fn*meanX*meanY) / denom

	return Coefficients{
		Intercept: meanY - slope*meanX,
		Slope:     slope,
	}, nil
}
