package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/olsbench/errs"
)

// Coefficients is the fitted coefficient pair of a simple linear regression.
type Coefficients struct {
	// Intercept is the constant term.
	Intercept float64
	// Slope is the predictor coefficient.
	Slope float64
}

// Predict returns the fitted response for a predictor value.
func (c Coefficients) Predict(x float64) float64 {
	return c.Intercept + c.Slope*x
}

// String returns a human-readable representation of the fitted line.
func (c Coefficients) String() string {
	return fmt.Sprintf("y = %.6g + %.6g*x", c.Intercept, c.Slope)
}

// Solver computes OLS coefficients for an N×2 design matrix [1 | x] and a
// length-N response vector.
//
// Implementations are stateless and safe for concurrent use; repeated calls
// with the same inputs return the same coefficients.
type Solver interface {
	// Name returns the short strategy key used in reports and artifacts.
	Name() string
	// Description returns a one-line description of the computation route.
	Description() string
	// Solve computes the coefficients or reports why it could not.
	Solve(x *mat.Dense, y []float64) (Coefficients, error)
}

// All returns the canonical strategies in their conventional presentation
// order, from the full fit down to the scalar accumulator shortcut.
func All() []Solver {
	return []Solver{
		NewQRSolver(),
		NewNormalInverseSolver(),
		NewNormalSolveSolver(),
		NewCrossProdSolver(),
		NewSparseSolver(),
		NewAccumSolver(),
	}
}

// validate checks the shared shape requirements and returns the row count.
func validate(x *mat.Dense, y []float64) (int, error) {
	if x == nil || len(y) == 0 {
		return 0, errs.ErrEmptyData
	}

	r, c := x.Dims()
	if c != 2 {
		return 0, fmt.Errorf("%w: design matrix must have 2 columns, got %d",
			errs.ErrDimensionMismatch, c)
	}
	if r != len(y) {
		return 0, fmt.Errorf("%w: design matrix has %d rows, response has %d values",
			errs.ErrDimensionMismatch, r, len(y))
	}

	return r, nil
}

// asSolveError normalizes gonum solve failures. Gonum returns a
// mat.Condition error only once the condition estimate exceeds
// mat.ConditionTolerance, so any such error means the system is singular
// to working precision and surfaces as ErrSingularSystem. The estimate for
// an exactly singular design is typically finite but huge, never assume
// infinity.
func asSolveError(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %v", errs.ErrSingularSystem, err)
}

// coefficientsFromVec extracts the (intercept, slope) pair from a length-2
// solution vector.
func coefficientsFromVec(beta *mat.VecDense) Coefficients {
	return Coefficients{
		Intercept: beta.AtVec(0),
		Slope:     beta.AtVec(1),
	}
}
