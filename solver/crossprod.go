package solver

import (
	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/olsbench/errs"
)

// CrossProdSolver uses a fused cross-product: XᵀX is accumulated directly
// into a symmetric matrix in one pass over the rows, exploiting symmetry
// instead of materializing the transpose and running a general multiply.
// The symmetric positive-definite system is then solved by Cholesky, the
// cheapest factorization available for it.
type CrossProdSolver struct{}

var _ Solver = CrossProdSolver{}

// NewCrossProdSolver creates the fused cross-product strategy.
func NewCrossProdSolver() CrossProdSolver {
	return CrossProdSolver{}
}

// Name returns the strategy key.
func (CrossProdSolver) Name() string { return "crossprod" }

// Description returns the strategy description.
func (CrossProdSolver) Description() string {
	return "fused symmetric cross-product with Cholesky solve"
}

// Solve accumulates XᵀX and Xᵀy in a single pass, then solves by Cholesky.
func (CrossProdSolver) Solve(x *mat.Dense, y []float64) (Coefficients, error) {
	if _, err := validate(x, y); err != nil {
		return Coefficients{}, err
	}

	// One pass over the raw backing array: upper triangle of XᵀX plus Xᵀy.
	raw := x.RawMatrix()
	var s00, s01, s11, t0, t1 float64
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+2]
		yi := y[i]
		s00 += row[0] * row[0]
		s01 += row[0] * row[1]
		s11 += row[1] * row[1]
		t0 += row[0] * yi
		t1 += row[1] * yi
	}

	xtx := mat.NewSymDense(2, []float64{
		s00, s01,
		s01, s11,
	})
	xty := mat.NewVecDense(2, []float64{t0, t1})

	var chol mat.Cholesky
	if ok := chol.Factorize(xtx); !ok {
		return Coefficients{}, errs.ErrSingularSystem
	}

	var beta mat.VecDense
	if err := asSolveError(chol.SolveVecTo(&beta, xty)); err != nil {
		return Coefficients{}, err
	}

	return coefficientsFromVec(&beta), nil
}
